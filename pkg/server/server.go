/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/unikorn-cloud/core/pkg/options"
	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/placeholder-taf/pkg/constants"
	"github.com/unikorn-cloud/placeholder-taf/pkg/logger"
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/pkg/server/handler"
	"github.com/unikorn-cloud/placeholder-taf/pkg/server/handler/comments"
	"github.com/unikorn-cloud/placeholder-taf/pkg/server/handler/users"
)

// Options control the server.
type Options struct {
	// CoreOptions control logging for the shared server libraries.
	CoreOptions options.CoreOptions

	// ServerOptions control the listener and request timeouts.
	ServerOptions options.ServerOptions

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// SeedFile is an optional YAML file of users and comments loaded at start up.
	SeedFile string

	// LogLevel is the minimum level to log at.
	LogLevel string

	// LogPretty enables console formatted logs.
	LogPretty bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	o.CoreOptions.AddFlags(f)
	o.ServerOptions.AddFlags(f)

	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 5*time.Second, "How long to wait for in flight requests on shutdown.")
	f.StringVar(&o.SeedFile, "seed-file", "", "YAML file of users and comments to load at start up.")
	f.StringVar(&o.LogLevel, "log-level", "info", "Minimum log level (trace, debug, info, warn, error).")
	f.BoolVar(&o.LogPretty, "log-pretty", false, "Emit human readable logs rather than JSON.")
}

// Seed is the on-disk format of initial server state.
type Seed struct {
	Users    []openapi.User    `yaml:"users"`
	Comments []openapi.Comment `yaml:"comments"`
}

// LoadSeed reads a seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	seed := &Seed{}

	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}

	return seed, nil
}

type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// Logger is set by SetupLogging.
	Logger zerolog.Logger
}

func (s *Server) AddFlags(flags *pflag.FlagSet) {
	s.Options.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	s.Options.CoreOptions.SetupLogging()

	s.Logger = logger.New(logger.Options{
		Level:  s.Options.LogLevel,
		Pretty: s.Options.LogPretty,
	})
}

// notFound is called when no route is found.
func notFound(w http.ResponseWriter, r *http.Request) {
	errors.HandleError(w, r, errors.HTTPNotFound())
}

// methodNotAllowed is called when a route exists but the method is not supported.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	errors.HandleError(w, r, errors.HTTPMethodNotAllowed())
}

func parameterError(w http.ResponseWriter, r *http.Request, err error) {
	errors.HandleError(w, r, errors.OAuth2InvalidRequest("invalid path parameter").WithError(err))
}

// Handler builds the API router, optionally populated from the seed file.
func (s *Server) Handler() (http.Handler, error) {
	userStore := users.NewStore()
	commentStore := comments.NewStore()

	if s.Options.SeedFile != "" {
		seed, err := LoadSeed(s.Options.SeedFile)
		if err != nil {
			return nil, err
		}

		for _, user := range seed.Users {
			userStore.Create(user)
		}

		for _, comment := range seed.Comments {
			commentStore.Create(comment)
		}

		s.Logger.Info().Int("users", len(seed.Users)).Int("comments", len(seed.Comments)).Msg("seed loaded")
	}

	h, err := handler.New(userStore, commentStore)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(hlog.NewHandler(s.Logger))
	router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	router.Use(middleware.Recoverer)

	if s.Options.ServerOptions.RequestTimeout > 0 {
		router.Use(middleware.Timeout(s.Options.ServerOptions.RequestTimeout))
	}

	router.NotFound(http.HandlerFunc(notFound))
	router.MethodNotAllowed(http.HandlerFunc(methodNotAllowed))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openapi.Spec())
	})

	return openapi.HandlerWithOptions(h, openapi.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: parameterError,
	}), nil
}

func (s *Server) GetServer() (*http.Server, error) {
	h, err := s.Handler()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ServerOptions.ListenAddress,
		ReadTimeout:       s.Options.ServerOptions.ReadTimeout,
		ReadHeaderTimeout: s.Options.ServerOptions.ReadHeaderTimeout,
		WriteTimeout:      s.Options.ServerOptions.WriteTimeout,
		Handler:           h,
	}

	return server, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server, err := s.GetServer()
	if err != nil {
		return err
	}

	s.Logger.Info().Str("application", constants.Application).Str("version", constants.Version).Str("revision", constants.Revision).Str("address", server.Addr).Msg("service starting")

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !goerrors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	s.Logger.Info().Msg("service stopped")

	return nil
}
