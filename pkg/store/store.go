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

package store

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrNotFound is raised when a record does not exist.
	ErrNotFound = errors.New("resource not found")
)

// Store is an in-memory record store keyed by a server assigned integer ID.
// IDs are never reused, even after deletion.
type Store[T any] struct {
	lock    sync.RWMutex
	records map[int]T
	nextID  int
	setID   func(*T, int)
}

// New returns a new store.  The setID callback writes the assigned
// identifier into the record.
func New[T any](setID func(*T, int)) *Store[T] {
	return &Store[T]{
		records: map[int]T{},
		nextID:  1,
		setID:   setID,
	}
}

// Create stores a new record, assigning it the next available ID.
func (s *Store[T]) Create(record T) T {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := s.nextID
	s.nextID++

	s.setID(&record, id)
	s.records[id] = record

	return record
}

// Get returns the record with the given ID.
func (s *Store[T]) Get(id int) (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	record, ok := s.records[id]
	if !ok {
		var zero T

		return zero, ErrNotFound
	}

	return record, nil
}

// Update replaces an existing record.
func (s *Store[T]) Update(id int, record T) (T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.records[id]; !ok {
		var zero T

		return zero, ErrNotFound
	}

	s.setID(&record, id)
	s.records[id] = record

	return record, nil
}

// Delete removes a record.
func (s *Store[T]) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}

	delete(s.records, id)

	return nil
}

// List returns all records in ID order.
func (s *Store[T]) List() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := slices.Sorted(maps.Keys(s.records))

	out := make([]T, len(ids))

	for i, id := range ids {
		out[i] = s.records[id]
	}

	return out
}
