// Package memory is the in-process mock document store, used when the real
// store's credentials are absent in a development context. Data does not
// survive a process restart; the caller is expected to warn users.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aipage-top/aipage-backend/internal/docstore"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

func New() *Store {
	return &Store{docs: make(map[string]map[string]any)}
}

func (s *Store) Get(_ context.Context, id string) (docstore.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.docs[id]
	if !ok {
		return docstore.Doc{ID: id}, nil
	}
	return docstore.Doc{ID: id, Exists: true, Fields: copyFields(fields)}, nil
}

func (s *Store) Add(_ context.Context, fields map[string]any) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.docs[id] = copyFields(fields)
	s.mu.Unlock()

	return id, nil
}

func (s *Store) Update(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) List(_ context.Context, publicOnly bool) ([]docstore.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]docstore.Doc, 0, len(s.docs))
	for id, fields := range s.docs {
		if publicOnly {
			if public, ok := fields["is_public"].(bool); !ok || !public {
				continue
			}
		}
		out = append(out, docstore.Doc{ID: id, Exists: true, Fields: copyFields(fields)})
	}

	sort.Slice(out, func(i, j int) bool {
		return updatedAt(out[i].Fields).After(updatedAt(out[j].Fields))
	})
	return out, nil
}

func copyFields(fields map[string]any) map[string]any {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return cp
}

func updatedAt(fields map[string]any) time.Time {
	if t, ok := fields["updated_at"].(time.Time); ok {
		return t
	}
	return time.Time{}
}
