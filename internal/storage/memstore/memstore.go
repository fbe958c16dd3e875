// Package memstore is a process-memory media store. Content lives only as long as
// the process; anything still held at exit is reclaimed by process teardown.
package memstore

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/storage"
)

type MemStore struct {
	blobs map[string][]byte
}

func New() storage.MediaStore {
	return &MemStore{
		blobs: make(map[string][]byte),
	}
}

func (s *MemStore) Acquire(content []byte) (handle string, err error) {
	if len(content) == 0 {
		return "", storage.ErrEmpty
	}

	// Handles are random, never derived from the content or an upload name, so two
	// rapid uploads of the same bytes get distinct handles.
	handle = uuid.NewString()
	owned := make([]byte, len(content))
	copy(owned, content)
	s.blobs[handle] = owned
	return handle, nil
}

func (s *MemStore) Open(handle string) ([]byte, error) {
	content, ok := s.blobs[handle]
	if !ok {
		return nil, storage.ErrNotExist
	}

	// The store keeps the only durable copy; callers get their own.
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (s *MemStore) Release(handle string) error {
	if _, ok := s.blobs[handle]; !ok {
		log.Error().Str("handle", handle).Msg("release of unknown media handle")
		return storage.ErrNotExist
	}
	delete(s.blobs, handle)
	return nil
}

// Len reports how many handles are currently held. Used by tests to check for leaks.
func (s *MemStore) Len() int {
	return len(s.blobs)
}
