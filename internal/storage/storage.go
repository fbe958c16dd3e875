package storage

import "errors"

var (
	ErrInternal = errors.New("internal error")
	ErrNotExist = errors.New("media does not exist")
	ErrEmpty    = errors.New("empty media content")
)

// MediaStore holds the playable content behind reels. A handle is acquired exactly
// once per upload and must be released exactly once when the owning reel is removed;
// the store does not reference count.
type MediaStore interface {
	// Acquire stores the content and returns an opaque handle for it.
	Acquire(content []byte) (handle string, err error)
	// Open returns the content behind a handle.
	Open(handle string) ([]byte, error)
	// Release frees the content behind a handle. Releasing an unknown or
	// already-released handle returns ErrNotExist.
	Release(handle string) error
}
