// Package uploadstore is the in-process stand-in for the upload & storage
// collaborator, specified only at its interface: a file identifier is
// exchanged for a path, and the core never touches the upload. Since
// persistence across process restarts is out of scope, the store keeps raw
// bytes in memory rather than writing them to disk.
package uploadstore

import (
	"sync"

	"github.com/google/uuid"
)

// Upload is one stored file: its name and raw contents.
type Upload struct {
	Filename string
	Data     []byte
}

// Store is a mutex-guarded, in-memory map of upload id to Upload. Create
// one with New; the zero value has no map and Put on it panics.
type Store struct {
	mu      sync.RWMutex
	uploads map[string]Upload
	latest  string
}

// New returns an empty Store.
func New() *Store {
	return &Store{uploads: make(map[string]Upload)}
}

// Put stores data under a fresh id and returns it. The most recently put
// upload becomes the "latest" one Get(LatestID()) resolves — mirroring
// api_adapter.py's `next(iter(UPLOADS.values()), None)` lookup, which the
// HTTP layer uses when a plan request doesn't name an upload explicitly.
func (s *Store) Put(filename string, data []byte) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[id] = Upload{Filename: filename, Data: data}
	s.latest = id
	return id
}

// Get retrieves a previously stored upload.
func (s *Store) Get(id string) (Upload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.uploads[id]
	return u, ok
}

// LatestID returns the id of the most recently stored upload, or "" if
// none has been stored yet.
func (s *Store) LatestID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
