// Package blobstore provides object storage for uploaded scan photos. It
// defines the Store interface, an in-memory implementation suitable for
// testing and development, and a Google Cloud Storage implementation used in
// production. Stored objects are addressed by key and served through publicly
// readable URLs that are persisted alongside scan records.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrObjectTooLarge     = errors.New("object exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
	ErrMissingKey         = errors.New("object key is required")
)

// ---------------------------------------------------------------------------
// Validation constants
// ---------------------------------------------------------------------------

// MaxObjectSize is the maximum allowed photo size in bytes (25 MB).
const MaxObjectSize = 25 * 1024 * 1024

// AllowedContentTypes lists the photo MIME types accepted for upload.
var AllowedContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/heic": true,
	"image/bmp":  true,
}

// ---------------------------------------------------------------------------
// Store interface
// ---------------------------------------------------------------------------

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	PublicURL   string    `json:"public_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store defines the contract for photo storage backends. Upload returns the
// public URL under which the object can be fetched without credentials.
type Store interface {
	Upload(ctx context.Context, key, contentType string, content io.Reader) (*ObjectInfo, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

func validateUpload(key, contentType string) error {
	if key == "" {
		return ErrMissingKey
	}
	if !AllowedContentTypes[contentType] {
		return ErrInvalidContentType
	}
	return nil
}

// readCapped reads content up to MaxObjectSize and fails if it overflows.
func readCapped(content io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(content, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if int64(len(data)) > MaxObjectSize {
		return nil, ErrObjectTooLarge
	}
	return data, nil
}

// ---------------------------------------------------------------------------
// In-memory implementation
// ---------------------------------------------------------------------------

type storedObject struct {
	info    ObjectInfo
	content []byte
}

// MemoryStore is a thread-safe, in-memory Store for testing and local
// development. Public URLs use the mem:// scheme so nothing in the rest of
// the system needs to special-case the backend.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]*storedObject
}

// NewMemoryStore returns a ready-to-use MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]*storedObject)}
}

// Upload validates inputs, reads the content, and stores the object in memory.
func (s *MemoryStore) Upload(_ context.Context, key, contentType string, content io.Reader) (*ObjectInfo, error) {
	if err := validateUpload(key, contentType); err != nil {
		return nil, err
	}
	data, err := readCapped(content)
	if err != nil {
		return nil, err
	}

	info := ObjectInfo{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		PublicURL:   "mem://" + key,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.objects[key] = &storedObject{info: info, content: data}
	s.mu.Unlock()

	out := info // copy
	return &out, nil
}

// Open returns an io.ReadCloser over the object content.
func (s *MemoryStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.content)), nil
}

// Delete removes an object by key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		return ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

// Exists reports whether an object with the given key is stored.
func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// Len returns the number of stored objects. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// ---------------------------------------------------------------------------
// URL helpers
// ---------------------------------------------------------------------------

// PublicObjectURL builds the public URL for an object. When baseURL is empty
// the canonical storage.googleapis.com form is used.
func PublicObjectURL(baseURL, bucket, key string) string {
	if baseURL == "" {
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + key
}
