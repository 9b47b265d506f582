package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore stores photos in a Google Cloud Storage bucket. The bucket is
// expected to allow public reads; Upload returns the object's public URL.
type GCSStore struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewGCSStore creates a GCSStore backed by the given bucket. baseURL
// overrides the public URL prefix (for CDN fronting); leave it empty to use
// the canonical storage.googleapis.com form.
func NewGCSStore(ctx context.Context, bucket, baseURL string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, baseURL: baseURL}, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// Upload validates inputs and writes the object to the bucket.
func (s *GCSStore) Upload(ctx context.Context, key, contentType string, content io.Reader) (*ObjectInfo, error) {
	if err := validateUpload(key, contentType); err != nil {
		return nil, err
	}
	data, err := readCapped(content)
	if err != nil {
		return nil, err
	}

	obj := s.client.Bucket(s.bucket).Object(key)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("writing object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing object %s: %w", key, err)
	}

	return &ObjectInfo{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		PublicURL:   PublicObjectURL(s.baseURL, s.bucket, key),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Open returns a reader over the object content.
func (s *GCSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("opening object %s: %w", key, err)
	}
	return rc, nil
}

// Delete removes the object from the bucket.
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("deleting object %s: %w", key, err)
	}
	return nil
}

// Exists reports whether the object is present in the bucket.
func (s *GCSStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat object %s: %w", key, err)
	}
	return true, nil
}
