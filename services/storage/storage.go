package storage

import (
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorageService implements StorageService using a Google Cloud Storage bucket.
type GCSStorageService struct {
	client     *gcs.Client
	bucketName string
}

// NewGCSStorageService creates a new GCSStorageService. credentialsFile may be
// empty, in which case application default credentials are used.
func NewGCSStorageService(ctx context.Context, bucketName, credentialsFile string) (*GCSStorageService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStorageService{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadPhoto writes the photo to the bucket and returns its public URL.
func (s *GCSStorageService) UploadPhoto(ctx context.Context, orderID, filename string, content []byte) (string, error) {
	objectPath := path.Join("bookings", orderID, filename)
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	// Set public read ACL so the returned URL is stable and fetchable.
	w.ACL = []gcs.ACLRule{{Entity: gcs.AllUsers, Role: gcs.RoleReader}}

	// Detect and set content type
	if ext := filepath.Ext(filename); ext != "" {
		w.ObjectAttrs.ContentType = mime.TypeByExtension(ext)
	}

	if _, err := w.Write(content); err != nil {
		return "", fmt.Errorf("failed to copy photo to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return s.publicURL(objectPath), nil
}

func (s *GCSStorageService) publicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectPath)
}

// Close releases the underlying client.
func (s *GCSStorageService) Close() error {
	return s.client.Close()
}
