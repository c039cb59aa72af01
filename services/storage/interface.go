package storage

import "context"

// StorageService stores booking photos and returns stable public URLs.
type StorageService interface {
	// UploadPhoto writes the photo under bookings/<orderID>/<filename> and
	// returns a publicly fetchable URL for it.
	UploadPhoto(ctx context.Context, orderID, filename string, content []byte) (string, error)
}
