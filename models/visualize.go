package models

// GalleryStyle selects how an uploaded photo is rendered in the preview.
type GalleryStyle string

const (
	StyleAlbum     GalleryStyle = "album"
	StyleAcrylic   GalleryStyle = "acrylic"
	StyleWallFrame GalleryStyle = "wallframe"
)

// ValidGalleryStyle reports whether s is a supported preview style.
func ValidGalleryStyle(s GalleryStyle) bool {
	switch s {
	case StyleAlbum, StyleAcrylic, StyleWallFrame:
		return true
	}
	return false
}

// VisualizeRequest carries a photo to be rendered in a gallery setting.
type VisualizeRequest struct {
	Photo    []byte       // Raw image bytes
	MIMEType string       // e.g. "image/jpeg"
	Style    GalleryStyle // album, acrylic or wallframe
	Size     string       // Optional, e.g. "12x9 in"
}

// VisualizeResult is the generated preview image.
type VisualizeResult struct {
	Image    []byte
	MIMEType string
}
