package service

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// optimizeThreshold: uploads at or below this size go to Drive as-is.
	optimizeThreshold = 2 * 1024 * 1024
	// maxUploadDimension is the longest edge after downscaling.
	maxUploadDimension = 1600
	uploadJPEGQuality  = 85
)

// OptimizeUpload downscales and re-encodes large JPEG/PNG uploads before
// they hit Drive. Small files, GIFs (animation would be lost) and WebP
// pass through untouched, as does anything that fails to decode.
// Returns the bytes to upload and their MIME type.
func OptimizeUpload(data []byte, mimeType string) ([]byte, string) {
	if len(data) <= optimizeThreshold {
		return data, mimeType
	}
	if mimeType != "image/jpeg" && mimeType != "image/jpg" && mimeType != "image/png" {
		return data, mimeType
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("⚠️  Could not decode upload for optimization, uploading as-is: %v", err)
		return data, mimeType
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxUploadDimension || bounds.Dy() > maxUploadDimension {
		img = imaging.Fit(img, maxUploadDimension, maxUploadDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(uploadJPEGQuality)); err != nil {
		log.Printf("⚠️  Could not re-encode upload, uploading as-is: %v", err)
		return data, mimeType
	}

	// Re-encoding a photo-like PNG can still come out larger; keep the
	// smaller of the two.
	if buf.Len() >= len(data) {
		return data, mimeType
	}

	log.Printf("📸 Optimized upload: format=%s, %d -> %d bytes", format, len(data), buf.Len())
	return buf.Bytes(), "image/jpeg"
}
