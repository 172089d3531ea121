package storage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homevista/realtor-api/internal/config"
)

func TestScaleDown(t *testing.T) {
	// Under the limit: untouched.
	small := image.NewRGBA(image.Rect(0, 0, 800, 600))
	assert.Equal(t, 800, scaleDown(small).Bounds().Dx())

	// Over the limit: width capped, aspect ratio kept.
	big := image.NewRGBA(image.Rect(0, 0, 3200, 2400))
	scaled := scaleDown(big)
	assert.Equal(t, maxPhotoWidth, scaled.Bounds().Dx())
	assert.Equal(t, 1200, scaled.Bounds().Dy())
}

func TestURLFor(t *testing.T) {
	withBase := NewPhotoStore(&config.Config{
		S3Bucket:        "photos",
		S3Region:        "us-east-1",
		S3PublicBaseURL: "https://cdn.example.com",
	})
	assert.Equal(t, "https://cdn.example.com/homes/x.webp", withBase.URLFor("homes/x.webp"))

	plain := NewPhotoStore(&config.Config{
		S3Bucket: "photos",
		S3Region: "us-east-1",
	})
	assert.Equal(t, "https://photos.s3.amazonaws.com/homes/x.webp", plain.URLFor("homes/x.webp"))
}
