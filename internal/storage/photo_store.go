package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/homevista/realtor-api/internal/config"
)

// Photos wider than this are scaled down before upload.
const maxPhotoWidth = 1600

const webpQuality = 80

// PhotoStore re-encodes uploaded listing photos as webp and stores them in
// an S3-compatible bucket under random keys.
type PhotoStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoint means a MinIO-style deployment; those want path-style
	// addressing.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &PhotoStore{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		publicBaseURL: cfg.S3PublicBaseURL,
	}
}

// Save decodes a jpeg/png photo, scales it down if oversized, re-encodes it
// as webp and uploads it. It returns the public URL of the stored object.
func (ps *PhotoStore) Save(ctx context.Context, data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("homes/%s.webp", uuid.NewString())

	_, err = ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return ps.URLFor(key), nil
}

func (ps *PhotoStore) URLFor(key string) string {
	if ps.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", ps.publicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", ps.bucket, key)
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxPhotoWidth {
		return src
	}

	h := b.Dy() * maxPhotoWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
