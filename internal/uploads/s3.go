// Package uploads stores admin media files in an S3-compatible bucket
// (Cloudflare R2 in production) and hands back the public URL that entity
// records reference.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores files in a bucket and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (url string, err error)
}

// Config carries the bucket credentials and the public base URL files are
// served from.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Configured reports whether enough settings are present to reach a bucket.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewS3Uploader builds an uploader against the configured endpoint.
func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		now:       time.Now,
	}, nil
}

// Upload stores the file under uploads/YYYY/MM with a timestamped name and
// returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := u.objectKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	return u.publicURL + "/" + key, nil
}

func (u *S3Uploader) objectKey(filename string) string {
	now := u.now()
	base := sanitize(path.Base(filename))
	return fmt.Sprintf("uploads/%s/%d-%s", now.Format("2006/01"), now.UnixMilli(), base)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// MockUploader stands in when no bucket is configured; it echoes a
// placeholder URL the way the original demo deployment did.
type MockUploader struct {
	BaseURL string
}

func (m MockUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	base := m.BaseURL
	if base == "" {
		base = "https://placehold.example"
	}
	return fmt.Sprintf("%s/%d-%s", base, time.Now().UnixMilli(), sanitize(path.Base(filename))), nil
}
