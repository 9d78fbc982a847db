package uploads

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestObjectKeyLayout(t *testing.T) {
	u := &S3Uploader{
		bucket:    "media",
		publicURL: "https://cdn.example.com",
		now: func() time.Time {
			return time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
		},
	}

	key := u.objectKey("Rally Photo (Final).JPG")
	if !strings.HasPrefix(key, "uploads/2026/03/") {
		t.Errorf("key %q not under the dated prefix", key)
	}
	if !strings.HasSuffix(key, "-rally-photo--final-.jpg") {
		t.Errorf("key %q not sanitized as expected", key)
	}
}

func TestConfigured(t *testing.T) {
	if (Config{}).Configured() {
		t.Error("empty config must not count as configured")
	}
	full := Config{Endpoint: "https://acc.r2.cloudflarestorage.com", AccessKey: "k", SecretKey: "s", Bucket: "media"}
	if !full.Configured() {
		t.Error("full config must count as configured")
	}
}

func TestMockUploaderEchoesPlaceholder(t *testing.T) {
	m := MockUploader{BaseURL: "https://placeholder.example"}
	url, err := m.Upload(context.Background(), "banner.png", "image/png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(url, "https://placeholder.example/") || !strings.HasSuffix(url, "-banner.png") {
		t.Errorf("unexpected placeholder URL %q", url)
	}
}
