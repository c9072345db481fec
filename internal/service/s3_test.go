package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"tush00nka/studybud/internal/config"
)

func TestAvatarKey(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"me.png", "avatars/7/f1/me.png"},
		{"../../etc/passwd", "avatars/7/f1/passwd"},
		{"dir/pic.jpg", "avatars/7/f1/pic.jpg"},
	}

	for _, tt := range tests {
		if got := AvatarKey(7, "f1", tt.filename); got != tt.want {
			t.Errorf("AvatarKey(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestNewS3ServiceRequiresBucket(t *testing.T) {
	if _, err := NewS3Service(context.Background(), &config.Config{}); err == nil {
		t.Error("NewS3Service() without a bucket should fail")
	}
}

func TestS3Service_GeneratePresignedURL(t *testing.T) {
	svc, err := NewS3Service(context.Background(), &config.Config{
		S3Endpoint:        "http://localhost:9000",
		S3Region:          "us-east-1",
		S3AccessKeyID:     "minio",
		S3SecretAccessKey: "minio123",
		S3BucketName:      "studybud",
	})
	if err != nil {
		t.Fatalf("NewS3Service() error = %v", err)
	}

	url, err := svc.GeneratePresignedURL(context.Background(), "avatars/1/f1/me.png", time.Hour)
	if err != nil {
		t.Fatalf("GeneratePresignedURL() error = %v", err)
	}

	for _, want := range []string{
		"http://localhost:9000/studybud/avatars/1/f1/me.png",
		"X-Amz-Signature=",
		"X-Amz-Expires=3600",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("url %q does not contain %q", url, want)
		}
	}
}
