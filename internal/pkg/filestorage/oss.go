package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
)

// OSSConfig holds Aliyun OSS credentials
type OSSConfig struct {
	Endpoint        string
	Bucket          string
	AccessKeyID     string
	AccessKeySecret string
	// PublicURL overrides the default https://<bucket>.<endpoint> prefix (e.g. a CDN)
	PublicURL string
}

// OSSStorage stores objects in an Aliyun OSS bucket
type OSSStorage struct {
	bucket    *oss.Bucket
	publicURL string
}

// NewOSSStorage connects to the bucket
func NewOSSStorage(cfg OSSConfig) (*OSSStorage, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSStorage{
		bucket:    bucket,
		publicURL: ossPublicURL(cfg),
	}, nil
}

func ossPublicURL(cfg OSSConfig) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	host := cfg.Endpoint
	if u, err := url.Parse(cfg.Endpoint); err == nil && u.Host != "" {
		host = u.Host
	}
	return "https://" + cfg.Bucket + "." + strings.TrimRight(host, "/")
}

// Save uploads content as objectPath
func (s *OSSStorage) Save(ctx context.Context, objectPath string, content io.Reader, contentType string) (string, error) {
	key, err := cleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, content, opts...); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Debug().Str("key", key).Msg("Object uploaded")
	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind fileURL
func (s *OSSStorage) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	key, err := cleanObjectPath(strings.TrimPrefix(fileURL, s.publicURL))
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
