package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"adspace_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingDocumentsBucket = errors.New("missing DOCUMENTS_BUCKET")

// S3DocumentStore uploads generated documents to S3 and returns the object
// URL callers hand out for download.
type S3DocumentStore struct {
	s3c       *s3.Client
	bucket    string
	publicURL string
}

var _ interfaces.IFileStorage = (*S3DocumentStore)(nil)

// NewS3DocumentStore reads the bucket from DOCUMENTS_BUCKET. DOCUMENTS_BASE_URL
// overrides the returned URL prefix, useful behind a CDN or a local stack.
func NewS3DocumentStore(cfg aws.Config) (*S3DocumentStore, error) {
	bucket := strings.TrimSpace(os.Getenv("DOCUMENTS_BUCKET"))
	if bucket == "" {
		log.Printf("[document][storage] missing DOCUMENTS_BUCKET")
		return nil, ErrMissingDocumentsBucket
	}

	return &S3DocumentStore{
		s3c:       s3.NewFromConfig(cfg),
		bucket:    bucket,
		publicURL: strings.TrimRight(os.Getenv("DOCUMENTS_BASE_URL"), "/"),
	}, nil
}

func (s *S3DocumentStore) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	log.Printf("[document][storage] upload start bucket=%s key=%s size=%d", s.bucket, key, len(data))

	_, err := s.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[document][storage] upload failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}

	url := s.objectURL(key)
	log.Printf("[document][storage] upload success url=%s", url)
	return url, nil
}

func (s *S3DocumentStore) objectURL(key string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
