package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"studybuddy/studybuddy/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore holds raw note content; only derived artifacts (summary,
// flashcards, quiz) live in postgres.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

func NewObjectStore(cfg config.Config) (*ObjectStore, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(context.Background(), cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &ObjectStore{client: client, bucket: cfg.MinIOBucket}, nil
}

func (s *ObjectStore) PutNoteContent(ctx context.Context, noteID uuid.UUID, content string) (string, error) {
	key := fmt.Sprintf("notes/%s.txt", noteID)
	reader := strings.NewReader(content)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(reader.Len()),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("uploading note content: %w", err)
	}
	return key, nil
}

func (s *ObjectStore) GetNoteContent(ctx context.Context, key string) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", err
	}
	defer obj.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		return "", fmt.Errorf("reading note content: %w", err)
	}
	return buf.String(), nil
}
