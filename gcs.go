package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type GCSClient struct {
	Client *storage.Client
}

func NewGCSBucketClient() (BucketClient, error) {
	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("Error creating gcs client: %+v\n", err)
	}

	return &GCSClient{Client: client}, nil
}

func (s *GCSClient) ListObjects(ctx context.Context, bucket, prefix string) (map[string]ObjectInfo, error) {
	prefix = normalizePrefix(prefix)
	objects := make(map[string]ObjectInfo)
	query := &storage.Query{Prefix: prefix}
	objIter := s.Client.Bucket(bucket).Objects(ctx, query)
	for {
		attrs, err := objIter.Next()
		if err == iterator.Done {
			break

		}
		if err != nil {
			return objects, fmt.Errorf("Bucket(%q).Objects: %v", bucket, err)

		}
		key := strings.TrimPrefix(attrs.Name, prefix)
		if key == "" {
			continue
		}
		objects[key] = ObjectInfo{ModTime: attrs.Updated, Size: attrs.Size}
	}

	return objects, nil
}

func (s *GCSClient) Upload(ctx context.Context, bucket, key string, body io.Reader) error {
	object := s.Client.Bucket(bucket).Object(key)
	objWriter := object.NewWriter(ctx)
	if _, uploadErr := io.Copy(objWriter, body); uploadErr != nil {
		objWriter.Close()
		return uploadErr
	}
	if closeErr := objWriter.Close(); closeErr != nil {
		return closeErr
	}

	return nil
}

func (s *GCSClient) DeleteObject(ctx context.Context, bucket, key string) error {
	object := s.Client.Bucket(bucket).Object(key)

	if err := object.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return err
	}

	return nil
}
