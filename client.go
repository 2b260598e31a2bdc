package main

import (
	"context"
	"io"
	"time"
)

type ObjectInfo struct {
	ModTime time.Time
	Size    int64
}

// BucketClient abstracts the destination object store. ListObjects returns
// keys relative to the given prefix, with pagination handled internally.
// DeleteObject on a missing key must succeed.
type BucketClient interface {
	ListObjects(ctx context.Context, bucket, prefix string) (map[string]ObjectInfo, error)
	Upload(ctx context.Context, bucket, key string, body io.Reader) error
	DeleteObject(ctx context.Context, bucket, key string) error
}
