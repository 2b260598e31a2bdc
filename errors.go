package main

import "fmt"

// Enumeration-phase errors abort a run before any destination mutation.
// Per-action errors are recorded into the run result and the run continues.

type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching listing %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing listing %s: %s", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type InventoryError struct {
	Bucket string
	Prefix string
	Err    error
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("listing destination %s/%s: %s", e.Bucket, e.Prefix, e.Err)
}

func (e *InventoryError) Unwrap() error { return e.Err }

type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s: %s", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %s: %s", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

type DeleteError struct {
	Key string
	Err error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("deleting %s: %s", e.Key, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }
