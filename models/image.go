package models

import "io"

// Image is an image record as returned inside user and event payloads.
// Data holds the base64-encoded image bytes and may be empty when the
// backend only sends a reference.
type Image struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
	Data string `json:"data,omitempty"`
}

// UploadProgress reports how many bytes of a multipart upload have been
// handed to the transport so far.
type UploadProgress struct {
	Sent  int64
	Total int64
}

// Percent returns the progress in the 0..100 range. It is 0 when Total is
// unknown.
func (p UploadProgress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(100 * p.Sent / p.Total)
}

// FileUpload is a file handed to a multipart endpoint under the form field
// "file". Size is used for progress reporting and may be zero when unknown.
type FileUpload struct {
	Name   string
	Reader io.Reader
	Size   int64
}
