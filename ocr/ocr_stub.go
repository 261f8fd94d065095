//go:build !ocr

// Package ocr provides the Tesseract fallback for image-only pages.
//
// This is the stub implementation used when the "ocr" build tag is not
// set; all operations return ErrNotEnabled. Rebuild with the tag to get
// the real engine:
//
//	go build -tags ocr
//
// The real implementation requires Tesseract installed on the system.
package ocr

import "errors"

// ErrNotEnabled is returned when OCR is called without the "ocr" build
// tag compiled in
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client; every operation reports ErrNotEnabled
type Client struct{}

// New returns ErrNotEnabled
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op on the stub client
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrNotEnabled
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// SetLanguage returns ErrNotEnabled
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// SetPageSegMode returns ErrNotEnabled
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrNotEnabled
}
