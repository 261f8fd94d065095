//go:build ocr

// Package ocr provides the Tesseract fallback for image-only pages.
//
// Content streams of scanned documents paint image XObjects and show no
// text; the interpreter reports those images to its observer, and this
// package turns them into text. It wraps the Tesseract engine via
// gosseract and requires Tesseract installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// OCR support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it when no longer needed.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG).
// The recognized text is returned with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage sets the recognition language(s); multiple languages are
// "+"-separated, e.g. "eng+fra". Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the Tesseract page segmentation mode
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
