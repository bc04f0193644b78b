package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Format identifies how a resume file is decoded.
type Format string

// Supported resume formats.
const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned for file extensions other than .txt, .md and .pdf.
var ErrUnsupportedFormat = errors.New("unsupported resume format")

// ErrEmptyDocument is returned when a resume yields no text.
var ErrEmptyDocument = errors.New("resume contains no text")

// Document is a resume's cleaned text plus provenance.
type Document struct {
	Source    string `json:"source"`
	Format    Format `json:"format"`
	Text      string `json:"-"`
	Hash      string `json:"hash"`      // SHA256 hex digest of Text
	Timestamp string `json:"timestamp"` // RFC3339
}

// FormatFor picks a format from a file name's extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", "":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Decode converts raw file content to a cleaned Document.
func Decode(source string, format Format, data []byte) (*Document, error) {
	var raw string
	switch format {
	case FormatPDF:
		text, err := ExtractPDFText(data)
		if err != nil {
			return nil, err
		}
		raw = text
	case FormatText:
		raw = string(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	text := CleanText(raw)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDocument)
	}

	hash := sha256.Sum256([]byte(text))
	return &Document{
		Source:    source,
		Format:    format,
		Text:      text,
		Hash:      hex.EncodeToString(hash[:]),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ReadFile loads and decodes a resume file, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(path, format, data)
}
