// Package validation checks score files before they reach the parser: path
// shape, size limits and content type.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on score input (CWE-400).
const (
	// MaxFileSize is the maximum allowed score size after decompression (16 MB).
	MaxFileSize = 16 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// sniffSize is the number of leading bytes inspected for type detection.
	sniffSize = 512
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrTypeMismatch     = errors.New("file type mismatch")
	ErrBinaryContent    = errors.New("content is not text")
)

// ValidatePath checks a path for dangerous patterns, length limits and
// invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// FileType represents a detected score file type.
type FileType string

const (
	// FileTypeXZ is an xz-compressed score.
	FileTypeXZ FileType = "xz"
	// FileTypeGzip is a gzip stream. Only detected; scores are not read from it.
	FileTypeGzip FileType = "gzip"
	// FileTypeZip is a zip archive. Only detected; scores are not read from it.
	FileTypeZip FileType = "zip"
	// FileTypeText is a plain-text score.
	FileTypeText FileType = "text"
	// FileTypeUnknown is anything else.
	FileTypeUnknown FileType = "unknown"
)

// magicBytes defines magic byte signatures for file type detection.
var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{FileTypeGzip, []byte{0x1f, 0x8b}},
	{FileTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
}

// DetectFileType reads the head of a file and determines its type, checking it
// against the filename extension. A compressed extension with plain content,
// or the reverse, is a mismatch.
func DetectFileType(reader io.Reader, filename string) (FileType, error) {
	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	detectedType := detectFileTypeFromMagic(buf)
	expectedType := detectFileTypeFromExtension(filename)

	switch {
	case detectedType != FileTypeUnknown && expectedType == FileTypeText:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrTypeMismatch, expectedType, detectedType)
	case detectedType != FileTypeUnknown && expectedType != FileTypeUnknown && detectedType != expectedType:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrTypeMismatch, expectedType, detectedType)
	case detectedType != FileTypeUnknown:
		return detectedType, nil
	case expectedType != FileTypeUnknown && expectedType != FileTypeText:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is not", ErrTypeMismatch, expectedType)
	}

	// Empty files are valid (and fail later in the parser with a proper position)
	if len(buf) == 0 || isLikelyText(buf) {
		return FileTypeText, nil
	}
	return FileTypeUnknown, ErrBinaryContent
}

// detectFileTypeFromMagic detects file type from magic bytes.
func detectFileTypeFromMagic(buf []byte) FileType {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.fileType
		}
	}
	return FileTypeUnknown
}

// detectFileTypeFromExtension determines expected file type from filename extension.
func detectFileTypeFromExtension(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xz":
		return FileTypeXZ
	case ".gz", ".tgz":
		return FileTypeGzip
	case ".zip":
		return FileTypeZip
	case ".solfa", ".sfa", ".txt":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// isLikelyText checks if the buffer contains likely text content.
// Returns true if the buffer appears to be text (UTF-8, ASCII).
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	// Check for null bytes (strong indicator of binary content)
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	// Count printable characters vs control characters
	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
		// UTF-8 continuation bytes (0x80-0xBF) and start bytes (0xC0-0xFD) are neutral
	}

	// If more than 95% is printable, consider it text
	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
