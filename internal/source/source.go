// Package source loads score files for the parser. Files may be plain text or
// xz-compressed; either way the result is the decoded score text together with
// a BLAKE3 digest of that text.
package source

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/internal/validation"
)

// Source is a loaded score.
type Source struct {
	Name   string              // Path or label the score was read from
	Type   validation.FileType // Detected container type
	Text   string              // Decoded score text
	Size   int                 // Size of the raw input in bytes
	Digest string              // Hex BLAKE3-256 of Text
}

// Load reads the score at path.
func Load(path string) (*Source, error) {
	if err := validation.ValidatePath(path); err != nil {
		return nil, errors.NewValidation("path", err.Error())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read reads a score from r. name is used for type detection and messages.
func Read(r io.Reader, name string) (*Source, error) {
	raw, err := readLimited(r)
	if err != nil {
		return nil, errors.NewIO("read", name, err)
	}

	fileType, err := validation.DetectFileType(bytes.NewReader(raw), name)
	if err != nil {
		return nil, errors.NewValidation("content", err.Error())
	}

	text := raw
	switch fileType {
	case validation.FileTypeText:
	case validation.FileTypeXZ:
		text, err = decompressXZ(raw)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewUnsupported(string(fileType), "scores must be plain text or xz-compressed")
	}

	if !utf8.Valid(text) {
		return nil, errors.NewValidation("content", "score is not valid UTF-8")
	}

	return &Source{
		Name:   name,
		Type:   fileType,
		Text:   string(text),
		Size:   len(raw),
		Digest: Digest(text),
	}, nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func decompressXZ(raw []byte) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.NewIO("decompress", "", err)
	}
	text, err := readLimited(xzr)
	if err != nil {
		return nil, errors.NewIO("decompress", "", err)
	}
	return text, nil
}

// readLimited reads r fully, failing once it exceeds validation.MaxFileSize.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, validation.MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > validation.MaxFileSize {
		return nil, fmt.Errorf("%w: score exceeds %d bytes", errors.ErrInvalidInput, validation.MaxFileSize)
	}
	return data, nil
}
