// Package upload stores user-submitted images on local disk and serves them
// back under a stable public path.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	// MaxFileSize caps uploads at 5 MB.
	MaxFileSize = 5 << 20

	sniffLen = 512
)

var (
	ErrTooLarge        = errors.New("file exceeds the 5MB size limit")
	ErrUnsupportedType = errors.New("only png and jpeg images are accepted")
)

// allowedTypes maps accepted content types (as detected from the file's
// leading bytes, not the client-declared header) to their file extensions.
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

type Stored struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Store writes validated image files into a directory. Filenames are ULIDs,
// so they sort by upload time and never collide with client-chosen names.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists one image. The content type is detected from
// the file's magic bytes; the reader is rejected once it exceeds MaxFileSize.
func (s *Store) Save(r io.Reader) (*Stored, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	filename := ulid.Make().String() + ext
	dst, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	tmpName := dst.Name()

	// +1 so a stream of exactly the limit passes and one byte more fails.
	limited := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), MaxFileSize+1)
	written, err := io.Copy(dst, limited)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > MaxFileSize {
		_ = os.Remove(tmpName)
		return nil, ErrTooLarge
	}

	finalPath := filepath.Join(s.dir, filename)
	if err := os.Rename(tmpName, finalPath); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	return &Stored{
		Filename: filename,
		Path:     s.baseURL + "/uploads/" + filename,
	}, nil
}
