package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/domain"
)

var allowedExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// Store writes uploaded files to a local directory under generated
// unique names. Deleting a record never removes its files.
type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string { return s.dir }

type Upload struct {
	Token      string `json:"token"`
	FileName   string `json:"fileName"`
	PublicPath string `json:"path"`
	Size       int64  `json:"size"`
}

// Save stores one multipart file as ${unixMillis}-${randomHex}${ext}.
func (s *Store) Save(fh *multipart.FileHeader) (Upload, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return Upload{}, fmt.Errorf("file type %q not allowed: %w", ext, domain.ErrValidation)
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return Upload{}, fmt.Errorf("file exceeds %d bytes: %w", s.maxBytes, domain.ErrValidation)
	}

	src, err := fh.Open()
	if err != nil {
		return Upload{}, err
	}
	defer src.Close()

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return Upload{}, err
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return Upload{}, err
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		return Upload{}, err
	}
	return Upload{
		Token:      uuid.NewString(),
		FileName:   name,
		PublicPath: path.Join("/uploads", name),
		Size:       n,
	}, nil
}
