package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const MaxPictureBytes = 5 * 1024 * 1024

var (
	ErrTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedType = errors.New("unsupported file type")

	allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

// Store keeps uploaded files below root; clients fetch them under BaseURL.
type Store struct {
	root    string
	baseURL string
	newID   func() string
}

func NewStore(root, baseURL string) *Store {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Store{root: root, baseURL: baseURL, newID: uuid.NewString}
}

// CrewPicturePath builds crews/<first>_<last>_<uuid><ext>.
func (s *Store) CrewPicturePath(firstName, lastName, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%s_%s_%s%s", slug(firstName), slug(lastName), s.newID(), ext)
	return path.Join("crews", name)
}

// SaveImage writes r to rel after checking its size and sniffed content type.
func (s *Store) SaveImage(rel string, r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxPictureBytes+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxPictureBytes {
		return ErrTooLarge
	}
	if !slices.Contains(allowedImageTypes, http.DetectContentType(data)) {
		return ErrUnsupportedType
	}

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}

func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) BaseURL() string { return s.baseURL }

func slug(v string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(v)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastDash = false
		case (unicode.IsSpace(r) || r == '-') && !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
