package media

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus padding
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func TestCrewPicturePath(t *testing.T) {
	s := NewStore(t.TempDir(), "/media/")

	p := s.CrewPicturePath("John", "Doe", "photo.JPG")

	assert.True(t, strings.HasPrefix(p, "crews/john_doe_"))
	assert.True(t, strings.HasSuffix(p, ".jpg"))

	id := strings.TrimSuffix(strings.Split(p, "_")[2], ".jpg")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestCrewPicturePath_Slugifies(t *testing.T) {
	s := NewStore(t.TempDir(), "/media")
	s.newID = func() string { return "fixed" }

	assert.Equal(t, "crews/mary-ann_o-neil_fixed.png", s.CrewPicturePath(" Mary Ann ", "O-Neil!", "x.png"))
}

func TestStore_SaveImage(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, "/media/")

	err := s.SaveImage("crews/john_doe_1.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "crews", "john_doe_1.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	require.NoError(t, s.Remove("crews/john_doe_1.png"))
	_, err = os.Stat(filepath.Join(root, "crews", "john_doe_1.png"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Remove("crews/john_doe_1.png"))
}

func TestStore_SaveImage_RejectsNonImage(t *testing.T) {
	s := NewStore(t.TempDir(), "/media/")

	err := s.SaveImage("crews/a.txt", strings.NewReader("plain text, not a picture"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStore_SaveImage_TooLarge(t *testing.T) {
	s := NewStore(t.TempDir(), "/media/")

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, MaxPictureBytes)...)
	err := s.SaveImage("crews/big.png", bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestStore_BaseURL(t *testing.T) {
	assert.Equal(t, "/media/", NewStore("./media", "/media").BaseURL())
	assert.Equal(t, "/media/", NewStore("./media", "/media/").BaseURL())
}
