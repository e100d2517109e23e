package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadImageRejectsPathTraversal(t *testing.T) {
	svc := NewImageService(t.TempDir(), nil)

	_, err := svc.DownloadImage(context.Background(), "http://example.com/a.jpg", "../etc/passwd")
	assert.ErrorIs(t, err, ErrUnsafePath)
}

func TestUniqueFileName(t *testing.T) {
	assert.NotEqual(t, uniqueFileName("menu.png"), uniqueFileName("menu.png"))

	assert.Equal(t, ".png", ext(uniqueFileName("menu.png")))
	assert.Equal(t, ".webp", ext(uniqueFileName("UPPER.WEBP")))
	// Unknown or hostile extensions fall back to jpg.
	assert.Equal(t, ".jpg", ext(uniqueFileName("shell.php")))
	assert.Equal(t, ".jpg", ext(uniqueFileName("../../escape")))
}

func ext(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ""
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor("a.png"))
	assert.Equal(t, "image/jpeg", contentTypeFor("a.jpeg"))
	assert.Equal(t, "image/svg+xml", contentTypeFor("a.SVG"))
	assert.Equal(t, "image/jpeg", contentTypeFor("noext"))
}
