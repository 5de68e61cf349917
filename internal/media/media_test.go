package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestProcessImage_CropFillsBox(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 900, 600), AvatarSpec)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 512, cfg.Height)
}

func TestProcessImage_FitKeepsAspect(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 800, 200), LogoSpec)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestProcessImage_SmallImageNotUpscaled(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 120, 80), LogoSpec)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestProcessImage_RejectsNonImage(t *testing.T) {
	_, err := ProcessImage([]byte("%PDF-1.4 not an image"), AvatarSpec)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateCV_RejectsNonPDF(t *testing.T) {
	_, err := ValidateCV(pngBytes(t, 10, 10), 10)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDetectAttachment(t *testing.T) {
	ext, err := DetectAttachment(pngBytes(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)

	_, err = DetectAttachment([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFileStore_SaveDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "avatars/a.webp", []byte("data")))
	got, err := os.ReadFile(filepath.Join(dir, "avatars", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	require.NoError(t, store.Delete(ctx, "avatars/a.webp"))
	_, err = os.Stat(filepath.Join(dir, "avatars", "a.webp"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(ctx, "avatars/a.webp"))
}

func TestFileStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../x", "a/../../x", "/etc/passwd"} {
		assert.ErrorIs(t, store.Save(context.Background(), key, []byte("x")), ErrInvalidKey, key)
	}
}

func TestNewKey(t *testing.T) {
	key := NewKey("cvs", ".pdf")
	assert.True(t, strings.HasPrefix(key, "cvs/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, key, NewKey("cvs", ".pdf"))
}
