package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/scene"
)

func TestWriteFileScene(t *testing.T) {
	s := scene.New(600, 400)
	s.Name.Outline = true
	s.PointerMove(geom.V(450, 120), time.Now())

	path := filepath.Join(t.TempDir(), "frame.pdf")
	require.NoError(t, WriteFile(path, 600, 400, fonts.NewLibrary(), s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWriteFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "frame.pdf")
	err := WriteFile(path, 600, 400, fonts.NewLibrary(), scene.New(600, 400))
	assert.Error(t, err)
}

func TestClearReusesBlankPage(t *testing.T) {
	c := NewPDFCanvas(100, 100, fonts.NewLibrary())
	c.Clear()
	assert.Equal(t, 1, c.PageCount())

	s := scene.New(100, 100)
	s.Draw(c)
	assert.Equal(t, 1, c.PageCount())

	s.Draw(c)
	assert.Equal(t, 2, c.PageCount(), "redraw after painting starts a new page")

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	assert.NotZero(t, buf.Len())
}

func TestWithPDFExt(t *testing.T) {
	tests := map[string]string{
		"frame":         "frame.pdf",
		"frame.pdf":     "frame.pdf",
		"frame.PDF":     "frame.PDF",
		"frame.png":     "frame.png.pdf",
		"dir.v2/output": "dir.v2/output.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, WithPDFExt(in), in)
	}
}
