package pptx

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, r *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestDeck_SaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.pptx")

	deck := NewDeck()
	deck.AddSlide("Introduction", []string{"first point", "second point"})
	deck.AddSlide("Details", []string{"one & only"})

	require.NoError(t, deck.SaveTo(path))

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		assert.True(t, names[want], "missing part %s", want)
	}

	slide1 := readPart(t, r, "ppt/slides/slide1.xml")
	assert.Contains(t, slide1, "<a:t>Introduction</a:t>")
	assert.Contains(t, slide1, "<a:t>first point</a:t>")
	assert.Contains(t, slide1, "<a:t>second point</a:t>")

	// Text content must be XML-escaped
	slide2 := readPart(t, r, "ppt/slides/slide2.xml")
	assert.Contains(t, slide2, "one &amp; only")
	assert.NotContains(t, slide2, "one & only")

	// Both slides referenced from the presentation part
	pres := readPart(t, r, "ppt/presentation.xml")
	assert.Equal(t, 2, strings.Count(pres, "<p:sldId "))

	types := readPart(t, r, "[Content_Types].xml")
	assert.Equal(t, 2, strings.Count(types, "presentationml.slide+xml"))
}

func TestDeck_SaveTo_EmptyDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pptx")
	assert.Error(t, NewDeck().SaveTo(path))
}

func TestDeck_SlideCount(t *testing.T) {
	deck := NewDeck()
	assert.Equal(t, 0, deck.SlideCount())
	deck.AddSlide("only", nil)
	assert.Equal(t, 1, deck.SlideCount())
}
