package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFormat(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"resumes/abc123.pdf", "pdf"},
		{"resumes/abc123.PDF", "pdf"},
		{"jds/posting.Docx", "docx"},
		{"resumes/legacy.doc", "doc"},
		{"resumes/noextension", ""},
		{"resumes/archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, documentFormat(tt.key))
		})
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	var extractor DocExtractor

	text, err := extractor.Extract("resumes/resume.txt", []byte("plain text resume"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Empty(t, text)

	text, err = extractor.Extract("resumes/noextension", []byte("data"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Empty(t, text)
}

func TestExtractCorruptDocuments(t *testing.T) {
	var extractor DocExtractor

	text, err := extractor.Extract("resumes/broken.pdf", []byte("this is not a pdf"))
	require.Error(t, err)
	assert.Empty(t, text)

	text, err = extractor.Extract("resumes/broken.docx", []byte("this is not a zip archive"))
	require.Error(t, err)
	assert.Empty(t, text)
}

func TestDocxParagraphText(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p w:rsidR="0"><w:r><w:t>Senior Python Developer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills: SQL &amp; AWS</w:t></w:r><w:r><w:t xml:space="preserve"> and Docker</w:t></w:r></w:p>` +
		`<w:p/>` +
		`</w:body></w:document>`

	got := docxParagraphText(content)
	assert.Equal(t, "Senior Python Developer\nSkills: SQL & AWS and Docker", got)
}

func TestDocxParagraphTextEmpty(t *testing.T) {
	assert.Equal(t, "", docxParagraphText("<w:document><w:body></w:body></w:document>"))
}
