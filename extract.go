package main

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// DocExtractor converts stored pdf/docx/doc documents into plain text.
type DocExtractor struct{}

// Extract dispatches on the key's filename extension, case-insensitive.
// Callers treat any returned error as "no text": a bad upload degrades
// to an empty resume, it never aborts the pass that hit it.
func (DocExtractor) Extract(key string, data []byte) (string, error) {
	format := documentFormat(key)
	switch format {
	case "pdf":
		return extractPDFText(bytes.NewReader(data), int64(len(data)))
	case "docx", "doc":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// documentFormat returns the lowercased filename extension without the
// dot, or "" when the key has none.
func documentFormat(key string) string {
	ext := strings.ToLower(path.Ext(key))
	return strings.TrimPrefix(ext, ".")
}

func extractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// a page with no extractable text contributes nothing
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxParagraphText(doc.Editable().GetContent()), nil
}

var (
	docxParagraphRe = regexp.MustCompile(`(?s)<w:p(?: [^>]*)?>.*?</w:p>`)
	xmlTagRe        = regexp.MustCompile(`<[^>]+>`)
)

// docxParagraphText flattens WordprocessingML into the document's
// paragraphs joined by single newlines.
func docxParagraphText(content string) string {
	var paragraphs []string
	for _, p := range docxParagraphRe.FindAllString(content, -1) {
		paragraphs = append(paragraphs, html.UnescapeString(xmlTagRe.ReplaceAllString(p, "")))
	}
	return strings.Join(paragraphs, "\n")
}
