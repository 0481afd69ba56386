// Package artifact inspects invoice artifact files (the generated
// PDF and XML documents referenced by an invoice record) without
// rendering them.
package artifact

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Format represents a detected artifact format
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatXML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// Info describes an inspected artifact
type Info struct {
	Format   Format `json:"-"`
	Name     string `json:"format"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
	Pages    int    `json:"pages,omitempty"`
}

// DetectFormat identifies the artifact format from content
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}

	// PDF magic
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return FormatPDF
	}

	// XML, with or without a UTF-8 BOM
	trimmed := bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return FormatXML
	}

	return FormatUnknown
}

// MimeType maps a format to its MIME type
func MimeType(f Format) string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXML:
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}

// Inspect detects format and size and, for PDFs, reads the page
// count. A PDF that pdfcpu cannot read is still reported as a PDF
// with zero pages; the caller decides whether that is an error.
func Inspect(data []byte) Info {
	format := DetectFormat(data)
	info := Info{
		Format:   format,
		Name:     format.String(),
		MimeType: MimeType(format),
		Size:     len(data),
	}

	if format == FormatPDF {
		if pages, err := PDFPageCount(data); err == nil {
			info.Pages = pages
		}
	}

	return info
}

// PDFPageCount returns the number of pages in a PDF artifact
func PDFPageCount(data []byte) (int, error) {
	return api.PageCount(bytes.NewReader(data), nil)
}
