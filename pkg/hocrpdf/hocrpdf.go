// Package hocrpdf converts hOCR documents into searchable PDFs: a scanned
// page image with an invisible, positionally-aligned text layer beneath it.
//
// The conversion reconciles three independent measurement spaces: the OCR
// engine's pixel space, the image's pixel space, and the PDF's point-based
// page space. Page size and the pixel-to-inch scale factors are resolved
// from whatever resolution information is available, falling back to
// plausible defaults when the image or the OCR data carry none.
//
// The resulting text layer is:
// - Fully searchable
// - Selectable with mouse drag operations
// - Aligned with the visible scan at any zoom level
//
// Main Functions:
//
// - Convert: builds a single-page PDF from an image and hOCR data
// - OverlayPDF: applies the text layer to an existing PDF page
// - ExtractText: plain-text extraction of the hOCR body
package hocrpdf

import (
	"fmt"

	"github.com/gardar/hocr2pdf/pkg/hocr"
)

// Convert builds a single-page searchable PDF from a page image and hOCR
// data. It accepts raw hOCR data ([]byte), a parsed *hocr.Document, or nil
// for an image-only page.
//
// The image need not be identical to the one the OCR ran on: it can be
// scaled, have a different resolution or color mode, and the text layer
// still lands on the right spots.
func Convert(hocrInput any, imageData []byte, config Config) ([]byte, error) {
	doc, err := resolveDocument(hocrInput)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		warnf(config, "no hOCR provided, PDF will be image-only")
	}

	if len(imageData) == 0 {
		return nil, fmt.Errorf("no image data provided")
	}
	info, err := inspectImage(imageData)
	if err != nil {
		return nil, fmt.Errorf("invalid page image: %w", err)
	}

	geom := ResolveGeometry(info, doc, config)
	return composePage(imageData, info, geom, doc, config)
}

// ExtractText returns the plain-text content of the hOCR body.
// It accepts raw hOCR data ([]byte) or a parsed *hocr.Document.
func ExtractText(hocrInput any) (string, error) {
	doc, err := resolveDocument(hocrInput)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", nil
	}
	return doc.Text(), nil
}

// resolveDocument handles the different hOCR input types.
func resolveDocument(hocrInput any) (*hocr.Document, error) {
	switch h := hocrInput.(type) {
	case nil:
		return nil, nil
	case []byte:
		doc, err := hocr.Parse(h)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hOCR data: %w", err)
		}
		return doc, nil
	case *hocr.Document:
		return h, nil
	default:
		return nil, fmt.Errorf("unsupported hOCR input type: %T", hocrInput)
	}
}
