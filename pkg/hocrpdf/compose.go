package hocrpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/nickjwhite/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/gardar/hocr2pdf/pkg/hocr"
)

// composePage builds a single-page PDF with the image scaled to fill the
// page and, when a document is present, an invisible width-matched text
// run per OCR line. This function assumes inputs have been validated by
// the caller.
func composePage(imageData []byte, info ImageInfo, geom PageGeometry, doc *hocr.Document, config Config) ([]byte, error) {
	imageData, info, err := normalizeImage(imageData, info)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "in", "A4", "")
	pdf.SetCompression(config.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: geom.WidthIn, Ht: geom.HeightIn})

	opts := gofpdf.ImageOptions{ImageType: info.Format}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(imageData))
	pdf.ImageOptions("page", 0, 0, geom.WidthIn, geom.HeightIn, false, opts, 0, "")

	if doc != nil {
		if err := drawTextLayer(pdf, doc, geom, config); err != nil {
			return nil, fmt.Errorf("failed to draw text layer: %w", err)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to compose page: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeImage transcodes formats the PDF writer cannot embed natively
// (TIFF scans in particular) to PNG. Natively supported data passes
// through untouched.
func normalizeImage(data []byte, info ImageInfo) ([]byte, ImageInfo, error) {
	switch info.Format {
	case "PNG", "JPEG", "JPG", "GIF":
		return data, info, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, info, fmt.Errorf("failed to decode %s image: %w", info.Format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, info, fmt.Errorf("failed to transcode %s image: %w", info.Format, err)
	}
	info.Format = "PNG"
	return buf.Bytes(), info, nil
}

// drawTextLayer renders one text run per ocr_line span, in document order.
// Outside debug mode the runs use the invisible text rendering mode, so the
// glyphs position for search and selection but never paint.
func drawTextLayer(pdf *gofpdf.Fpdf, doc *hocr.Document, geom PageGeometry, config Config) error {
	spans, err := doc.FindAll("span")
	if err != nil {
		return err
	}

	pdf.SetFont(config.Font.Name, config.Font.Style, config.Font.Size)
	if config.Debug {
		pdf.SetTextColor(255, 0, 0)
	} else {
		pdf.SetTextRenderingMode(3)
	}

	for _, span := range spans {
		if !span.HasClass("ocr_line") {
			continue
		}
		if err := drawLine(pdf, span, geom, config); err != nil {
			return err
		}
	}
	return nil
}

// drawLine places one line's text with its origin on the bottom-left corner
// of the line's bounding box and scales the glyphs horizontally so their
// natural width exactly covers the box width. The width match guarantees
// that selecting or searching the invisible text highlights the right
// region regardless of how far the font's metrics are from the scanned
// glyphs.
func drawLine(pdf *gofpdf.Fpdf, line *hocr.Element, geom PageGeometry, config Config) error {
	text := strings.TrimRight(line.Text, " \t\r\n")
	box := line.BBox()
	if box.IsZero() {
		warnf(config, "line %q has no bbox, placing at page origin", snippet(text))
	}

	// The core fonts are Latin-1 encoded.
	latin1, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		latin1 = text
	}

	naturalWidth := pdf.GetStringWidth(latin1)
	targetWidth := float64(box.Width()) / geom.DPIX
	if naturalWidth <= 0 || targetWidth <= 0 {
		if config.Strict {
			return fmt.Errorf("line %q has no measurable width", snippet(text))
		}
		warnf(config, "skipping zero-width line %q", snippet(text))
		return nil
	}

	// The page origin here is top-left; placing the baseline at y1/dpiY
	// from the top mirrors the bottom-up flip against the page height.
	x := float64(box.X0) / geom.DPIX
	y := float64(box.Y1) / geom.DPIY

	pdf.TransformBegin()
	pdf.TransformScaleX(targetWidth/naturalWidth*100, x, y)
	pdf.Text(x, y, latin1)
	pdf.TransformEnd()

	if config.Debug {
		pdf.Rect(x, float64(box.Y0)/geom.DPIY, targetWidth, float64(box.Height())/geom.DPIY, "D")
	}
	return nil
}
