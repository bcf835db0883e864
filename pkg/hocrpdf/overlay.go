package hocrpdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nickjwhite/gofpdf"
	"github.com/nickjwhite/gofpdf/contrib/gofpdi"
)

// OverlayPDF draws the hOCR text layer over the first page of an existing
// PDF instead of composing a page from an image. The output page takes the
// size derived from the hOCR geometry and the imported page is stretched to
// fill it.
func OverlayPDF(pdfData []byte, hocrInput any, config Config) ([]byte, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("input PDF data is empty")
	}
	if !IsPDF(pdfData) {
		return nil, fmt.Errorf("input data is not a PDF")
	}
	doc, err := resolveDocument(hocrInput)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("overlay requires hOCR input")
	}

	geom := ResolveGeometry(ImageInfo{}, doc, config)
	if geom.WidthIn <= 0 || geom.HeightIn <= 0 {
		return nil, fmt.Errorf("cannot derive page size: hOCR has no usable ocr_page box")
	}

	pdf := gofpdf.New("P", "in", "A4", "")
	pdf.SetCompression(config.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: geom.WidthIn, Ht: geom.HeightIn})

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdfData))
	tpl := importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	importer.UseImportedTemplate(pdf, tpl, 0, 0, geom.WidthIn, geom.HeightIn)

	if err := drawTextLayer(pdf, doc, geom, config); err != nil {
		return nil, fmt.Errorf("failed to draw text layer: %w", err)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to overlay page: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
