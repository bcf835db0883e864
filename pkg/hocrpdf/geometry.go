package hocrpdf

import (
	"github.com/gardar/hocr2pdf/pkg/hocr"
)

// PageGeometry maps hOCR pixel coordinates onto a physical page.
// It is computed once per conversion and read-only afterwards.
type PageGeometry struct {
	WidthIn  float64 // Page width in inches
	HeightIn float64 // Page height in inches
	DPIX     float64 // hOCR pixels per inch, horizontal
	DPIY     float64 // hOCR pixels per inch, vertical
}

// ResolveGeometry reconciles the image's intrinsic resolution with the OCR
// page box to produce the final page size and pixel-to-inch mapping.
//
// The image, the OCR data, or both may lack resolution information, so the
// page size cascades: embedded image density first, then the ocr_page box
// at the assumed OCR resolution, then a plain fallback density for the
// image. The text-layer scale factors always come from the ocr_page box
// against the resolved page size, since image and OCR pixel spaces may
// differ when the two were produced at different resolutions.
func ResolveGeometry(img ImageInfo, doc *hocr.Document, config Config) PageGeometry {
	geom := PageGeometry{DPIX: config.OCRDPI, DPIY: config.OCRDPI}

	var width, height float64
	resolved := false
	if img.DPIX > 0 && img.DPIY > 0 {
		width = float64(img.WidthPx) / img.DPIX
		height = float64(img.HeightPx) / img.DPIY
		resolved = true
	}

	if page := firstPage(doc, config); page != nil {
		box := page.BBox()
		ocrWidth := float64(box.Width())
		ocrHeight := float64(box.Height())
		if ocrWidth <= 0 || ocrHeight <= 0 {
			warnf(config, "ocr_page has no usable bbox, ignoring it")
		} else {
			if !resolved {
				// No density with the image; assume the OCR engine's resolution.
				width = ocrWidth / config.OCRDPI
				height = ocrHeight / config.OCRDPI
				resolved = true
			}
			if width > 0 && height > 0 {
				geom.DPIX = ocrWidth / width
				geom.DPIY = ocrHeight / height
			}
		}
	}

	if !resolved {
		warnf(config, "DPI unavailable for image, assuming %g DPI", config.ImageDPI)
		width = float64(img.WidthPx) / config.ImageDPI
		height = float64(img.HeightPx) / config.ImageDPI
	}

	geom.WidthIn = width
	geom.HeightIn = height
	return geom
}

// firstPage returns the first ocr_page div of the document, if any.
// hOCR defines exactly one page-defining div per page; extras are ignored
// with a warning.
func firstPage(doc *hocr.Document, config Config) *hocr.Element {
	if doc == nil {
		return nil
	}
	divs, err := doc.FindAll("div")
	if err != nil {
		return nil
	}
	var pages []*hocr.Element
	for _, div := range divs {
		if div.HasClass("ocr_page") {
			pages = append(pages, div)
		}
	}
	if len(pages) == 0 {
		return nil
	}
	if len(pages) > 1 {
		warnf(config, "%d ocr_page elements found, using the first", len(pages))
	}
	return pages[0]
}
