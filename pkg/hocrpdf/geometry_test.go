package hocrpdf

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gardar/hocr2pdf/pkg/hocr"
)

func mustParse(t *testing.T, data string) *hocr.Document {
	t.Helper()
	doc, err := hocr.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse hOCR: %v", err)
	}
	return doc
}

func pageDoc(t *testing.T, bbox string) *hocr.Document {
	t.Helper()
	return mustParse(t, `<html><body><div class="ocr_page" title="bbox `+bbox+`"></div></body></html>`)
}

func quietConfig() Config {
	config := DefaultConfig()
	config.LogWarnings = false
	return config
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveGeometryExplicitImageDPI(t *testing.T) {
	img := ImageInfo{WidthPx: 2550, HeightPx: 3300, DPIX: 300, DPIY: 300}
	geom := ResolveGeometry(img, nil, quietConfig())
	if !approx(geom.WidthIn, 8.5) || !approx(geom.HeightIn, 11) {
		t.Errorf("page size = %gx%g in, want 8.5x11", geom.WidthIn, geom.HeightIn)
	}
}

func TestResolveGeometryAssumedOCRDPI(t *testing.T) {
	img := ImageInfo{WidthPx: 2550, HeightPx: 3300}
	doc := pageDoc(t, "0 0 2550 3300")
	geom := ResolveGeometry(img, doc, quietConfig())
	if !approx(geom.WidthIn, 8.5) || !approx(geom.HeightIn, 11) {
		t.Errorf("page size = %gx%g in, want 8.5x11", geom.WidthIn, geom.HeightIn)
	}
	if !approx(geom.DPIX, 300) || !approx(geom.DPIY, 300) {
		t.Errorf("dpi = %gx%g, want 300x300", geom.DPIX, geom.DPIY)
	}
}

func TestResolveGeometryImageFallback(t *testing.T) {
	img := ImageInfo{WidthPx: 960, HeightPx: 1080}
	var warnings bytes.Buffer
	config := DefaultConfig()
	config.Logger = &warnings
	geom := ResolveGeometry(img, nil, config)
	if !approx(geom.WidthIn, 10) || !approx(geom.HeightIn, 11.25) {
		t.Errorf("page size = %gx%g in, want 10x11.25", geom.WidthIn, geom.HeightIn)
	}
	if !approx(geom.DPIX, 300) || !approx(geom.DPIY, 300) {
		t.Errorf("dpi = %gx%g, want the 300 default", geom.DPIX, geom.DPIY)
	}
	if !strings.Contains(warnings.String(), "96") {
		t.Errorf("expected a 96 DPI warning, got %q", warnings.String())
	}
}

func TestResolveGeometryMismatchedResolutions(t *testing.T) {
	// Image scanned at 150 DPI, OCR run on a 300 DPI rendition of the
	// same 8.5x11 page. The text layer must follow the OCR pixel space.
	img := ImageInfo{WidthPx: 1275, HeightPx: 1650, DPIX: 150, DPIY: 150}
	doc := pageDoc(t, "0 0 2550 3300")
	geom := ResolveGeometry(img, doc, quietConfig())
	if !approx(geom.WidthIn, 8.5) || !approx(geom.HeightIn, 11) {
		t.Errorf("page size = %gx%g in, want 8.5x11", geom.WidthIn, geom.HeightIn)
	}
	if !approx(geom.DPIX, 300) || !approx(geom.DPIY, 300) {
		t.Errorf("dpi = %gx%g, want 300x300", geom.DPIX, geom.DPIY)
	}
}

func TestResolveGeometryMultiplePagesWarns(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="ocr_page" title="bbox 0 0 2550 3300"></div>
<div class="ocr_page" title="bbox 0 0 100 100"></div>
</body></html>`)
	var warnings bytes.Buffer
	config := DefaultConfig()
	config.Logger = &warnings
	geom := ResolveGeometry(ImageInfo{WidthPx: 2550, HeightPx: 3300}, doc, config)
	if !approx(geom.WidthIn, 8.5) {
		t.Errorf("width = %g, want the first page's 8.5", geom.WidthIn)
	}
	if !strings.Contains(warnings.String(), "ocr_page") {
		t.Errorf("expected a multiple ocr_page warning, got %q", warnings.String())
	}
}

func TestResolveGeometryNonSquarePixels(t *testing.T) {
	img := ImageInfo{WidthPx: 1000, HeightPx: 1000, DPIX: 100, DPIY: 200}
	geom := ResolveGeometry(img, nil, quietConfig())
	if !approx(geom.WidthIn, 10) || !approx(geom.HeightIn, 5) {
		t.Errorf("page size = %gx%g in, want 10x5", geom.WidthIn, geom.HeightIn)
	}
}
