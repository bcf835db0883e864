package hocrpdf

import (
	"io"
)

// Config holds user options for a conversion.
type Config struct {
	Debug       bool      // Render the text layer visibly with bounding boxes
	Strict      bool      // Fail on lines that cannot be width-matched instead of skipping them
	Compress    bool      // Compress page content streams
	LogWarnings bool      // Whether to print warnings
	Logger      io.Writer // Warning destination (nil = stdout)
	ImageDPI    float64   // Fallback image resolution when no metadata is available
	OCRDPI      float64   // Assumed resolution of the OCR engine's pixel space
	Font        FontConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Compress:    true,
		LogWarnings: true,
		ImageDPI:    96,
		OCRDPI:      300,
		Font:        DefaultFont,
	}
}

// FontConfig contains font settings for the OCR text layer.
type FontConfig struct {
	Name  string  // Core font name (e.g. "Courier")
	Style string  // Font style ("", "B", "I", "BI")
	Size  float64 // Font size in points
}

// DefaultFont is a fixed-pitch face, so every glyph contributes the same
// advance width and horizontal scaling behaves predictably.
var DefaultFont = FontConfig{
	Name:  "Courier",
	Style: "",
	Size:  8,
}
