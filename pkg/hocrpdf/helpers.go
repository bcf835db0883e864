package hocrpdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// getLogger returns the io.Writer to use for warnings,
// defaulting to os.Stdout when none is configured.
func getLogger(config Config) io.Writer {
	if config.Logger == nil {
		return os.Stdout
	}
	return config.Logger
}

// warnf prints a non-fatal diagnostic if warnings are enabled.
func warnf(config Config, format string, args ...any) {
	if !config.LogWarnings {
		return
	}
	fmt.Fprintf(getLogger(config), "Warning: "+format+"\n", args...)
}

// IsPDF reports whether the data begins with a PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// snippet shortens line text for diagnostics.
func snippet(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
