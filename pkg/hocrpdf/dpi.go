package hocrpdf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageInfo describes a decoded page image.
type ImageInfo struct {
	WidthPx  int     // Intrinsic width in pixels
	HeightPx int     // Intrinsic height in pixels
	DPIX     float64 // Embedded horizontal density, 0 when absent
	DPIY     float64 // Embedded vertical density, 0 when absent
	Format   string  // Upper-cased format name as registered with image.Decode
}

// inspectImage determines the image's format, pixel size, and any embedded
// density metadata. Scanned images frequently carry no density at all, in
// which case both DPI fields stay zero and the geometry cascade decides.
func inspectImage(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("failed to decode image config: %w", err)
	}
	info := ImageInfo{
		WidthPx:  cfg.Width,
		HeightPx: cfg.Height,
		Format:   strings.ToUpper(format),
	}
	info.DPIX, info.DPIY = imageDPI(data)
	return info, nil
}

// imageDPI reads embedded pixel density from JPEG JFIF and PNG pHYs data.
// The standard image decoders discard density metadata, so the containers
// are walked directly. Returns zeros when no density is recorded.
func imageDPI(data []byte) (float64, float64) {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return jpegDPI(data)
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return pngDPI(data)
	}
	return 0, 0
}

// jpegDPI walks JPEG segments up to the start of scan looking for a JFIF
// APP0 density declaration.
func jpegDPI(data []byte) (float64, float64) {
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return 0, 0
		}
		marker := data[i+1]
		// Standalone markers carry no length field.
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD8) {
			i += 2
			continue
		}
		if marker == 0xDA {
			break
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 || i+2+segLen > len(data) {
			return 0, 0
		}
		if marker == 0xE0 {
			seg := data[i+4 : i+2+segLen]
			if bytes.HasPrefix(seg, []byte("JFIF\x00")) && len(seg) >= 12 {
				x := float64(binary.BigEndian.Uint16(seg[8:10]))
				y := float64(binary.BigEndian.Uint16(seg[10:12]))
				switch seg[7] {
				case 1: // dots per inch
					return x, y
				case 2: // dots per centimeter
					return x * 2.54, y * 2.54
				}
				return 0, 0 // aspect ratio only
			}
		}
		i += 2 + segLen
	}
	return 0, 0
}

// pngDPI walks PNG chunks looking for a pHYs declaration ahead of the
// image data.
func pngDPI(data []byte) (float64, float64) {
	i := 8
	for i+8 <= len(data) {
		chunkLen := int(binary.BigEndian.Uint32(data[i : i+4]))
		chunkType := string(data[i+4 : i+8])
		if chunkType == "pHYs" && chunkLen == 9 && i+17 <= len(data) {
			body := data[i+8 : i+17]
			if body[8] == 1 { // pixels per meter
				x := float64(binary.BigEndian.Uint32(body[0:4])) * 0.0254
				y := float64(binary.BigEndian.Uint32(body[4:8])) * 0.0254
				return x, y
			}
			return 0, 0 // unit unspecified, aspect ratio only
		}
		if chunkType == "IDAT" || chunkType == "IEND" {
			break
		}
		i += 12 + chunkLen // length + type + data + CRC
	}
	return 0, 0
}
