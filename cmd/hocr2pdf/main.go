// hocr2pdf is a command-line tool for creating searchable PDFs from hOCR
// files and page images.
//
// The output PDF shows the page image with an invisible OCR text layer
// positioned beneath it, so the document is searchable and selectable while
// looking exactly like the scan. If the page input is itself a PDF, the
// text layer is applied over its first page instead.
//
// Usage:
//
//	hocr2pdf [options] input.hocr page-image output.pdf
//
// Positional arguments:
//
//	input.hocr   Path to the hOCR file
//	page-image   Path to the page image (or an existing PDF page)
//	output.pdf   Output PDF path
//
// Options:
//
//	-config string  Path to a YAML configuration file
//	-text string    Also write the plain-text extraction to this path
//	-debug          Render the text layer visibly (red, with boxes)
//	-overwrite      Overwrite the output PDF if it already exists
//
// Configuration file:
//
//	font:
//	  name: Courier
//	  style: ""
//	  size: 8
//	image_dpi: 96
//	ocr_dpi: 300
//	strict: false
//
// Example:
//
//	hocr2pdf page.hocr page.png page_searchable.pdf
//	hocr2pdf -text page.txt page.hocr page.jpg page_searchable.pdf
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/hocr2pdf/pkg/hocrpdf"
)

type yamlConfig struct {
	Font struct {
		Name  string  `yaml:"name"`
		Style string  `yaml:"style"`
		Size  float64 `yaml:"size"`
	} `yaml:"font"`
	ImageDPI float64 `yaml:"image_dpi"`
	OCRDPI   float64 `yaml:"ocr_dpi"`
	Strict   bool    `yaml:"strict"`
}

// loadConfig reads a YAML file and overlays it onto the defaults.
func loadConfig(path string, config hocrpdf.Config) (hocrpdf.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return config, err
	}
	if yc.Font.Name != "" {
		config.Font.Name = yc.Font.Name
	}
	if yc.Font.Style != "" {
		config.Font.Style = yc.Font.Style
	}
	if yc.Font.Size > 0 {
		config.Font.Size = yc.Font.Size
	}
	if yc.ImageDPI > 0 {
		config.ImageDPI = yc.ImageDPI
	}
	if yc.OCRDPI > 0 {
		config.OCRDPI = yc.OCRDPI
	}
	config.Strict = yc.Strict
	return config, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hocr2pdf [options] input.hocr page-image output.pdf")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	textPath := flag.String("text", "", "Also write the plain-text extraction to this path")
	debug := flag.Bool("debug", false, "Render the text layer visibly for inspection")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 3 {
		usage()
		os.Exit(1)
	}
	hocrPath, pagePath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	config := hocrpdf.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = loadConfig(*configPath, config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	config.Debug = *debug

	if _, err := os.Stat(outPath); err == nil && !*overwrite {
		fmt.Fprintf(os.Stderr, "Output file %s already exists. Use -overwrite to replace it.\n", outPath)
		os.Exit(1)
	}

	hocrData, err := os.ReadFile(hocrPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read hOCR file: %v\n", err)
		os.Exit(1)
	}
	pageData, err := os.ReadFile(pagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read page file: %v\n", err)
		os.Exit(1)
	}

	var finalPDF []byte
	if hocrpdf.IsPDF(pageData) {
		finalPDF, err = hocrpdf.OverlayPDF(pageData, hocrData, config)
	} else {
		finalPDF, err = hocrpdf.Convert(hocrData, pageData, config)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conversion failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, finalPDF, 0666); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}

	if *textPath != "" {
		text, err := hocrpdf.ExtractText(hocrData)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Text extraction failed: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*textPath, []byte(text), 0666); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write text output: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Searchable PDF created:", outPath)
}
