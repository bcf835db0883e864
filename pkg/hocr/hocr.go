// Package hocr implements parsing of hOCR data, an HTML-based standard
// format for representing OCR results.
//
// This package provides:
//
// - A generic element tree representing a parsed hOCR document
// - Namespace-aware element lookup across the tree
// - Extraction of bounding boxes from hOCR 'title' attributes
// - Plain-text extraction of the document body
//
// hOCR files are nominally XHTML, so parsing first attempts a strict XML
// decode, which preserves namespace information. Documents that are not
// well-formed XML are reparsed leniently as HTML.
//
// Key Types:
//
// - Document: a parsed hOCR document with its inferred namespace
// - Element: one node of the tree (tag, attributes, children, text, tail)
// - BoundingBox: a rectangle in source-pixel coordinates
//
// Main Functions:
//
// - Parse: parses raw hOCR data into a Document
// - Document.FindAll: namespace-qualified element lookup in document order
// - Document.Text: plain-text extraction of the body element
package hocr
