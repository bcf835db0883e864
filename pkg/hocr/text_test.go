package hocr

import (
	"testing"
)

func TestTextOrderPreserving(t *testing.T) {
	doc, err := Parse([]byte(`<html><body>A<div>B<span>C</span>D</div>E</body></html>`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Text(); got != "ABCDE" {
		t.Errorf("Text() = %q, want %q", got, "ABCDE")
	}
}

func TestTextIdempotent(t *testing.T) {
	doc, err := Parse([]byte(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	first := doc.Text()
	second := doc.Text()
	if first != second {
		t.Errorf("Text() not idempotent: %q vs %q", first, second)
	}
	if first == "" {
		t.Error("Text() returned empty output for a document with content")
	}
}

func TestTextNoBody(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?><html><head><title>x</title></head></html>`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Text(); got != "" {
		t.Errorf("Text() = %q for a document without body, want empty", got)
	}
}

func TestTextNoDocument(t *testing.T) {
	var empty Document
	if got := empty.Text(); got != "" {
		t.Errorf("Text() = %q on empty document, want empty", got)
	}
}
