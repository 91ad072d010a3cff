package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputPlainFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Act
	data, err := readInput(path)

	// Assert
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestReadInputGzipRoundTrip(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "doc.txt.gz")
	content := []byte("the cat sat on the mat\r\nsecond line\r\n")
	if err := writeOutput(path, content); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}

	// Act
	data, err := readInput(path)

	// Assert
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != string(content) {
		t.Fatalf("round trip mismatch: %q", data)
	}

	// The file on disk must actually be compressed, not plain text.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		t.Fatalf("expected gzip magic bytes, got % x", raw[:2])
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "nonexistent")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
