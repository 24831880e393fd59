package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

// Document is one loaded input file. Immutable once created; the pipeline
// discards it after chunking.
type Document struct {
	Source  string // base name of the file
	Content string
}

// ErrNoDocuments is returned when the docs directory contains no eligible
// files. Fatal at startup.
var ErrNoDocuments = errors.New("no documents found")

// Load reads all eligible files from dir, non-recursively. The convention is
// plain-text .txt files (extension matched case-sensitively); .md and .pdf
// are accepted as well. Files that fail to read are logged and skipped.
func Load(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read docs directory: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)

		var content string
		switch filepath.Ext(name) {
		case ".txt", ".md":
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("skipping %s: %v", name, err)
				continue
			}
			content = string(data)
		case ".pdf":
			text, err := readPDF(path)
			if err != nil {
				log.Printf("skipping %s: %v", name, err)
				continue
			}
			content = text
		default:
			continue
		}

		docs = append(docs, Document{Source: name, Content: content})
		log.Printf("loaded %s (%d characters)", name, len(content))
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no .txt, .md or .pdf files in %s", ErrNoDocuments, dir)
	}
	return docs, nil
}

func readPDF(path string) (string, error) {
	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	r, err := rdr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
