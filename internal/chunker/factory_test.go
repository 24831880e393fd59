package chunker

import (
	"errors"
	"testing"
)

func TestFactory_PicksChunkerByExtension(t *testing.T) {
	f, err := NewFactory(Config{ChunkSize: 500, Overlap: 50})
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}

	cases := []struct {
		path string
		want string
	}{
		{"guide.md", "markdown"},
		{"guide.markdown", "markdown"},
		{"guide.MD", "text"}, // extensions match case-sensitively, like the loader
		{"guide.txt", "text"},
		{"guide.pdf", "text"},
		{"guide", "text"},
	}
	for _, tc := range cases {
		c, err := f.ForFile(tc.path)
		if err != nil {
			t.Fatalf("ForFile(%s): %v", tc.path, err)
		}
		if c.Name() != tc.want {
			t.Fatalf("ForFile(%s): expected %s chunker, got %s", tc.path, tc.want, c.Name())
		}
	}
}

func TestFactory_RejectsInvalidConfig(t *testing.T) {
	if _, err := NewFactory(Config{ChunkSize: 100, Overlap: 100}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
