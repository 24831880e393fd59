package chunker

import "errors"

// Chunk is a bounded piece of a source document, the unit of retrieval.
type Chunk struct {
	ID     string // short hash of source+index+text, unique per chunk
	Text   string
	Source string // name of the originating file
	Index  int    // position of the chunk within its document
}

// Chunker splits document content into chunks.
type Chunker interface {
	Chunk(content, source string) ([]Chunk, error)

	// Name identifies the chunker in logs.
	Name() string
}

// Config holds the window parameters shared by all chunkers.
type Config struct {
	ChunkSize int // maximum chunk size in characters
	Overlap   int // characters shared between consecutive chunks
}

// ErrInvalidConfig is returned by constructors before any chunk is produced.
var ErrInvalidConfig = errors.New("invalid chunker configuration")

func (c Config) validate() error {
	if c.ChunkSize <= 0 {
		return ErrInvalidConfig
	}
	if c.Overlap < 0 || c.Overlap >= c.ChunkSize {
		return ErrInvalidConfig
	}
	return nil
}
