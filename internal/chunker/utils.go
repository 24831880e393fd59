package chunker

import (
	"crypto/sha256"
	"fmt"
)

func newChunk(text, source string, index int) Chunk {
	// The index is part of the identity: repetitive documents produce windows
	// with identical text, and each window must stay a distinct record.
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", source, index, text)))

	return Chunk{
		ID:     fmt.Sprintf("%x", hash[:8]),
		Text:   text,
		Source: source,
		Index:  index,
	}
}
