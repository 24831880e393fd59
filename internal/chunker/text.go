package chunker

// TextChunker slides a fixed-size rune window over plain text, advancing by
// ChunkSize-Overlap so consecutive chunks share exactly Overlap characters.
// The final chunk may be shorter; a document shorter than ChunkSize yields a
// single chunk equal to the whole document.
type TextChunker struct {
	config Config
}

func NewTextChunker(config Config) (*TextChunker, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &TextChunker{config: config}, nil
}

func (t *TextChunker) Name() string { return "text" }

func (t *TextChunker) Chunk(content, source string) ([]Chunk, error) {
	runes := []rune(content)
	step := t.config.ChunkSize - t.config.Overlap

	var chunks []Chunk
	for start := 0; start < len(runes); start += step {
		end := start + t.config.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}

		chunks = append(chunks, newChunk(string(runes[start:end]), source, len(chunks)))

		if end >= len(runes) {
			break
		}
	}

	return chunks, nil
}
