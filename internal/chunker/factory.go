package chunker

import "path/filepath"

// Factory picks a chunker per source file.
type Factory struct {
	config Config
}

func NewFactory(config Config) (*Factory, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Factory{config: config}, nil
}

// ForFile returns the chunker matching the file's extension, matched
// case-sensitively like the loader's eligibility check. Plain text is the
// default.
func (f *Factory) ForFile(path string) (Chunker, error) {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return NewMarkdownChunker(f.config)
	default:
		return NewTextChunker(f.config)
	}
}
