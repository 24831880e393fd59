package chunker

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownChunker splits a markdown document along its headings, so each
// chunk stays within one section. Sections larger than ChunkSize are split
// further with the plain text window.
type MarkdownChunker struct {
	config Config
	window *TextChunker
}

func NewMarkdownChunker(config Config) (*MarkdownChunker, error) {
	window, err := NewTextChunker(config)
	if err != nil {
		return nil, err
	}
	return &MarkdownChunker{config: config, window: window}, nil
}

func (m *MarkdownChunker) Name() string { return "markdown" }

func (m *MarkdownChunker) Chunk(content, source string) ([]Chunk, error) {
	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader)

	sections := collectSections(doc, []byte(content))

	var chunks []Chunk
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		if len([]rune(section)) <= m.config.ChunkSize {
			chunks = append(chunks, newChunk(section, source, len(chunks)))
			continue
		}

		// Oversized section: fall back to the sliding window.
		parts, err := m.window.Chunk(section, source)
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			chunks = append(chunks, newChunk(part.Text, source, len(chunks)))
		}
	}

	return chunks, nil
}

// collectSections walks the AST and gathers text between headings. The
// heading line itself opens its section so retrieval keeps the title context.
func collectSections(doc ast.Node, content []byte) []string {
	var sections []string
	var current strings.Builder

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				if current.Len() > 0 {
					sections = append(sections, current.String())
					current.Reset()
				}
				current.WriteString(extractText(heading, content) + "\n\n")
				return ast.WalkSkipChildren, nil
			}
			if textNode, ok := n.(*ast.Text); ok {
				current.Write(textNode.Segment.Value(content))
			}
		} else {
			if _, ok := n.(*ast.Paragraph); ok {
				current.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	if current.Len() > 0 {
		sections = append(sections, current.String())
	}

	return sections
}

func extractText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
