package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/philippgille/chromem-go"

	"tourguide/internal/chunker"
)

// Result is one retrieved chunk, nearest-first ordering is preserved by
// Search.
type Result struct {
	Text       string
	Source     string
	Similarity float32
}

var (
	// ErrEmptyStore is returned by Search before any successful Build.
	ErrEmptyStore = errors.New("vector store is empty, index documents first")
	// ErrBadTopK is returned for a non-positive n_results.
	ErrBadTopK = errors.New("n_results must be a positive integer")
)

// VectorStore persists chunk embeddings in a chromem-go collection under a
// directory on disk. Deleting that directory (or calling Reset) is the
// rebuild mechanism. The embedding function is fixed for the lifetime of the
// store; mixing embedding models invalidates the index.
type VectorStore struct {
	db         *chromem.DB
	collection string
	embed      chromem.EmbeddingFunc
}

// Options configures Open.
type Options struct {
	Dir        string
	Collection string
	Embedding  chromem.EmbeddingFunc
}

// Open loads (or creates) the persistent database and its collection.
func Open(opts Options) (*VectorStore, error) {
	db, err := chromem.NewPersistentDB(opts.Dir, false)
	if err != nil {
		return nil, fmt.Errorf("open vector db at %s: %w", opts.Dir, err)
	}
	if _, err := db.GetOrCreateCollection(opts.Collection, nil, opts.Embedding); err != nil {
		return nil, fmt.Errorf("open collection %q: %w", opts.Collection, err)
	}
	return &VectorStore{db: db, collection: opts.Collection, embed: opts.Embedding}, nil
}

func (s *VectorStore) coll() *chromem.Collection {
	return s.db.GetCollection(s.collection, s.embed)
}

// Count reports the number of stored embedding records.
func (s *VectorStore) Count() int {
	coll := s.coll()
	if coll == nil {
		return 0
	}
	return coll.Count()
}

// Reset drops every stored record. Used by --rebuild.
func (s *VectorStore) Reset() error {
	if err := s.db.DeleteCollection(s.collection); err != nil {
		return fmt.Errorf("delete collection %q: %w", s.collection, err)
	}
	if _, err := s.db.CreateCollection(s.collection, nil, s.embed); err != nil {
		return fmt.Errorf("recreate collection %q: %w", s.collection, err)
	}
	return nil
}

// Build embeds every chunk and upserts (text, source, vector) records into
// the index. Records keep the chunk's ID, so re-adding identical input is
// idempotent.
func (s *VectorStore) Build(ctx context.Context, chunks []chunker.Chunk) error {
	if len(chunks) == 0 {
		return errors.New("no chunks to index")
	}
	coll := s.coll()
	if coll == nil {
		return fmt.Errorf("collection %q not found", s.collection)
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for _, ch := range chunks {
		docs = append(docs, chromem.Document{
			ID:      ch.ID,
			Content: ch.Text,
			Metadata: map[string]string{
				"source":   ch.Source,
				"chunk_id": strconv.Itoa(ch.Index),
			},
		})
	}

	if err := coll.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Search embeds the query with the store's embedding function and returns the
// n nearest chunks by cosine similarity. When n exceeds the number of stored
// records, all records are returned instead of erroring.
func (s *VectorStore) Search(ctx context.Context, query string, n int) ([]Result, error) {
	if n < 1 {
		return nil, ErrBadTopK
	}
	coll := s.coll()
	if coll == nil {
		return nil, ErrEmptyStore
	}
	count := coll.Count()
	if count == 0 {
		return nil, ErrEmptyStore
	}
	if n > count {
		n = count
	}

	results, err := coll.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, Result{
			Text:       r.Content,
			Source:     r.Metadata["source"],
			Similarity: r.Similarity,
		})
	}
	return out, nil
}
