package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tourguide/internal/bot"
	"tourguide/internal/chunker"
	"tourguide/internal/config"
	"tourguide/internal/llm"
	"tourguide/internal/loader"
	"tourguide/internal/store"

	"github.com/joho/godotenv"
	"github.com/philippgille/chromem-go"
)

func main() {
	docsDir := flag.String("docs", "", "Directory with input documents (default ./data)")
	dataDir := flag.String("data", "", "Directory for the vector index (default ./chroma_db)")
	rebuild := flag.Bool("rebuild", false, "Rebuild the vector index from the input documents")
	flag.Parse()

	// Flags win over the environment; export them before parsing the config.
	if *docsDir != "" {
		os.Setenv("DOCS_DIR", *docsDir)
	}
	if *dataDir != "" {
		os.Setenv("DATA_DIR", *dataDir)
	}

	// .env is optional
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	log.Printf("Documents directory: %s", cfg.DocsDir)
	log.Printf("Index directory: %s", cfg.DataDir)

	embeddingFunc := chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, cfg.OllamaURL+"/api")

	st, err := store.Open(store.Options{
		Dir:        cfg.DataDir,
		Collection: cfg.Collection,
		Embedding:  embeddingFunc,
	})
	if err != nil {
		log.Fatalf("failed to open vector store: %v", err)
	}

	if err := setupIndex(&cfg, st, *rebuild); err != nil {
		log.Fatalf("failed to build vector index: %v", err)
	}

	client := llm.NewClient(llm.Config{
		BaseURL:     cfg.GroqURL,
		APIKey:      cfg.GroqAPIKey,
		Model:       cfg.GroqModel,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})

	b := bot.New(st, client, cfg.TopK, cfg.HistoryTurns)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if err := b.Chat(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("chat stopped with error: %v", err)
	}
}

// setupIndex loads and chunks the documents, then populates the vector store.
// An already-populated store is reused unless rebuild is requested.
func setupIndex(cfg *config.Config, st *store.VectorStore, rebuild bool) error {
	docs, err := loader.Load(cfg.DocsDir)
	if err != nil {
		return err
	}

	factory, err := chunker.NewFactory(chunker.Config{
		ChunkSize: cfg.ChunkSize,
		Overlap:   cfg.ChunkOverlap,
	})
	if err != nil {
		return err
	}

	var chunks []chunker.Chunk
	for _, doc := range docs {
		ch, err := factory.ForFile(doc.Source)
		if err != nil {
			return err
		}
		parts, err := ch.Chunk(doc.Content, doc.Source)
		if err != nil {
			return err
		}
		log.Printf("%s: %d chunks (%s)", doc.Source, len(parts), ch.Name())
		chunks = append(chunks, parts...)
	}

	if rebuild {
		log.Printf("Rebuild requested, clearing existing index...")
		if err := st.Reset(); err != nil {
			return err
		}
	} else if st.Count() > 0 {
		log.Printf("Using existing index (%d chunks)", st.Count())
		return nil
	}

	log.Printf("Embedding %d chunks, this may take a while...", len(chunks))
	if err := st.Build(context.Background(), chunks); err != nil {
		return err
	}
	log.Printf("Index ready (%d chunks)", st.Count())
	return nil
}
