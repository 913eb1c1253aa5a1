// Command dharmaqa-index prepares the corpus and vector index the
// serving commands load at startup: it can convert structured verse
// files and raw scripture text into metadata records, merge metadata
// files, embed every record and write the flat index file (or push the
// vectors into Qdrant).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"dharmaqa/internal/config"
	"dharmaqa/internal/corpus"
	"dharmaqa/internal/domain"
	"dharmaqa/internal/embedding/openai"
	"dharmaqa/internal/vectorindex/memory"
	"dharmaqa/internal/vectorindex/qdrant"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		out       string
		mergeOut  string
		parseSpec string
		splitSpec string
		workers   int
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file")
	flag.StringVar(&out, "out", "", "Index output path (defaults to the configured index path)")
	flag.StringVar(&mergeOut, "merge", "", "Write the merged corpus metadata to this path")
	flag.StringVar(&parseSpec, "parse", "", "Parse a structured verse file, as Book=path.txt")
	flag.StringVar(&splitSpec, "split", "", "Split a raw scripture text into block records, as Book=path.txt")
	flag.IntVar(&workers, "workers", 4, "Concurrent embedding requests")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	records, err := corpus.LoadAll(cfg.Corpus.Metadata...)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	if parseSpec != "" {
		parsed, err := parseStructuredFile(parseSpec)
		if err != nil {
			log.Fatalf("parse structured file: %v", err)
		}
		log.Printf("parsed %d verses from %s", len(parsed), parseSpec)
		records = append(records, parsed...)
	}
	if splitSpec != "" {
		split, err := splitRawFile(splitSpec)
		if err != nil {
			log.Fatalf("split raw file: %v", err)
		}
		log.Printf("split %d blocks from %s", len(split), splitSpec)
		records = append(records, split...)
	}
	if len(records) == 0 {
		log.Fatal("no records to index")
	}
	log.Printf("records loaded: %d", len(records))

	if mergeOut != "" {
		if err := corpus.Save(mergeOut, records); err != nil {
			log.Fatalf("write merged metadata: %v", err)
		}
		log.Printf("merged metadata written to %s", mergeOut)
	}

	if cfg.Embedder.OpenAI == nil {
		log.Fatal("openai embedder config missing")
	}
	emb, err := openai.NewClient(openai.Config{
		BaseURL:   cfg.Embedder.OpenAI.BaseURL,
		APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
		Model:     cfg.Embedder.OpenAI.Model,
		Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("openai embedder init failed: %v", err)
	}

	vectors, err := embedAll(context.Background(), emb, records, workers)
	if err != nil {
		log.Fatalf("embed corpus: %v", err)
	}

	switch cfg.Index.Type {
	case "memory", "":
		idx, err := memory.New(vectors)
		if err != nil {
			log.Fatalf("build index: %v", err)
		}
		path := out
		if path == "" {
			path = cfg.Index.Path
		}
		if err := idx.Save(path); err != nil {
			log.Fatalf("write index: %v", err)
		}
		log.Printf("index with %d vectors written to %s", idx.Len(), path)
	case "qdrant":
		if cfg.Index.Qdrant == nil {
			log.Fatal("qdrant config missing")
		}
		idx := qdrant.New(qdrant.Config{
			URL:        cfg.Index.Qdrant.URL,
			APIKey:     cfg.Index.Qdrant.APIKey,
			Collection: cfg.Index.Qdrant.Collection,
			Timeout:    time.Duration(cfg.Index.Qdrant.TimeoutSecs) * time.Second,
		})
		ctx := context.Background()
		if err := idx.EnsureCollection(ctx, len(vectors[0])); err != nil {
			log.Fatalf("ensure collection: %v", err)
		}
		if err := idx.Upsert(ctx, vectors); err != nil {
			log.Fatalf("upsert vectors: %v", err)
		}
		log.Printf("%d vectors upserted into qdrant collection %s", len(vectors), cfg.Index.Qdrant.Collection)
	default:
		log.Fatalf("unknown index: %s", cfg.Index.Type)
	}
}

// embedAll embeds every record's display text, preserving record order
// so vector positions line up with corpus positions.
func embedAll(ctx context.Context, emb domain.Embedder, records []domain.Record, workers int) ([][]float64, error) {
	if workers <= 0 {
		workers = 4
	}
	vectors := make([][]float64, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		i := i
		g.Go(func() error {
			v, err := emb.Embed(ctx, records[i].DisplayText())
			if err != nil {
				return fmt.Errorf("embed record %d: %w", i, err)
			}
			vectors[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// parseStructuredFile handles a "Book=path" flag value for structured
// verse files.
func parseStructuredFile(arg string) ([]domain.Record, error) {
	book, path, err := splitBookArg(arg)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return corpus.ParseStructured(f, book)
}

// splitRawFile handles a "Book=path" flag value for raw scripture text.
func splitRawFile(arg string) ([]domain.Record, error) {
	book, path, err := splitBookArg(arg)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return corpus.SplitBlocks(string(data), book), nil
}

func splitBookArg(arg string) (book, path string, err error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected Book=path, got %q", arg)
	}
	return parts[0], parts[1], nil
}
