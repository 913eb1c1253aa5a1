package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"dharmaqa/internal/answer"
	"dharmaqa/internal/config"
	"dharmaqa/internal/corpus"
	"dharmaqa/internal/domain"
	"dharmaqa/internal/embedding/openai"
	"dharmaqa/internal/tui"
	"dharmaqa/internal/vectorindex/memory"
	"dharmaqa/internal/vectorindex/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/dharmaqa/config.yaml if not provided)")
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

	answerer, err := buildAnswerer(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	m := tui.New(answerer)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

// buildAnswerer assembles the pipeline from config: record store,
// embedder and vector index.
func buildAnswerer(cfg *config.AppConfig) (*answer.Answerer, error) {
	if len(cfg.Corpus.Metadata) == 0 {
		return nil, fmt.Errorf("no corpus metadata files configured")
	}
	records, err := corpus.LoadAll(cfg.Corpus.Metadata...)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus is empty; run dharmaqa-index first")
	}

	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "openai", "":
		if cfg.Embedder.OpenAI == nil {
			return nil, fmt.Errorf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embedder init failed: %w", err)
		}
		emb = client
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var idx domain.VectorIndex
	switch cfg.Index.Type {
	case "memory", "":
		loaded, err := memory.Open(cfg.Index.Path)
		if err != nil {
			return nil, fmt.Errorf("open index %s: %w", cfg.Index.Path, err)
		}
		idx = loaded
	case "qdrant":
		if cfg.Index.Qdrant == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		idx = qdrant.New(qdrant.Config{
			URL:        cfg.Index.Qdrant.URL,
			APIKey:     cfg.Index.Qdrant.APIKey,
			Collection: cfg.Index.Qdrant.Collection,
			Timeout:    time.Duration(cfg.Index.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown index: %s", cfg.Index.Type)
	}

	return answer.NewAnswerer(answer.NewRetriever(emb, idx, records, cfg.Answerer.TopK)), nil
}
