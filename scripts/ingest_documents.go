package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sachinggsingh/resume-ai/internal/config"
	"sachinggsingh/resume-ai/internal/services"
)

func main() {
	dir := flag.String("dir", "./reference_docs", "directory of career-guide PDFs")
	flag.Parse()

	log.Println("🚀 Starting guide ingestion...")

	cfg := config.Load()
	if !cfg.RetrievalEnabled() {
		log.Fatal("❌ QDRANT_URL is not set")
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	ctx := context.Background()
	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	paths, err := filepath.Glob(filepath.Join(*dir, "*.pdf"))
	if err != nil || len(paths) == 0 {
		log.Fatalf("❌ No PDF guides found in %s", *dir)
	}

	pdfParser := services.NewPDFParserService()
	chunker := services.NewTextChunker()

	successCount := 0
	failCount := 0

	for _, path := range paths {
		source := filepath.Base(path)
		log.Printf("\n📄 Processing: %s", source)

		content, err := pdfParser.ExtractGuideText(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Extracted %d pages (%d skipped), %d characters", content.PageCount, content.Skipped, len(content.Text))

		// Re-ingesting a guide replaces its previous chunks
		if err := qdrantService.DeleteSource(ctx, source); err != nil {
			log.Printf("   ⚠️  Could not clear previous chunks: %v", err)
		}

		chunks := chunker.ChunkText(content.Text, 1000, 200)
		log.Printf("   ✂️  Created %d chunks", len(chunks))

		stored := 0
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			if err := qdrantService.UpsertChunk(ctx, source, services.GuideDocType, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}
			stored++
		}

		if stored == 0 {
			failCount++
			continue
		}

		log.Printf("   ✅ Stored %d/%d chunks for %s", stored, len(chunks), source)
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d guides", successCount)
	log.Printf("   ❌ Failed: %d guides", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
