// Command outliner batch-processes a directory of documents, writing one
// JSON outline per input file. Documents are independent, so they run
// across a small worker pool; a document that fails to parse is logged
// and skipped without stopping the rest of the batch.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/jsonio"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

func main() {
	inDir := flag.String("in", "input", "directory of documents to process")
	outDir := flag.String("out", "output", "directory to write outline JSON files")
	workers := flag.Int("workers", 4, "number of documents processed in parallel")
	tuning := flag.String("tuning", os.Getenv("OUTLINER_TUNING"), "optional YAML tuning file")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	engineCfg, err := config.LoadTuning(*tuning)
	if err != nil {
		log.Error("invalid tuning", "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		log.Error("read input directory", "dir", *inDir, "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	if *workers < 1 {
		*workers = 1
	}
	sem := make(chan struct{}, *workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	processed, failed := 0, 0

	for _, entry := range entries {
		if entry.IsDir() || !parser.IsSupportedExtension(entry.Name()) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := processFile(filepath.Join(*inDir, name), *outDir, engineCfg)
			mu.Lock()
			if err != nil {
				failed++
				log.Error("document failed", "file", name, "error", err)
			} else {
				processed++
				log.Info("document processed", "file", name)
			}
			mu.Unlock()
		}(entry.Name())
	}
	wg.Wait()

	log.Info("batch complete", "processed", processed, "failed", failed)
	if processed == 0 && failed > 0 {
		os.Exit(1)
	}
}

func processFile(path, outDir string, cfg outline.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	p, err := parser.ForFile(name, cfg)
	if err != nil {
		return err
	}
	res, err := p.Parse(f, name)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	data, err := jsonio.MarshalIndent(res, "", "    ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outDir, stem+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
