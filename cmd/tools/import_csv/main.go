package main

import (
	"context"
	"flag"
	"log"
	"os"

	"talent-pipeline/internal/config"
	"talent-pipeline/internal/importer"
	"talent-pipeline/internal/store"
)

// Imports a candidate CSV straight into the configured store, for seeding
// a deployment without going through the HTTP API.
func main() {
	var file string
	var mode string
	var dryRun bool
	flag.StringVar(&file, "file", "", "Path to the CSV file to import")
	flag.StringVar(&mode, "mode", "append", "Import mode: append or replace")
	flag.BoolVar(&dryRun, "dry-run", false, "If true, do not persist; just print what would be imported")
	flag.Parse()

	if file == "" {
		log.Fatal("-file is required")
	}
	if mode != "append" && mode != "replace" {
		log.Fatalf("invalid -mode %q (append|replace)", mode)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", file, err)
	}

	parsed := importer.ParseCSV(string(raw))
	if len(parsed) < 2 {
		log.Fatal("file has no data rows")
	}
	headers := parsed[0]
	rows := parsed[1:]

	mapping := importer.AutoMap(headers)
	log.Printf("Auto-detected mapping: %+v", mapping)

	cfg := config.LoadConfig()
	kv, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	cache := store.NewCacheStore(kv)
	existing := cache.Read(ctx)

	candidates := importer.Project(headers, rows, mapping, existing)
	skipped := len(rows) - len(candidates)
	log.Printf("Parsed %d rows: %d accepted, %d skipped (missing name)", len(rows), len(candidates), skipped)

	if dryRun {
		for _, c := range candidates {
			log.Printf("  would import id=%d name=%q status=%s skills=%v", c.ID, c.Name, c.Status, c.Skills)
		}
		return
	}

	if mode == "replace" {
		if err := cache.Replace(ctx, candidates); err != nil {
			log.Fatalf("replace failed: %v", err)
		}
		log.Printf("Cache replaced with %d candidates", len(candidates))
		return
	}

	total, err := cache.Append(ctx, candidates)
	if err != nil {
		log.Fatalf("append failed: %v", err)
	}
	log.Printf("Appended %d candidates (cache now %d)", len(candidates), total)
}

func openStore(cfg *config.Config) (store.KV, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		log.Println("Warning: memory backend selected, imported data will not persist")
		return store.NewMemory(), func() {}, nil
	case "postgres":
		pg, err := store.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.EnsureSchema(context.Background()); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return pg, func() { pg.Close() }, nil
	default:
		f, err := store.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	}
}
