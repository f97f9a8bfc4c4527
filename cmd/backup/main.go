package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/CokeFamer_Go/internal/backup"
	"github.com/osse101/CokeFamer_Go/internal/bootstrap"
	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// backup copies all save slots to or from a zstd archive.
//
//	backup -out saves.json.zst
//	backup -in saves.json.zst
func main() {
	out := flag.String("out", "", "write an archive of every slot to this file")
	in := flag.String("in", "", "restore every slot from this archive")
	flag.Parse()

	if (*out == "") == (*in == "") {
		log.Fatal("Pass exactly one of -out or -in")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save storage: %v", err)
	}
	defer store.Close()

	if *out != "" {
		err = exportTo(ctx, *out, store)
	} else {
		err = restoreFrom(ctx, *in, store)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func exportTo(ctx context.Context, path string, store storage.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	slots, err := backup.Export(ctx, store, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Printf("Wrote slots %v to %s\n", slots, path)
	return nil
}

func restoreFrom(ctx context.Context, path string, store storage.Store) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	slots, err := backup.Restore(ctx, store, f)
	if err != nil {
		return err
	}
	fmt.Printf("Restored slots %v from %s\n", slots, path)
	return nil
}
