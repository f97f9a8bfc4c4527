package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/CokeFamer_Go/internal/bootstrap"
	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// reset erases saved games from the configured storage backend.
func main() {
	slot := flag.Int("slot", 0, "slot to erase (1-3)")
	all := flag.Bool("all", false, "erase every slot")
	flag.Parse()

	if *all == (*slot != 0) {
		log.Fatal("Pass exactly one of -slot N or -all")
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

	slots := []int{*slot}
	if *all {
		slots = slots[:0]
		for s := 1; s <= storage.MaxSlots; s++ {
			slots = append(slots, s)
		}
	}

	for _, s := range slots {
		if err := storage.DeleteSlot(ctx, store, s); err != nil {
			log.Fatalf("Failed to erase slot %d: %v", s, err)
		}
		log.Printf("Slot %d erased.\n", s)
	}

	log.Println("\n✅ Reset complete!")
}
