// Command reset forces the daily reset against the local database. Useful
// when the service is stopped and the stored date must roll forward anyway.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/edupet/engine/internal/database/sqlite"
	"github.com/edupet/engine/internal/event"
	"github.com/edupet/engine/internal/plant"
	"github.com/edupet/engine/internal/reset"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbPath := flag.String("db", defaultDBPath(), "path to the engine database")
	force := flag.Bool("force", false, "reset even if today's reset already ran")
	flag.Parse()

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", *dbPath, err)
	}
	defer store.Close()

	svc := reset.NewService(store.UserStates(), store.Plants(), event.NewMemoryBus(),
		reset.Config{PlantConfig: plant.DefaultConfig()})

	ctx := context.Background()
	var performed bool
	var date string

	if *force {
		result, err := svc.ForceReset(ctx)
		if err != nil {
			log.Fatalf("Force reset failed: %v", err)
		}
		performed, date = result.Performed, result.Date
	} else {
		result, err := svc.CheckAndReset(ctx)
		if err != nil {
			log.Fatalf("Reset check failed: %v", err)
		}
		performed, date = result.Performed, result.Date
	}

	if performed {
		log.Printf("Daily reset performed for %s", date)
	} else {
		log.Printf("Reset already done for %s, nothing to do (use -force to override)", date)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return "edupet.db"
}
