// Seeds the attribute lookup table from the fixed reference list.
// Idempotent; safe to run against a live database. Exits 1 on the first
// failed upsert; rows applied before the failure stay applied, re-run to
// recover.
package main

import (
	"log"
	"os"

	"opticaluna/internal/config"
	"opticaluna/internal/repos"
	"opticaluna/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Println("[seed] config:", err)
		os.Exit(1)
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Println("[seed] open db:", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := seed.Run(repos.NewAttributeRepo(db), seed.Attributes)
	if err != nil {
		log.Printf("[seed] aborted after %d records: %v", n, err)
		os.Exit(1)
	}
}
