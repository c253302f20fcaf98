package main

import (
	"context"
	"flag"
	"log"
	"time"

	"asset-system/pkg/config"
	"asset-system/pkg/database/postgresql"
	"asset-system/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the initial administrator account")
	runDemo := flag.Bool("demo", false, "populate demo departments, equipment and alerts")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runAdmin && !*runDemo && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("connecting to postgres failed: %v", err)
	}
	defer db.Close()

	if *runAdmin || *runAll {
		seeders.SeedAdmin(db, cfg)
	}
	if *runDemo || *runAll {
		seeders.SeedDemo(db)
	}
}
