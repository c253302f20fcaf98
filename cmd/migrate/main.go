package main

import (
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"asset-system/migrations"
	"asset-system/pkg/config"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, version")
	flag.Parse()

	cfg := config.New()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("opening database failed: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("setting dialect failed: %v", err)
	}

	if err := goose.Run(*command, db, "."); err != nil {
		log.Fatalf("goose %s failed: %v", *command, err)
	}
	log.Printf("goose %s done", *command)
}
