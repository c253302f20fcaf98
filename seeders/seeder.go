package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/pkg/config"
)

// SeedAdmin creates the initial administrator account.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("seeding admin user...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seeding admin user failed: %v", err)
	}
	log.Println("admin user seeded")
}

// SeedDemo populates departments, equipment, components and a few
// alerts for local development.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("seeding departments failed: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("seeding equipment failed: %v", err)
	}
	if err := seedAlerts(ctx, db); err != nil {
		log.Fatalf("seeding alerts failed: %v", err)
	}
	log.Println("demo data seeded")
}
