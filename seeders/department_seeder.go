package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/pkg/utils"
)

var departmentsData = []struct {
	Name             string
	Location         string
	ResponsibleName  string
	ResponsibleEmail string
}{
	{"Radiology", "Building A, floor 2", "Ana Costa", "ana.costa@asset-system.local"},
	{"Cardiology", "Building A, floor 3", "Bruno Alves", "bruno.alves@asset-system.local"},
	{"Intensive Care", "Building B, floor 1", "Carla Mendes", "carla.mendes@asset-system.local"},
	{"Laboratory", "Building C, floor 1", "Diego Ramos", "diego.ramos@asset-system.local"},
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	for _, d := range departmentsData {
		name := utils.NormalizeText(d.Name)

		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(1) FROM departments WHERE name = $1", name).Scan(&count); err != nil {
			return fmt.Errorf("checking department %q: %w", d.Name, err)
		}
		if count > 0 {
			continue
		}

		_, err := db.Exec(ctx,
			"INSERT INTO departments (id, name, location, responsible_name, responsible_email) VALUES ($1, $2, $3, $4, $5)",
			uuid.New(), name, utils.NormalizeText(d.Location), utils.NormalizeText(d.ResponsibleName), d.ResponsibleEmail)
		if err != nil {
			return fmt.Errorf("inserting department %q: %w", d.Name, err)
		}
		log.Printf("  - department %q created", d.Name)
	}
	return nil
}
