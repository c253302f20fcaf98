package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/pkg/utils"
)

var equipmentData = []struct {
	Name       string
	EAN        string
	Department string
	Components []string
}{
	{"MRI Scanner", "7891000100103", "radiology", []string{"gradient coil", "rf amplifier"}},
	{"X-Ray Machine", "7891000100110", "radiology", []string{"x-ray tube"}},
	{"ECG Monitor", "7891000100127", "cardiology", []string{"lead cable set", "display panel"}},
	{"Ventilator", "7891000100134", "intensive care", []string{"oxygen sensor", "flow valve"}},
	{"Centrifuge", "7891000100141", "laboratory", nil},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, e := range equipmentData {
		ean := utils.NormalizeEAN(e.EAN)

		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(1) FROM equipment WHERE ean = $1", ean).Scan(&count); err != nil {
			return fmt.Errorf("checking equipment %q: %w", e.Name, err)
		}
		if count > 0 {
			continue
		}

		var departmentID uuid.UUID
		err := db.QueryRow(ctx, "SELECT id FROM departments WHERE name = $1", e.Department).Scan(&departmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("department %q not found, seed departments first", e.Department)
			}
			return fmt.Errorf("looking up department %q: %w", e.Department, err)
		}

		equipmentID := uuid.New()
		_, err = db.Exec(ctx,
			"INSERT INTO equipment (id, name, ean, status, department_id) VALUES ($1, $2, $3, 'ACTIVE', $4)",
			equipmentID, utils.NormalizeText(e.Name), ean, departmentID)
		if err != nil {
			return fmt.Errorf("inserting equipment %q: %w", e.Name, err)
		}

		for _, c := range e.Components {
			_, err = db.Exec(ctx,
				"INSERT INTO components (id, name, status, equipment_id) VALUES ($1, $2, 'OK', $3)",
				uuid.New(), utils.NormalizeText(c), equipmentID)
			if err != nil {
				return fmt.Errorf("inserting component %q: %w", c, err)
			}
		}
		log.Printf("  - equipment %q created with %d components", e.Name, len(e.Components))
	}
	return nil
}
