package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/pkg/constants"
)

func seedAlerts(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(1) FROM alerts").Scan(&count); err != nil {
		return fmt.Errorf("checking alerts: %w", err)
	}
	if count > 0 {
		return nil
	}

	var equipmentID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM equipment ORDER BY created_at LIMIT 1").Scan(&equipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Println("  - no equipment yet, skipping alerts")
			return nil
		}
		return fmt.Errorf("looking up equipment for alerts: %w", err)
	}

	alerts := []struct {
		Severity    string
		Description string
		Trimestre   int
	}{
		{constants.AlertSeverityHigh, "maintenance overdue for more than 90 days", 1},
		{constants.AlertSeverityMedium, "recurring failures detected on the same component", 1},
		{constants.AlertSeverityLow, "warranty expires within the next trimester", 2},
	}
	for _, a := range alerts {
		_, err := db.Exec(ctx,
			"INSERT INTO alerts (id, severity, description, equipment_id, trimestre) VALUES ($1, $2, $3, $4, $5)",
			uuid.New(), a.Severity, a.Description, equipmentID, a.Trimestre)
		if err != nil {
			return fmt.Errorf("inserting alert: %w", err)
		}
	}
	log.Printf("  - %d alerts created", len(alerts))
	return nil
}
