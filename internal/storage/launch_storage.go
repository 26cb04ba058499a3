package storage

import (
	"context"
	"fmt"

	"SpaceXLaunchDashboard/internal/models"
)

// ReplaceLaunches swaps the stored dataset for records in a single transaction.
// Row ids follow slice order, which ListLaunches preserves.
func (s *Store) ReplaceLaunches(ctx context.Context, records []models.LaunchRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx : %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM launches"); err != nil {
		return fmt.Errorf("clearing launches : %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO launches (launch_site, payload_mass_kg, booster_version_category, class)
		VALUES (:launch_site, :payload_mass_kg, :booster_version_category, :class)`)
	if err != nil {
		return fmt.Errorf("preparing insert : %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, r); err != nil {
			return fmt.Errorf("inserting launch %d : %w", i, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ListLaunches(ctx context.Context) ([]models.LaunchRecord, error) {
	var records []models.LaunchRecord
	err := s.db.SelectContext(ctx, &records, `
		SELECT launch_site, payload_mass_kg, booster_version_category, class
		FROM launches
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing launches : %w", err)
	}
	return records, nil
}

func (s *Store) CountLaunches(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM launches"); err != nil {
		return 0, fmt.Errorf("counting launches : %w", err)
	}
	return n, nil
}
