package postgres

import (
	"context"
	"database/sql"

	"expopass/internal/domain"
)

type scanRepository struct {
	DB *sql.DB
}

func NewScanRepository(db *sql.DB) domain.ScanRepository {
	return &scanRepository{DB: db}
}

func (r *scanRepository) Create(ctx context.Context, rec *domain.ScanRecord) error {
	query := `
		INSERT INTO scan_records (id, registration_id, token, status, scanned_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query, rec.ID, rec.RegistrationID, rec.Token, string(rec.Status), rec.ScannedAt)
	return err
}
