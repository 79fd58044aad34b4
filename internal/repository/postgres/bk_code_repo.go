package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
)

type bkCodeRepo struct {
	db *sqlx.DB
}

// NewBKCodeRepo creates a new PostgreSQL-backed BKCodeRepository.
func NewBKCodeRepo(db *sqlx.DB) port.BKCodeRepository {
	return &bkCodeRepo{db: db}
}

func (r *bkCodeRepo) ReplaceAll(ctx context.Context, codes []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bkCodeRepo.ReplaceAll: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM bk_codes"); err != nil {
		return fmt.Errorf("bkCodeRepo.ReplaceAll: clear: %w", err)
	}

	now := time.Now().UTC()
	for _, code := range codes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bk_codes (code, replaced_at) VALUES ($1, $2)
			 ON CONFLICT (code) DO NOTHING`,
			code, now)
		if err != nil {
			return fmt.Errorf("bkCodeRepo.ReplaceAll: insert %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bkCodeRepo.ReplaceAll: commit: %w", err)
	}
	return nil
}

func (r *bkCodeRepo) LoadAll(ctx context.Context) ([]domain.BKCode, error) {
	var codes []domain.BKCode
	err := r.db.SelectContext(ctx, &codes, "SELECT * FROM bk_codes ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("bkCodeRepo.LoadAll: %w", err)
	}
	return codes, nil
}
