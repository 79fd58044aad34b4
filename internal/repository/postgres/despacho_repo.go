package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
)

type despachoRepo struct {
	db *sqlx.DB
}

// NewDespachoRepo creates a new PostgreSQL-backed DespachoRepository.
func NewDespachoRepo(db *sqlx.DB) port.DespachoRepository {
	return &despachoRepo{db: db}
}

func (r *despachoRepo) Create(ctx context.Context, despacho *domain.Despacho) error {
	despacho.ID = uuid.New()
	now := time.Now().UTC()
	despacho.CreatedAt = now
	despacho.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("despachoRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO despachos (id, reference, despacho_number, currency, global_fob,
			sale_condition, raw_text, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		despacho.ID, despacho.Reference, despacho.DespachoNumber, despacho.Currency,
		despacho.GlobalFob, despacho.SaleCondition, despacho.RawText,
		despacho.CreatedBy, despacho.CreatedAt, despacho.UpdatedAt)
	if err != nil {
		return fmt.Errorf("despachoRepo.Create: despacho: %w", err)
	}

	for i := range despacho.Items {
		item := &despacho.Items[i]
		item.ID = uuid.New()
		item.DespachoID = despacho.ID
		item.CreatedAt = now
		item.UpdatedAt = now

		_, err = tx.ExecContext(ctx,
			`INSERT INTO despacho_items (id, despacho_id, despacho_number, posicion,
				currency, fob_amount, provider, is_sub_item, has_sub_items,
				item_number, parent_item, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			item.ID, item.DespachoID, item.DespachoNumber, item.Posicion,
			item.Currency, item.FobAmount, item.Provider, item.IsSubItem,
			item.HasSubItems, item.ItemNumber, item.ParentItem,
			item.CreatedAt, item.UpdatedAt)
		if err != nil {
			return fmt.Errorf("despachoRepo.Create: item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("despachoRepo.Create: commit: %w", err)
	}
	return nil
}

func (r *despachoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error) {
	var despacho domain.Despacho
	err := r.db.GetContext(ctx, &despacho, "SELECT * FROM despachos WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDespachoNotFound
		}
		return nil, fmt.Errorf("despachoRepo.GetByID: %w", err)
	}
	return &despacho, nil
}

func (r *despachoRepo) List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM despachos"); err != nil {
		return nil, 0, fmt.Errorf("despachoRepo.List: count: %w", err)
	}

	var despachos []domain.Despacho
	err := r.db.SelectContext(ctx, &despachos,
		"SELECT * FROM despachos ORDER BY created_at DESC OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("despachoRepo.List: %w", err)
	}
	return despachos, total, nil
}

func (r *despachoRepo) ListItems(ctx context.Context, despachoID uuid.UUID) ([]domain.DespachoItem, error) {
	var items []domain.DespachoItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM despacho_items
		 WHERE despacho_id = $1
		 ORDER BY is_sub_item, item_number`,
		despachoID)
	if err != nil {
		return nil, fmt.Errorf("despachoRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *despachoRepo) GetItem(ctx context.Context, despachoID, itemID uuid.UUID) (*domain.DespachoItem, error) {
	var item domain.DespachoItem
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM despacho_items WHERE despacho_id = $1 AND id = $2",
		despachoID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("despachoRepo.GetItem: %w", err)
	}
	return &item, nil
}

func (r *despachoRepo) UpdateItem(ctx context.Context, item *domain.DespachoItem) error {
	item.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE despacho_items
		 SET fob_amount = $1, provider = $2, corrected_by = $3, updated_at = $4
		 WHERE id = $5 AND despacho_id = $6`,
		item.FobAmount, item.Provider, item.CorrectedBy, item.UpdatedAt,
		item.ID, item.DespachoID)
	if err != nil {
		return fmt.Errorf("despachoRepo.UpdateItem: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("despachoRepo.UpdateItem: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
