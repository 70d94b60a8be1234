package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/codelog/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, slot Slot) (string, error) {
	if err := slot.validate(); err != nil {
		return "", err
	}

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE slot = ?`, string(slot)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token[%s]: %w", slot, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, slot Slot, value string) error {
	if err := slot.validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (slot, value) VALUES (?, ?)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, string(slot), value)
	if err != nil {
		return fmt.Errorf("failed to set token[%s]: %w", slot, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, slot Slot) error {
	if err := slot.validate(); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE slot = ?`, string(slot)); err != nil {
		return fmt.Errorf("failed to clear token[%s]: %w", slot, err)
	}
	return nil
}
