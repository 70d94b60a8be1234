package tokens

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/dbx"
)

// Store is the Token Store handed to the HTTP client and the session
// manager. Single-slot calls go straight to the repository; whole-session
// writes run in one transaction so a crash never leaves a half-written pair.
type Store struct {
	db *sql.DB
	*SQLiteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, SQLiteRepository: NewSQLiteRepository(db)}
}

// Load reads both slots.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	access, err := s.Get(ctx, SlotAccess)
	if err != nil {
		return models.Session{}, err
	}
	refresh, err := s.Get(ctx, SlotRefresh)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{AccessToken: access, RefreshToken: refresh}, nil
}

// Save replaces both slots with the tokens of sess.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, SlotAccess, sess.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, SlotRefresh, sess.RefreshToken)
	})
}

// ClearAll removes both slots.
func (s *Store) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for _, slot := range Slots {
			if err := repo.Clear(ctx, slot); err != nil {
				return err
			}
		}
		return nil
	})
}
