package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore manages the database connection and operations for SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLiteStore and initializes the database.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewSQLiteStore(dataSourceName string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	// Manually enable foreign keys and WAL mode
	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err = db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("could not initialize schema: %w", err)
	}
	logger.Info("database connection established and schema initialized",
		zap.String("op", "store.NewSQLiteStore"),
		zap.String("dataSource", dataSourceName),
	)
	return s, nil
}

// initSchema creates the deals table if it doesn't already exist. Params
// and calculations are stored as JSON documents in TEXT columns so the
// stored pair round-trips exactly as computed.
func (s *SQLiteStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS deals (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		params TEXT NOT NULL,
		calculations TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateDeal inserts a new saved deal, assigning an id and timestamps if
// unset.
func (s *SQLiteStore) CreateDeal(deal *SavedDeal) error {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	now := time.Now().UTC()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now

	params, calculations, err := marshalDeal(deal)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO deals (id, name, params, calculations, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		deal.ID.String(), deal.Name, params, calculations, deal.CreatedAt, deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert deal: %w", err)
	}

	s.logger.Debug("deal created",
		zap.String("op", "store.CreateDeal"),
		zap.String("id", deal.ID.String()),
	)
	return nil
}

// GetDeal fetches one saved deal by id.
func (s *SQLiteStore) GetDeal(id uuid.UUID) (*SavedDeal, error) {
	row := s.db.QueryRow(
		`SELECT id, name, params, calculations, created_at, updated_at FROM deals WHERE id = ?`,
		id.String(),
	)
	deal, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch deal: %w", err)
	}
	return deal, nil
}

// UpdateDeal replaces the stored pair for an existing deal.
func (s *SQLiteStore) UpdateDeal(deal *SavedDeal) error {
	deal.UpdatedAt = time.Now().UTC()

	params, calculations, err := marshalDeal(deal)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(
		`UPDATE deals SET name = ?, params = ?, calculations = ?, updated_at = ? WHERE id = ?`,
		deal.Name, params, calculations, deal.UpdatedAt, deal.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("could not update deal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDeal removes a saved deal by id.
func (s *SQLiteStore) DeleteDeal(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM deals WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("could not delete deal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDeals returns every saved deal, newest first.
func (s *SQLiteStore) ListDeals() ([]*SavedDeal, error) {
	rows, err := s.db.Query(
		`SELECT id, name, params, calculations, created_at, updated_at FROM deals ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list deals: %w", err)
	}
	defer rows.Close()

	var deals []*SavedDeal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan deal: %w", err)
		}
		deals = append(deals, deal)
	}
	return deals, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func marshalDeal(deal *SavedDeal) (string, string, error) {
	params, err := json.Marshal(deal.Params)
	if err != nil {
		return "", "", fmt.Errorf("could not marshal params: %w", err)
	}
	calculations, err := json.Marshal(deal.Calculations)
	if err != nil {
		return "", "", fmt.Errorf("could not marshal calculations: %w", err)
	}
	return string(params), string(calculations), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner) (*SavedDeal, error) {
	var (
		idStr        string
		name         string
		params       string
		calculations string
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&idStr, &name, &params, &calculations, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid deal id %q: %w", idStr, err)
	}

	deal := &SavedDeal{ID: id, Name: name, CreatedAt: createdAt, UpdatedAt: updatedAt}
	var parsedParams config.Deal
	if err := json.Unmarshal([]byte(params), &parsedParams); err != nil {
		return nil, fmt.Errorf("could not unmarshal params: %w", err)
	}
	var parsedCalculations engine.Calculations
	if err := json.Unmarshal([]byte(calculations), &parsedCalculations); err != nil {
		return nil, fmt.Errorf("could not unmarshal calculations: %w", err)
	}
	deal.Params = parsedParams
	deal.Calculations = parsedCalculations
	return deal, nil
}
