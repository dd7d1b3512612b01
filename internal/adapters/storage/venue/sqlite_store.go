package venue

import (
	"context"
	"database/sql"
	"fmt"

	"lessonhub/internal/adapters/storage"
	domain "lessonhub/internal/domain/venue"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new venue store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Venue by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Venue, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, address, city, school_id FROM venue WHERE id = ?", id)
	return scanVenue(row)
}

// Save persists a Venue to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Venue) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO venue (id, name, address, city, school_id) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			address=excluded.address,
			city=excluded.city,
			school_id=excluded.school_id`,
		entity.ID,
		entity.Name,
		entity.Address,
		entity.City,
		entity.SchoolID,
	)
	return err
}

// ListBySchoolID retrieves every venue belonging to a school.
// PRE: schoolID is non-empty
// POST: Returns matching venues ordered by name
func (s *SQLiteStore) ListBySchoolID(ctx context.Context, schoolID string) ([]domain.Venue, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, address, city, school_id FROM venue WHERE school_id = ? ORDER BY name ASC",
		schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Venue
	for rows.Next() {
		entity, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (domain.Venue, error) {
	var entity domain.Venue
	err := row.Scan(&entity.ID, &entity.Name, &entity.Address, &entity.City, &entity.SchoolID)
	if err == sql.ErrNoRows {
		return domain.Venue{}, fmt.Errorf("venue not found: %w", err)
	}
	if err != nil {
		return domain.Venue{}, err
	}
	return entity, nil
}
