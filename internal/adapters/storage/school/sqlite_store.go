package school

import (
	"context"
	"database/sql"
	"fmt"

	"lessonhub/internal/adapters/storage"
	domain "lessonhub/internal/domain/school"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new school store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a School by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.School, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, slug, timezone FROM school WHERE id = ?", id)
	return scanSchool(row)
}

// GetBySlug retrieves a School by its slug.
// PRE: slug is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetBySlug(ctx context.Context, slug string) (domain.School, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, slug, timezone FROM school WHERE slug = ?", slug)
	return scanSchool(row)
}

// Save persists a School to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.School) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO school (id, name, slug, timezone) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			slug=excluded.slug,
			timezone=excluded.timezone`,
		entity.ID,
		entity.Name,
		entity.Slug,
		entity.Timezone,
	)
	return err
}

// List retrieves all schools ordered by name.
// PRE: none
// POST: Returns all schools
func (s *SQLiteStore) List(ctx context.Context) ([]domain.School, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, slug, timezone FROM school ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.School
	for rows.Next() {
		entity, err := scanSchool(rows)
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

func scanSchool(row rowScanner) (domain.School, error) {
	var entity domain.School
	err := row.Scan(&entity.ID, &entity.Name, &entity.Slug, &entity.Timezone)
	if err == sql.ErrNoRows {
		return domain.School{}, fmt.Errorf("school not found: %w", err)
	}
	if err != nil {
		return domain.School{}, err
	}
	return entity, nil
}
