package user

import (
	"context"
	"database/sql"
	"fmt"

	"lessonhub/internal/adapters/storage"
	domain "lessonhub/internal/domain/user"
)

const userColumns = "id, email, name, school_id, admin, subscribe_lesson_notifications, unsubscribe_token, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new user store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a User by their ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM user WHERE id = ?", id)
	return scanUser(row)
}

// GetByEmail retrieves a User by their email address.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM user WHERE email = ?", email)
	return scanUser(row)
}

// GetByUnsubscribeToken retrieves the User holding the given token.
// PRE: token is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUnsubscribeToken(ctx context.Context, token string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM user WHERE unsubscribe_token = ?", token)
	return scanUser(row)
}

// Save persists a User to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) error {
	var schoolValue any
	if entity.SchoolID != "" {
		schoolValue = entity.SchoolID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			email=excluded.email,
			name=excluded.name,
			school_id=excluded.school_id,
			admin=excluded.admin,
			subscribe_lesson_notifications=excluded.subscribe_lesson_notifications,
			unsubscribe_token=CASE WHEN user.unsubscribe_token = '' THEN excluded.unsubscribe_token ELSE user.unsubscribe_token END`,
		entity.ID,
		entity.Email,
		entity.Name,
		schoolValue,
		entity.Admin,
		entity.SubscribeLessonNotifications,
		entity.UnsubscribeToken,
		storage.FormatTime(entity.CreatedAt),
	)
	return err
}

// ListBySchoolID retrieves every member of a school. This is the
// broadcast recipient set: no subscription filter is applied here.
// PRE: schoolID is non-empty
// POST: Returns all users belonging to the school
func (s *SQLiteStore) ListBySchoolID(ctx context.Context, schoolID string) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM user WHERE school_id = ? ORDER BY created_at ASC", schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.User
	for rows.Next() {
		entity, err := scanUser(rows)
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

func scanUser(row rowScanner) (domain.User, error) {
	var entity domain.User
	var schoolID sql.NullString
	var createdStr string
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.Name,
		&schoolID,
		&entity.Admin,
		&entity.SubscribeLessonNotifications,
		&entity.UnsubscribeToken,
		&createdStr,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	if err != nil {
		return domain.User{}, err
	}

	if schoolID.Valid {
		entity.SchoolID = schoolID.String
	}
	entity.CreatedAt, err = storage.ParseStoredTime(createdStr)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return entity, nil
}
