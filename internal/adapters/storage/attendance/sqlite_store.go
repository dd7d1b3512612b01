package attendance

import (
	"context"
	"fmt"

	"lessonhub/internal/adapters/storage"
	domain "lessonhub/internal/domain/attendance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new attendance store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an Attendance row. The UNIQUE(user_id, lesson_id) index
// makes a duplicate RSVP a silent no-op: at most one row per pair ever
// exists, regardless of racing clicks.
// PRE: entity has been validated
// POST: Exactly one row exists for (user, lesson)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Attendance) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attendance (id, user_id, lesson_id, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, lesson_id) DO NOTHING`,
		entity.ID,
		entity.UserID,
		entity.LessonID,
		storage.FormatTime(entity.CreatedAt),
	)
	return err
}

// DeleteByUserAndLesson removes a user's RSVP for a lesson. Deleting a
// missing row is a no-op.
// PRE: userID and lessonID are non-empty
// POST: No row exists for (user, lesson)
func (s *SQLiteStore) DeleteByUserAndLesson(ctx context.Context, userID, lessonID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM attendance WHERE user_id = ? AND lesson_id = ?", userID, lessonID)
	return err
}

// CountByUserID returns the user's total attendance count, the single
// integer badge predicates evaluate against.
// PRE: userID is non-empty
// POST: Returns the number of rows for the user (>= 0)
func (s *SQLiteStore) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE user_id = ?", userID).Scan(&count)
	return count, err
}

// CountByLessonID returns how many users RSVP'd to a lesson.
// PRE: lessonID is non-empty
// POST: Returns the number of rows for the lesson (>= 0)
func (s *SQLiteStore) CountByLessonID(ctx context.Context, lessonID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE lesson_id = ?", lessonID).Scan(&count)
	return count, err
}

// ExistsByUserAndLesson reports whether the user has RSVP'd to the lesson.
// PRE: userID and lessonID are non-empty
// POST: Returns true iff a row exists
func (s *SQLiteStore) ExistsByUserAndLesson(ctx context.Context, userID, lessonID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE user_id = ? AND lesson_id = ?",
		userID, lessonID).Scan(&count)
	return count > 0, err
}

// ListByLessonID retrieves all RSVPs for a lesson, oldest first.
// PRE: lessonID is non-empty
// POST: Returns rows for the given lesson
func (s *SQLiteStore) ListByLessonID(ctx context.Context, lessonID string) ([]domain.Attendance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, lesson_id, created_at FROM attendance WHERE lesson_id = ? ORDER BY created_at ASC",
		lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Attendance
	for rows.Next() {
		var entity domain.Attendance
		var createdStr string
		if err := rows.Scan(&entity.ID, &entity.UserID, &entity.LessonID, &createdStr); err != nil {
			return nil, err
		}
		entity.CreatedAt, err = storage.ParseStoredTime(createdStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
