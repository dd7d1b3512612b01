package lesson

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"lessonhub/internal/adapters/storage"
	domain "lessonhub/internal/domain/lesson"
)

const lessonColumns = "id, title, slug, description, summary, start_time, end_time, venue_id, teacher_id, tweet_message, notification_sent_at, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new lesson store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Lesson by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Lesson, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+lessonColumns+" FROM lesson WHERE id = ?", id)
	return scanLesson(row)
}

// GetBySlug retrieves a Lesson by its slug.
// PRE: slug is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetBySlug(ctx context.Context, slug string) (domain.Lesson, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+lessonColumns+" FROM lesson WHERE slug = ?", slug)
	return scanLesson(row)
}

// Save persists a Lesson to the database. The upsert keeps two
// invariants on existing rows: a stored slug is never overwritten, and a
// stored notification_sent_at is never cleared.
// PRE: entity has been validated; entity is not a placeholder
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Lesson) error {
	if entity.IsPlaceholder {
		return fmt.Errorf("placeholder lessons cannot be persisted")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO lesson (` + lessonColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			slug=CASE WHEN lesson.slug = '' THEN excluded.slug ELSE lesson.slug END,
			description=excluded.description,
			summary=excluded.summary,
			start_time=excluded.start_time,
			end_time=excluded.end_time,
			venue_id=excluded.venue_id,
			teacher_id=excluded.teacher_id,
			tweet_message=excluded.tweet_message,
			notification_sent_at=COALESCE(lesson.notification_sent_at, excluded.notification_sent_at)`

	var endValue, sentValue, teacherValue any
	if !entity.EndTime.IsZero() {
		endValue = storage.FormatTime(entity.EndTime)
	}
	if !entity.NotificationSentAt.IsZero() {
		sentValue = storage.FormatTime(entity.NotificationSentAt)
	}
	if entity.TeacherID != "" {
		teacherValue = entity.TeacherID
	}

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Title,
		entity.Slug,
		entity.Description,
		entity.Summary,
		storage.FormatTime(entity.StartTime),
		endValue,
		entity.VenueID,
		teacherValue,
		entity.TweetMessage,
		sentValue,
		storage.FormatTime(entity.CreatedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Lesson from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM lesson WHERE id = ?", id)
	return err
}

// ListFuture retrieves lessons starting strictly after now, soonest first.
// PRE: none
// POST: Returns matching entities ordered ascending by start time
func (s *SQLiteStore) ListFuture(ctx context.Context, now time.Time) ([]domain.Lesson, error) {
	query := "SELECT " + lessonColumns + " FROM lesson WHERE start_time > ? ORDER BY start_time ASC"
	return s.list(ctx, query, storage.FormatTime(now))
}

// ListPast retrieves lessons whose window has fully elapsed, most recent
// first. Lessons without an end time count as elapsed once started.
// PRE: none
// POST: Returns matching entities ordered descending by start time
func (s *SQLiteStore) ListPast(ctx context.Context, now time.Time) ([]domain.Lesson, error) {
	query := "SELECT " + lessonColumns + ` FROM lesson
		WHERE COALESCE(NULLIF(end_time, ''), start_time) < ?
		ORDER BY start_time DESC`
	return s.list(ctx, query, storage.FormatTime(now))
}

// MarkNotified performs the one-shot conditional update guarding the
// notification broadcast: the timestamp is set only if no value exists
// yet, in a single UPDATE, so concurrent dispatch attempts cannot both
// win.
// PRE: the lesson exists (callers load it first)
// POST: notification_sent_at set to at, or ErrAlreadyDispatched
func (s *SQLiteStore) MarkNotified(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE lesson SET notification_sent_at = ?
		 WHERE id = ? AND (notification_sent_at IS NULL OR notification_sent_at = '')`,
		storage.FormatTime(at), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAlreadyDispatched
	}
	return nil
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Lesson
	for rows.Next() {
		entity, err := scanLesson(rows)
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

func scanLesson(row rowScanner) (domain.Lesson, error) {
	var entity domain.Lesson
	var startStr, createdStr string
	var endStr, teacherID, sentStr sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Slug,
		&entity.Description,
		&entity.Summary,
		&startStr,
		&endStr,
		&entity.VenueID,
		&teacherID,
		&entity.TweetMessage,
		&sentStr,
		&createdStr,
	)
	if err == sql.ErrNoRows {
		return domain.Lesson{}, fmt.Errorf("lesson not found: %w", err)
	}
	if err != nil {
		return domain.Lesson{}, err
	}

	if teacherID.Valid {
		entity.TeacherID = teacherID.String
	}
	entity.StartTime, err = storage.ParseStoredTime(startStr)
	if err != nil {
		return domain.Lesson{}, fmt.Errorf("failed to parse start_time: %w", err)
	}
	if endStr.Valid && strings.TrimSpace(endStr.String) != "" {
		entity.EndTime, err = storage.ParseStoredTime(endStr.String)
		if err != nil {
			return domain.Lesson{}, fmt.Errorf("failed to parse end_time: %w", err)
		}
	}
	if sentStr.Valid && strings.TrimSpace(sentStr.String) != "" {
		entity.NotificationSentAt, err = storage.ParseStoredTime(sentStr.String)
		if err != nil {
			return domain.Lesson{}, fmt.Errorf("failed to parse notification_sent_at: %w", err)
		}
	}
	entity.CreatedAt, err = storage.ParseStoredTime(createdStr)
	if err != nil {
		return domain.Lesson{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return entity, nil
}
