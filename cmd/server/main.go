package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	emailPkg "lessonhub/internal/adapters/email"
	"lessonhub/internal/adapters/social"
	"lessonhub/internal/adapters/storage"
	attendanceStore "lessonhub/internal/adapters/storage/attendance"
	lessonStore "lessonhub/internal/adapters/storage/lesson"
	schoolStore "lessonhub/internal/adapters/storage/school"
	userStore "lessonhub/internal/adapters/storage/user"
	venueStore "lessonhub/internal/adapters/storage/venue"
	"lessonhub/internal/application/orchestrators"
	"lessonhub/internal/application/projections"
	"lessonhub/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// App bundles the wired dependency sets for every operation the engine
// exposes. Transport layers (web frontend, CLI, jobs) embed this and call
// the orchestrators and projections directly.
type App struct {
	CreateLesson      orchestrators.CreateLessonDeps
	EditLesson        orchestrators.EditLessonDeps
	RSVP              orchestrators.RSVPDeps
	NotifySubscribers orchestrators.NotifySubscribersDeps
	Unsubscribe       orchestrators.UnsubscribeDeps

	LessonPage      projections.GetLessonPageDeps
	UpcomingLessons projections.GetUpcomingLessonsDeps
	PastLessons     projections.GetPastLessonsDeps
	UserBadges      projections.GetUserBadgesDeps

	Mailer *emailPkg.LessonMailer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	lessons := lessonStore.NewSQLiteStore(db)
	attendances := attendanceStore.NewSQLiteStore(db)
	users := userStore.NewSQLiteStore(db)
	schools := schoolStore.NewSQLiteStore(db)
	venues := venueStore.NewSQLiteStore(db)

	// Configure email sender
	var sender emailPkg.Sender
	if cfg.ResendAPIKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.Env == "production" {
			log.Println("WARNING: LESSONHUB_RESEND_API_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set LESSONHUB_RESEND_API_KEY for real delivery)")
		}
	}
	mailer := emailPkg.NewLessonMailer(lessons, users, venues, schools, sender, cfg.BaseURL)

	// Configure social poster
	var poster social.Poster
	if cfg.SocialWebhookURL != "" {
		poster = social.NewWebhookPoster(cfg.SocialWebhookURL)
		log.Println("Social poster configured (webhook)")
	} else {
		poster = social.NewNoopPoster()
		log.Println("Social poster configured (noop — set LESSONHUB_SOCIAL_WEBHOOK_URL for real posts)")
	}

	app := &App{
		CreateLesson: orchestrators.CreateLessonDeps{
			LessonStore: lessons,
			GenerateID:  uuid.NewString,
			Now:         time.Now,
		},
		EditLesson: orchestrators.EditLessonDeps{
			LessonStore: lessons,
		},
		RSVP: orchestrators.RSVPDeps{
			LessonStore:     lessons,
			AttendanceStore: attendances,
			GenerateID:      uuid.NewString,
			Now:             time.Now,
		},
		NotifySubscribers: orchestrators.NotifySubscribersDeps{
			LessonStore: lessons,
			VenueStore:  venues,
			UserStore:   users,
			Mailer:      mailer,
			Poster:      poster,
			Now:         time.Now,
		},
		LessonPage: projections.GetLessonPageDeps{
			LessonStore:     lessons,
			AttendanceStore: attendances,
			VenueStore:      venues,
			SchoolStore:     schools,
			Now:             time.Now,
		},
		UpcomingLessons: projections.GetUpcomingLessonsDeps{
			LessonStore: lessons,
			Now:         time.Now,
		},
		PastLessons: projections.GetPastLessonsDeps{
			LessonStore: lessons,
			Now:         time.Now,
		},
		Unsubscribe: orchestrators.UnsubscribeDeps{
			UserStore:  users,
			GenerateID: uuid.NewString,
		},
		UserBadges: projections.GetUserBadgesDeps{
			AttendanceStore: attendances,
		},
		Mailer: mailer,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/lessons/upcoming", func(w http.ResponseWriter, r *http.Request) {
		result, err := projections.GetUpcomingLessons(r.Context(), app.UpcomingLessons)
		writeJSON(w, result, err)
	})
	mux.HandleFunc("GET /api/lessons/past", func(w http.ResponseWriter, r *http.Request) {
		result, err := projections.GetPastLessons(r.Context(), app.PastLessons, 0)
		writeJSON(w, result, err)
	})
	mux.HandleFunc("GET /unsubscribe/{token}", func(w http.ResponseWriter, r *http.Request) {
		if err := orchestrators.ExecuteUnsubscribe(r.Context(), r.PathValue("token"), app.Unsubscribe); err != nil {
			http.Error(w, "unknown unsubscribe link", http.StatusNotFound)
			return
		}
		w.Write([]byte("You have been unsubscribed from lesson notifications.\n"))
	})

	log.Printf("LessonHub %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, value any, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
