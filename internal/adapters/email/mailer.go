package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/school"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/domain/venue"
)

// MailerLessonStore defines the lesson lookup the mailer needs.
type MailerLessonStore interface {
	GetByID(ctx context.Context, id string) (lesson.Lesson, error)
}

// MailerUserStore defines the user lookup the mailer needs.
type MailerUserStore interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

// MailerVenueStore defines the venue lookup the mailer needs.
type MailerVenueStore interface {
	GetByID(ctx context.Context, id string) (venue.Venue, error)
}

// MailerSchoolStore defines the school lookup the mailer needs.
type MailerSchoolStore interface {
	GetByID(ctx context.Context, id string) (school.School, error)
}

// LessonMailer composes and sends per-recipient lesson notification
// emails. Lesson descriptions are authored in Markdown and rendered to
// HTML for the body; start times are rendered in the school's timezone.
type LessonMailer struct {
	lessons  MailerLessonStore
	users    MailerUserStore
	venues   MailerVenueStore
	schools  MailerSchoolStore
	sender   Sender
	baseURL  string // site root without trailing slash, e.g. "https://lessonhub.example"
	markdown goldmark.Markdown
}

// NewLessonMailer creates a mailer that delivers through the given sender.
func NewLessonMailer(lessons MailerLessonStore, users MailerUserStore, venues MailerVenueStore, schools MailerSchoolStore, sender Sender, baseURL string) *LessonMailer {
	return &LessonMailer{
		lessons:  lessons,
		users:    users,
		venues:   venues,
		schools:  schools,
		sender:   sender,
		baseURL:  baseURL,
		markdown: goldmark.New(),
	}
}

var bodyTemplate = template.Must(template.New("lesson_email").Parse(`<h1>{{.Title}}</h1>
<p><strong>{{.StartDisplay}}</strong> at {{.VenueName}}</p>
{{.DescriptionHTML}}
<p><a href="{{.LessonURL}}">View the lesson and RSVP</a></p>
{{if .UnsubscribeURL}}<p style="font-size:small;color:#666"><a href="{{.UnsubscribeURL}}">Unsubscribe from lesson notifications</a></p>{{end}}`))

type bodyData struct {
	Title           string
	StartDisplay    string
	VenueName       string
	DescriptionHTML template.HTML
	LessonURL       string
	UnsubscribeURL  string
}

// Send composes and delivers a single lesson notification. Replies go to
// the initiating admin so recipients can answer a real person.
// PRE: lessonID, recipientID and adminID identify existing records
// POST: One email has been handed to the provider, or an error is returned
func (m *LessonMailer) Send(ctx context.Context, lessonID, recipientID, adminID string) error {
	l, err := m.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("load lesson: %w", err)
	}
	recipient, err := m.users.GetByID(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("load recipient: %w", err)
	}

	v, err := m.venues.GetByID(ctx, l.VenueID)
	if err != nil {
		return fmt.Errorf("load venue: %w", err)
	}
	s, err := m.schools.GetByID(ctx, v.SchoolID)
	if err != nil {
		return fmt.Errorf("load school: %w", err)
	}

	var replyTo string
	if admin, err := m.users.GetByID(ctx, adminID); err == nil {
		replyTo = admin.Email
	}

	var descBuf bytes.Buffer
	if err := m.markdown.Convert([]byte(l.Description), &descBuf); err != nil {
		return fmt.Errorf("render description: %w", err)
	}

	data := bodyData{
		Title:           l.Title,
		StartDisplay:    l.StartTime.In(s.Location()).Format("Monday, 2 January 2006 at 15:04"),
		VenueName:       v.Name,
		DescriptionHTML: template.HTML(descBuf.String()),
		LessonURL:       m.LessonURL(l),
	}
	if recipient.UnsubscribeToken != "" {
		data.UnsubscribeURL = m.baseURL + "/unsubscribe/" + recipient.UnsubscribeToken
	}

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render email body: %w", err)
	}

	_, err = m.sender.Send(ctx, SendRequest{
		To:      []string{recipient.Email},
		Subject: "New lesson: " + l.Title + " - " + l.StartTime.In(s.Location()).Format("2 Jan"),
		HTML:    body.String(),
		ReplyTo: replyTo,
	})
	return err
}

// LessonURL returns the canonical public URL for a lesson.
func (m *LessonMailer) LessonURL(l lesson.Lesson) string {
	return m.baseURL + "/lessons/" + l.Slug
}
