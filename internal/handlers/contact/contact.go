// Package contact accepts the assessment form. Submissions are not forwarded
// anywhere: NopSubmitter is the only Submitter, and a CRM or form-processing
// endpoint would plug in behind the same interface.
package contact

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lbe/internal/content"
	"lbe/internal/ui"
	"lbe/web/templates/pages/landing"
)

// Submission is one posted form. Fields are taken as typed; nothing is validated.
type Submission struct {
	ID         string
	Variant    string
	Name       string
	Business   string
	Contact    string
	Message    string
	ReceivedAt time.Time
}

type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// NopSubmitter discards submissions.
type NopSubmitter struct{}

func (NopSubmitter) Submit(context.Context, Submission) error { return nil }

// Pages yields the variant currently being served.
type Pages interface {
	Page() (*content.Page, error)
}

type Handler struct {
	pages     Pages
	submitter Submitter
	log       *zap.Logger
}

func NewHandler(pages Pages, submitter Submitter, log *zap.Logger) *Handler {
	return &Handler{pages: pages, submitter: submitter, log: log}
}

// Submit hands the form to the submitter and sends the visitor back to the
// contact section. Failures are logged, never shown.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.Page()
	if err != nil {
		h.log.Error("loading page content", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.log.Debug("unreadable contact form", zap.Error(err))
	}

	sub := Submission{
		ID:         uuid.NewString(),
		Variant:    page.Name,
		Name:       r.PostForm.Get("name"),
		Business:   r.PostForm.Get("business"),
		Contact:    r.PostForm.Get("contact"),
		Message:    r.PostForm.Get("message"),
		ReceivedAt: time.Now().UTC(),
	}
	if err := h.submitter.Submit(r.Context(), sub); err != nil {
		h.log.Warn("contact submission failed", zap.String("submission_id", sub.ID), zap.Error(err))
	} else {
		h.log.Info("contact submission received",
			zap.String("submission_id", sub.ID),
			zap.String("variant", sub.Variant),
			zap.Bool("form_enabled", page.Contact.Form),
		)
	}

	state := ui.ParseState(r.URL.Query(), len(page.FAQ.Entries))
	http.Redirect(w, r, ui.Href(landing.PathHome, state, content.SectionContact), http.StatusSeeOther)
}
