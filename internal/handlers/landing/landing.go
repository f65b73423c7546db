package landing

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"lbe/internal/content"
	"lbe/internal/theme"
	"lbe/internal/ui"
	pages "lbe/web/templates/pages/landing"
)

// Pages yields the variant currently being served.
type Pages interface {
	Page() (*content.Page, error)
}

// Handler serves the page and the controls that change its state.
type Handler struct {
	pages         Pages
	secureCookies bool
	log           *zap.Logger
}

func NewHandler(pages Pages, secureCookies bool, log *zap.Logger) *Handler {
	return &Handler{pages: pages, secureCookies: secureCookies, log: log}
}

// resolver reads the cookie first, then a theme pinned in the view state,
// then the OS hint.
func (h *Handler) resolver(w http.ResponseWriter, r *http.Request, state ui.State) *theme.Resolver {
	var pinned string
	if state.PinnedTheme {
		pinned = state.Theme.String()
	}
	store := theme.Fallback(theme.NewCookieStore(w, r, h.secureCookies), theme.NewMemoryStore(pinned), h.log)
	return theme.NewResolver(store, theme.OSPreference(r), h.log)
}

func (h *Handler) page(w http.ResponseWriter) (*content.Page, bool) {
	page, err := h.pages.Page()
	if err != nil {
		h.log.Error("loading page content", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return page, true
}

// Page renders the landing page for the state in the query string.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w)
	if !ok {
		return
	}
	state := ui.ParseState(r.URL.Query(), len(page.FAQ.Entries))
	state.Theme = h.resolver(w, r, state).Initial()

	p := pages.NewPage(page, state, csrf.Token(r))
	templ.Handler(pages.Component(p), templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			h.log.Error("rendering page", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

// ToggleTheme flips the theme the visitor was looking at, persists it and
// returns to the same view state. The new theme is also pinned in the
// redirect so it holds for the session if the cookie is refused.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w)
	if !ok {
		return
	}
	state := ui.ParseState(r.URL.Query(), len(page.FAQ.Entries))
	resolver := h.resolver(w, r, state)
	current, ok := theme.Parse(r.PostFormValue("current"))
	if !ok {
		current = resolver.Initial()
	}
	state.Theme = resolver.Toggle(current)
	state.PinnedTheme = true
	h.log.Debug("theme toggled", zap.String("theme", state.Theme.String()))

	http.Redirect(w, r, ui.Href(pages.PathHome, state, ""), http.StatusSeeOther)
}

// Navigate scrolls to a section by redirecting to its fragment. The overlay
// always closes; an unknown section only does that.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w)
	if !ok {
		return
	}
	state := ui.ParseState(r.URL.Query(), len(page.FAQ.Entries))
	next, fragment := ui.Navigate(state, chi.URLParam(r, "section"), page)
	http.Redirect(w, r, ui.Href(pages.PathHome, next, fragment), http.StatusSeeOther)
}
