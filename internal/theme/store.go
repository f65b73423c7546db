package theme

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CookieName is the single persisted key holding the theme string.
const CookieName = "lbe_theme"

const cookieMaxAge = 365 * 24 * time.Hour

// ErrNoPreference is returned by a Store that holds no value yet.
var ErrNoPreference = errors.New("theme: no stored preference")

// Store persists the user's theme choice.
type Store interface {
	Load() (string, error)
	Save(Theme) error
}

// CookieStore keeps the choice in a cookie on the current request/response pair.
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{w: w, r: r, secure: secure}
}

func (s *CookieStore) Load() (string, error) {
	c, err := s.r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoPreference
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

func (s *CookieStore) Save(t Theme) error {
	if s.w == nil {
		return errors.New("theme: cookie store has no response writer")
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    t.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// MemoryStore is a session-only store. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	value string
}

// NewMemoryStore starts with value already stored. Empty means nothing stored.
func NewMemoryStore(value string) *MemoryStore {
	return &MemoryStore{value: value}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == "" {
		return "", ErrNoPreference
	}
	return s.value, nil
}

func (s *MemoryStore) Save(t Theme) error {
	s.mu.Lock()
	s.value = t.String()
	s.mu.Unlock()
	return nil
}

// FallbackStore uses primary and degrades to secondary when primary fails or
// holds nothing usable.
type FallbackStore struct {
	primary   Store
	secondary Store
	log       *zap.Logger
}

func Fallback(primary, secondary Store, log *zap.Logger) *FallbackStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackStore{primary: primary, secondary: secondary, log: log}
}

func (s *FallbackStore) Load() (string, error) {
	v, err := s.primary.Load()
	switch {
	case err == nil:
		if _, ok := Parse(v); ok {
			return v, nil
		}
		s.log.Debug("ignoring invalid stored theme", zap.String("value", v))
	case !errors.Is(err, ErrNoPreference):
		s.log.Debug("theme storage unavailable, using session store", zap.Error(err))
	}
	return s.secondary.Load()
}

func (s *FallbackStore) Save(t Theme) error {
	if err := s.primary.Save(t); err != nil {
		s.log.Debug("theme storage unavailable, keeping choice for this session", zap.Error(err))
		return s.secondary.Save(t)
	}
	return nil
}

// Resolver produces the initial theme for a page load and persists toggles.
type Resolver struct {
	store  Store
	osPref string
	log    *zap.Logger
}

func NewResolver(store Store, osPref string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{store: store, osPref: osPref, log: log}
}

// Initial reads the stored choice once and applies Resolve. A store error is
// treated as "nothing stored".
func (r *Resolver) Initial() Theme {
	stored, err := r.store.Load()
	if err != nil && !errors.Is(err, ErrNoPreference) {
		r.log.Debug("reading theme preference failed", zap.Error(err))
	}
	return Resolve(stored, r.osPref)
}

// Toggle flips current and persists the result. Persistence failures are
// logged and otherwise ignored.
func (r *Resolver) Toggle(current Theme) Theme {
	next := current.Toggle()
	if err := r.store.Save(next); err != nil {
		r.log.Debug("persisting theme preference failed", zap.String("theme", next.String()), zap.Error(err))
	}
	return next
}
