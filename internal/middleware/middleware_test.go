package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimit(t *testing.T) {
	h := WithRateLimit(NewRateLimiter(0.001, 2))(ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}

	// Another client has its own budget.
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "198.51.100.1:4000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client got %d", w.Code)
	}
}

func TestRateLimitKeysOnConnection(t *testing.T) {
	h := WithRateLimit(NewRateLimiter(0.001, 1))(ok)

	codes := make([]int, 0, 2)
	for _, forwarded := range []string{"192.0.2.1", "192.0.2.2"} {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		req.Header.Set("X-Real-IP", forwarded)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, a new forwarded address must not reset the budget", codes)
	}
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || rl.Allow("a") {
		t.Fatal("expected one request then a refusal")
	}
	now = now.Add(rl.ttl + time.Second)
	rl.Allow("b")
	if _, ok := rl.clients["a"]; ok {
		t.Error("idle client should have been dropped")
	}
}

func TestColorSchemeHints(t *testing.T) {
	w := httptest.NewRecorder()
	WithColorSchemeHints(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Accept-CH"); got != "Sec-CH-Prefers-Color-Scheme" {
		t.Errorf("Accept-CH = %q", got)
	}
	if got := strings.Join(w.Header().Values("Vary"), ","); !strings.Contains(got, "Cookie") {
		t.Errorf("Vary = %q", got)
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(&buf), zapcore.InfoLevel)

	h := WithAccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	if !strings.Contains(out, `"path":"/health"`) || !strings.Contains(out, `"status":418`) {
		t.Errorf("unexpected log %q", out)
	}
}
