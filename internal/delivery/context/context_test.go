package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", SanitizeRequestID("abc-123"))

	for _, bad := range []string{"", "has space", "line\nbreak", strings.Repeat("x", 129)} {
		got := SanitizeRequestID(bad)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", bad)
	}
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "from-ctx", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipals(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
	_, ok = GetDevice(c)
	assert.False(t, ok)

	userID := uuid.New()
	device := &entity.Device{ID: uuid.New()}
	SetUserID(c, userID)
	SetDevice(c, device)

	gotUser, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, gotUser)

	gotDevice, ok := GetDevice(c)
	assert.True(t, ok)
	assert.Same(t, device, gotDevice)
}
