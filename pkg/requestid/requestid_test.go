package requestid_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/logger"
	"github.com/dmitrymomot/areacalc/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid v7", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, respID)

		parsed, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("reuses valid client id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "edge-req_42")
		assert.Equal(t, "edge-req_42", ctxID)
		assert.Equal(t, "edge-req_42", respID)
	})

	for _, bad := range []string{
		"test@request#id",
		"test request id",
		"a/b",
		"<script>alert(1)</script>",
		strings.Repeat("a", 129),
	} {
		t.Run("replaces invalid "+bad[:min(len(bad), 16)], func(t *testing.T) {
			t.Parallel()
			ctxID, respID := serve(t, bad)
			assert.NotEqual(t, bad, ctxID)
			assert.Equal(t, ctxID, respID)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithTextFormatter(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "without")
	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "with")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "request_id")
	assert.Contains(t, lines[1], "request_id=req-1")

	_, ok := requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)
	attr, ok := requestid.LoggerExtractor()(requestid.WithContext(context.Background(), "x"))
	assert.True(t, ok)
	assert.Equal(t, slog.String("request_id", "x").String(), attr.String())
}
