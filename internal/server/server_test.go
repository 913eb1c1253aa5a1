package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dharmaqa/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAnswerer struct {
	answer *domain.Answer
	err    error
	asked  string
}

func (s *stubAnswerer) Answer(_ context.Context, question string) (*domain.Answer, error) {
	s.asked = question
	if s.err != nil {
		return nil, s.err
	}
	return s.answer, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doAsk(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := NewRouter(&stubAnswerer{}, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAsk_ReturnsAnswer(t *testing.T) {
	stub := &stubAnswerer{answer: &domain.Answer{Type: domain.AnswerGreeting, Message: "hi there"}}
	router := NewRouter(stub, testLogger())

	w := doAsk(t, router, `{"question": "Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello", stub.asked)

	var got domain.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.AnswerGreeting, got.Type)
	assert.Equal(t, "hi there", got.Message)
}

func TestAsk_TrimsQuestion(t *testing.T) {
	stub := &stubAnswerer{answer: &domain.Answer{Type: domain.AnswerUnclear}}
	router := NewRouter(stub, testLogger())

	w := doAsk(t, router, `{"question": "  what is karma  "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "what is karma", stub.asked)
}

func TestAsk_EmptyQuestionFallback(t *testing.T) {
	stub := &stubAnswerer{}
	router := NewRouter(stub, testLogger())

	for _, body := range []string{`{"question": ""}`, `{"question": "   "}`, `{}`} {
		w := doAsk(t, router, body)
		require.Equal(t, http.StatusOK, w.Code, "body %s", body)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, EmptyQuestionMessage, got["answer"])
	}
	assert.Empty(t, stub.asked, "pipeline must not run for empty questions")
}

func TestAsk_InvalidBody(t *testing.T) {
	router := NewRouter(&stubAnswerer{}, testLogger())
	w := doAsk(t, router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAsk_PipelineFailure(t *testing.T) {
	router := NewRouter(&stubAnswerer{err: errors.New("embedder unavailable")}, testLogger())
	w := doAsk(t, router, `{"question": "what is dharma really"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := NewRouter(&stubAnswerer{answer: &domain.Answer{Type: domain.AnswerGreeting}}, testLogger())
	w := doAsk(t, router, `{"question": "Hello"}`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
