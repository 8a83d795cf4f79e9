package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wanderlust/database/repository/session"
	"wanderlust/handlers"
	"wanderlust/models"
	"wanderlust/routes"
	ai "wanderlust/services/intelligence"
	"wanderlust/services/planner"
	"wanderlust/services/search"
	"wanderlust/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSearcher struct{ calls int }

func (s *staticSearcher) Search(context.Context, string) (search.Result, error) {
	s.calls++
	return search.Result{Kind: search.KindAnswer, Text: "Visit the Louvre"}, nil
}

type staticCompleter struct{ calls int }

func (s *staticCompleter) Complete(context.Context, string) (string, error) {
	s.calls++
	return "Day 1: Louvre", nil
}

func newRouter(t *testing.T) (*gin.Engine, *staticSearcher, *staticCompleter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	searcher := &staticSearcher{}
	completer := &staticCompleter{}
	machine := planner.NewMachine(search.NewFetcher(searcher, nil), ai.NewSynthesizer(completer, nil), nil)
	svc := planner.NewDefaultPlannerService(session.NewMemorySessionRepo(), machine, nil)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewChatHandler(svc, time.Minute)))
	return r, searcher, completer
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestChatFlowOverHTTP(t *testing.T) {
	r, searcher, completer := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.ChatResponse](t, w)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, []string{planner.WelcomeMessage}, created.Messages)

	base := "/api/chat/sessions/" + created.SessionID

	w = do(t, r, http.MethodPost, base+"/messages", models.ChatRequest{Text: "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{planner.InvalidStartMessage}, decode[models.ChatResponse](t, w).Messages)

	w = do(t, r, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StateCollecting, decode[models.ChatResponse](t, w).State)

	var last models.ChatResponse
	for _, a := range []string{"Paris", "moderate", "sightseeing and food", "5", "mid-range hotel"} {
		w = do(t, r, http.MethodPost, base+"/messages", models.ChatRequest{Text: a})
		require.Equal(t, http.StatusOK, w.Code)
		last = decode[models.ChatResponse](t, w)
	}
	assert.Equal(t, models.StateComplete, last.State)
	require.Len(t, last.Messages, 1)
	assert.True(t, strings.HasPrefix(last.Messages[0], ai.ItineraryReadyBanner))
	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, 1, completer.calls)

	w = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	snapshot := decode[models.Session](t, w)
	assert.Equal(t, "Paris", snapshot.Answers[models.FieldDestination])
	require.NotNil(t, snapshot.Itinerary)
	assert.Equal(t, "Day 1: Louvre", *snapshot.Itinerary)
	assert.NotEmpty(t, snapshot.Messages)

	w = do(t, r, http.MethodPost, base+"/restart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{planner.RestartMessage}, decode[models.ChatResponse](t, w).Messages)

	w = do(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Session not found", decode[utils.ErrorResponse](t, w).Message)
}

func TestSendMessageRejectsBadJSON(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/sessions/abc/messages", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input", decode[utils.ErrorResponse](t, w).Message)
}

func TestHealthRoute(t *testing.T) {
	r, _, _ := newRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
	assert.Contains(t, w.Body.String(), `"searchCache":"disabled"`)
}
