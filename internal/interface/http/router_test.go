package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
	"github.com/yanqian/yt-summarizer/internal/domain/pipeline"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

func TestRouter_SummarizeAlwaysOK(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		result summarizer.Result
		status pipeline.Status
	}{
		{
			name:   "success",
			path:   "/summarize?url=https://youtu.be/abc123",
			result: summarizer.Result{TopicName: "Go Concurrency", TopicSummary: "Channels explained."},
			status: pipeline.StatusSuccess,
		},
		{
			name:   "invalid url",
			path:   "/summarize?url=https://example.com",
			result: summarizer.Result{TopicName: pipeline.TopicURLError, TopicSummary: "Could not extract video ID from URL: Invalid YouTube URL format"},
			status: pipeline.StatusInvalidURL,
		},
		{
			name:   "transcript error",
			path:   "/summarize?url=https://youtu.be/nocaps",
			result: summarizer.Result{TopicName: pipeline.TopicTranscriptError, TopicSummary: pipeline.TranscriptErrorMessage},
			status: pipeline.StatusTranscriptUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			runner := &stubPipeline{report: pipeline.Report{Result: tt.result, Status: tt.status}}
			server := newRouterUnderTest(t, runner, &stubHistory{})

			rec := performRequest(http.MethodGet, tt.path, server)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get(requestIDHeader))

			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, map[string]string{"topic_name": tt.result.TopicName, "topic_summary": tt.result.TopicSummary}, got)
		})
	}
}

func TestRouter_SummarizePassesURL(t *testing.T) {
	runner := &stubPipeline{}
	server := newRouterUnderTest(t, runner, &stubHistory{})

	rec := performRequest(http.MethodGet, "/summarize?url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dabc%26t%3D10", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://www.youtube.com/watch?v=abc&t=10", runner.gotURL)

	rec = performRequest(http.MethodGet, "/summarize", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "", runner.gotURL)
}

func TestRouter_Health(t *testing.T) {
	server := newRouterUnderTest(t, &stubPipeline{}, &stubHistory{})

	rec := performRequest(http.MethodGet, "/health", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy","service":"YouTube Summarizer"}`, rec.Body.String())
}

func TestRouter_History(t *testing.T) {
	entries := []history.Entry{{URL: "https://youtu.be/abc", Status: "success", TopicName: "Topic"}}
	hist := &stubHistory{entries: entries}
	server := newRouterUnderTest(t, &stubPipeline{}, hist)

	rec := performRequest(http.MethodGet, "/history?limit=5", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5, hist.gotLimit)

	var body struct {
		Items []history.Entry `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	require.Equal(t, "Topic", body.Items[0].TopicName)

	rec = performRequest(http.MethodGet, "/history", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, hist.gotLimit)
}

func TestRouter_HistoryErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		recentErr  error
		wantStatus int
		wantCode   string
	}{
		{name: "non numeric limit", path: "/history?limit=abc", wantStatus: http.StatusBadRequest, wantCode: apperrors.CodeInvalidInput},
		{name: "negative limit", path: "/history?limit=-1", wantStatus: http.StatusBadRequest, wantCode: apperrors.CodeInvalidInput},
		{
			name:       "repository failure",
			path:       "/history",
			recentErr:  apperrors.Wrap(apperrors.CodeInternal, "list history failed", errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := newRouterUnderTest(t, &stubPipeline{}, &stubHistory{err: tt.recentErr})

			rec := performRequest(http.MethodGet, tt.path, server)
			require.Equal(t, tt.wantStatus, rec.Code)

			errBody := decodeErrorBody(t, rec.Body.Bytes())
			require.Equal(t, tt.wantCode, errBody["error"]["code"])
			require.NotEmpty(t, errBody["error"]["message"])
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, &stubPipeline{}, &stubHistory{})

	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestRouter_Metrics(t *testing.T) {
	server := newRouterUnderTest(t, &stubPipeline{}, &stubHistory{})

	rec := performRequest(http.MethodGet, "/metrics", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestResolveOrigin(t *testing.T) {
	require.Equal(t, "*", resolveOrigin("http://a", nil))
	require.Equal(t, "http://b", resolveOrigin("http://b", []string{"http://a", "http://b"}))
	require.Equal(t, "http://a", resolveOrigin("http://c", []string{"http://a", "http://b"}))
	require.Equal(t, "*", resolveOrigin("http://c", []string{"*"}))
}

func TestFromAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "invalid input",
			err:        apperrors.Wrap(apperrors.CodeInvalidInput, "limit must be positive", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
			wantMsg:    "limit must be positive",
		},
		{
			name:       "internal",
			err:        apperrors.Wrap(apperrors.CodeInternal, "list history failed", errors.New("conn refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
			wantMsg:    "list history failed",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
			wantMsg:    "boom",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fromAppError(tt.err)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.wantCode, got.Code)
			require.Equal(t, tt.wantMsg, got.Message)
			require.ErrorIs(t, got, tt.err)
		})
	}
}

func performRequest(method, path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, runner pipeline.Service, hist history.Service) *http.Server {
	t.Helper()
	handler := NewHandler(runner, hist, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	return NewRouter(cfg, handler, metrics.NewCollector())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubPipeline struct {
	report pipeline.Report
	gotURL string
}

func (s *stubPipeline) Run(_ context.Context, rawURL string) pipeline.Report {
	s.gotURL = rawURL
	return s.report
}

type stubHistory struct {
	entries  []history.Entry
	err      error
	gotLimit int
}

func (s *stubHistory) Record(context.Context, history.Entry) {}

func (s *stubHistory) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
