package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, 5*time.Second, 5*time.Second)
	require.NoError(t, err)
	return client, srv
}

func TestUploadResumeSendsMultipartFileField(t *testing.T) {
	var gotField, gotFileName string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload-resume", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFileName = headers[0].Filename
		}

		json.NewEncoder(w).Encode(map[string]any{
			"filename":   "resume.pdf",
			"text":       "John Doe, 5 years Python",
			"word_count": 5,
			"status":     "success",
		})
	})

	extraction, err := client.UploadResume(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "file", gotField)
	assert.Equal(t, "resume.pdf", gotFileName)
	assert.Equal(t, "John Doe, 5 years Python", extraction.Text)
	assert.Equal(t, 5, extraction.WordCount)
}

func TestUploadResumeStatusFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.UploadResume(context.Background(), "resume.txt", strings.NewReader("text"))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, OpUpload, apiErr.Op)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestUploadResumeMissingTextFailsClosed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"filename": "resume.txt", "status": "success"})
	})

	_, err := client.UploadResume(context.Background(), "resume.txt", strings.NewReader("text"))
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestAnalyzeAlwaysSendsLocalInferenceFlag(t *testing.T) {
	var got analyzeRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"fit_score":               72.5,
			"matched_skills":          []string{"Python", "SQL"},
			"missing_skills":          []string{"AWS"},
			"hr_summary":              "Good candidate.",
			"market_insights":         map[string]string{"salary_range": "$80k-$100k"},
			"improvement_suggestions": []string{"Learn AWS"},
		})
	})

	report, err := client.Analyze(context.Background(), "resume text", "job description")
	require.NoError(t, err)

	assert.Equal(t, "resume text", got.ResumeText)
	assert.Equal(t, "job description", got.JobDescription)
	assert.False(t, got.UseAPI, "use_api must always be false")

	assert.Equal(t, 72.5, report.FitScore)
	assert.Equal(t, []string{"Python", "SQL"}, report.MatchedSkills)
	assert.Equal(t, []string{"AWS"}, report.MissingSkills)
	assert.Equal(t, "$80k-$100k", report.MarketInsights["salary_range"])
}

func TestAnalyzeMissingFieldFailsClosed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// matched_skills absent entirely.
		json.NewEncoder(w).Encode(map[string]any{
			"fit_score":               50,
			"missing_skills":          []string{},
			"hr_summary":              "x",
			"market_insights":         map[string]string{},
			"improvement_suggestions": []string{},
		})
	})

	_, err := client.Analyze(context.Background(), "r", "j")
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestAnalyzeEmptyListsAreValid(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"fit_score":               0,
			"matched_skills":          []string{},
			"missing_skills":          []string{},
			"hr_summary":              "No overlap found.",
			"market_insights":         map[string]string{},
			"improvement_suggestions": []string{},
		})
	})

	report, err := client.Analyze(context.Background(), "r", "j")
	require.NoError(t, err)
	assert.Zero(t, report.FitScore)
	assert.Empty(t, report.MatchedSkills)
}

func TestAnalyzeScoreOutOfBoundsFailsClosed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"fit_score":               140,
			"matched_skills":          []string{},
			"missing_skills":          []string{},
			"hr_summary":              "x",
			"market_insights":         map[string]string{},
			"improvement_suggestions": []string{},
		})
	})

	_, err := client.Analyze(context.Background(), "r", "j")
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestAnalyzeTransportFailure(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Analyze(context.Background(), "r", "j")
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestHealth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "healthy"})
	})

	require.NoError(t, client.Health(context.Background()))
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("   ", 0, 0)
	require.Error(t, err)
}
