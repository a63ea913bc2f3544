package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/event"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/extract"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/orchestrator"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/pollclient"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/server/api"
	"github.com/SagarThalkiya/multi-agent-document-analysis/pkg/docapi"
	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 1024 * 1024

const sampleDocument = "Acme Corp reported record growth in Q3-2024. " +
	"John Smith highlighted strong expansion in New York and Singapore. " +
	"Analysts remain positive about continued profit next year."

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := job.NewRegistry()
	orch := orchestrator.New(
		orchestrator.NewRunners(analysis.Default(6000)),
		job.NewLifecycle(registry),
		event.NewBus(),
	)

	e := echo.New()
	e.HideBanner = true
	api.SetupRouter(e, api.RouterConfig{
		Registry:       registry,
		Orchestrator:   orch,
		Extractor:      extract.New(),
		MaxUploadBytes: maxUploadBytes,
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func uploadDocument(t *testing.T, srv *httptest.Server, filename, content string) (*http.Response, docapi.UploadResponse) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	resp, err := http.Post(srv.URL+"/api/v1/upload", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	defer resp.Body.Close()

	var parsed docapi.UploadResponse
	if resp.StatusCode == http.StatusCreated {
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			t.Fatalf("decode upload response: %v", err)
		}
	}
	return resp, parsed
}

func startAnalysis(t *testing.T, srv *httptest.Server, jobID string) *http.Response {
	t.Helper()
	body := fmt.Sprintf(`{"job_id":%q}`, jobID)
	resp, err := http.Post(srv.URL+"/api/v1/analyze", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("analyze request: %v", err)
	}
	return resp
}

func TestUploadAnalyzePollFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, uploaded := uploadDocument(t, srv, "report.txt", sampleDocument)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status %d", resp.StatusCode)
	}
	if uploaded.JobID == "" || uploaded.Status != "uploaded" {
		t.Fatalf("unexpected upload response: %+v", uploaded)
	}

	analyzeResp := startAnalysis(t, srv, uploaded.JobID)
	defer analyzeResp.Body.Close()
	if analyzeResp.StatusCode != http.StatusOK {
		t.Fatalf("analyze status %d", analyzeResp.StatusCode)
	}
	var analyzed docapi.AnalyzeResponse
	if err := json.NewDecoder(analyzeResp.Body).Decode(&analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if analyzed.Status != "processing" {
		t.Fatalf("expected processing got %s", analyzed.Status)
	}

	client := pollclient.New(srv.URL, 50*time.Millisecond, 40)
	snap, err := client.Poll(context.Background(), uploaded.JobID)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}

	if snap.Status != "completed" {
		t.Fatalf("expected completed got %s (warning=%q)", snap.Status, snap.Warning)
	}
	if snap.AgentsCompleted != 3 || snap.AgentsFailed != 0 {
		t.Fatalf("counts completed=%d failed=%d", snap.AgentsCompleted, snap.AgentsFailed)
	}
	if snap.DocumentName != "report.txt" {
		t.Fatalf("expected document name, got %q", snap.DocumentName)
	}
	if snap.Results.Summary == nil || snap.Results.Summary.Error != "" || snap.Results.Summary.Text == "" {
		t.Fatalf("unexpected summary slot: %+v", snap.Results.Summary)
	}
	if snap.Results.Entities == nil || snap.Results.Entities.Error != "" {
		t.Fatalf("unexpected entities slot: %+v", snap.Results.Entities)
	}
	if snap.Results.Sentiment == nil || snap.Results.Sentiment.Tone == "" {
		t.Fatalf("unexpected sentiment slot: %+v", snap.Results.Sentiment)
	}

	// A settled job rejects a second run without resetting anything.
	again := startAnalysis(t, srv, uploaded.JobID)
	again.Body.Close()
	if again.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d", again.StatusCode)
	}
	after, err := client.Fetch(context.Background(), uploaded.JobID)
	if err != nil {
		t.Fatalf("fetch after rejected analyze: %v", err)
	}
	if after.Status != "completed" || after.AgentsCompleted != 3 {
		t.Fatalf("rejected analyze mutated the job: %+v", after)
	}
}

func TestResultsWhileNotStarted(t *testing.T) {
	srv := newTestServer(t)
	_, uploaded := uploadDocument(t, srv, "report.txt", sampleDocument)

	client := pollclient.New(srv.URL, time.Millisecond, 1)
	snap, err := client.Fetch(context.Background(), uploaded.JobID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if snap.Status != "uploaded" {
		t.Fatalf("expected uploaded got %s", snap.Status)
	}
	if snap.Results.Summary != nil || snap.Results.Entities != nil || snap.Results.Sentiment != nil {
		t.Fatalf("non-terminal snapshot must carry no results: %+v", snap.Results)
	}
	if snap.TotalProcessingTimeSeconds != 0 {
		t.Fatalf("non-terminal snapshot must carry no timing")
	}
}

func TestAnalyzeUnknownJob(t *testing.T) {
	srv := newTestServer(t)
	resp := startAnalysis(t, srv, "does-not-exist")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
}

func TestResultsUnknownJob(t *testing.T) {
	srv := newTestServer(t)
	client := pollclient.New(srv.URL, time.Millisecond, 1)
	if _, err := client.Fetch(context.Background(), "does-not-exist"); !errors.Is(err, pollclient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := uploadDocument(t, srv, "malware.exe", "binary stuff")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := uploadDocument(t, srv, "big.txt", strings.Repeat("a", maxUploadBytes+1))
	if resp.StatusCode != http.StatusBadRequest && resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 400 or 413 got %d", resp.StatusCode)
	}
}
