package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/extract"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/orchestrator"
	"github.com/SagarThalkiya/multi-agent-document-analysis/pkg/docapi"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

type DocumentsHandler struct {
	registry       *job.Registry
	orchestrator   *orchestrator.Orchestrator
	extractor      *extract.Extractor
	maxUploadBytes int64
}

func NewDocumentsHandler(
	registry *job.Registry,
	orch *orchestrator.Orchestrator,
	extractor *extract.Extractor,
	maxUploadBytes int64,
) *DocumentsHandler {
	return &DocumentsHandler{
		registry:       registry,
		orchestrator:   orch,
		extractor:      extractor,
		maxUploadBytes: maxUploadBytes,
	}
}

// Inputs / outputs

type UploadInput struct {
	RawBody huma.MultipartFormFiles[documentForm]
}

type documentForm struct {
	File huma.FormFile `form:"file" required:"true" doc:"Document to analyze (PDF or TXT)"`
}

type UploadOutput struct {
	Body docapi.UploadResponse
}

type AnalyzeInput struct {
	Body struct {
		JobID string `json:"job_id" minLength:"1" doc:"Job identifier returned by upload"`
	}
}

type AnalyzeOutput struct {
	Body docapi.AnalyzeResponse
}

type ResultsInput struct {
	JobID string `path:"job_id" doc:"Job ID"`
}

type ResultsOutput struct {
	Body docapi.ResultsResponse
}

// Handlers

func (h *DocumentsHandler) Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
	form := input.RawBody.Data()
	if !form.File.IsSet {
		return nil, huma.Error400BadRequest("No file provided.")
	}
	if form.File.Size > h.maxUploadBytes {
		return nil, huma.Error400BadRequest(fmt.Sprintf("File exceeds %d MB limit.", h.maxUploadBytes/(1024*1024)))
	}

	data, err := io.ReadAll(form.File)
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to read uploaded file.")
	}
	if int64(len(data)) > h.maxUploadBytes {
		return nil, huma.Error400BadRequest(fmt.Sprintf("File exceeds %d MB limit.", h.maxUploadBytes/(1024*1024)))
	}

	text, err := h.extractor.Extract(form.File.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return nil, huma.Error400BadRequest("Only PDF and TXT files are supported.")
		}
		return nil, huma.Error400BadRequest("Document parsing failed: " + err.Error())
	}

	j := h.registry.Create(form.File.Filename, text)
	log.Info().Str("job_id", j.ID).Str("filename", j.Filename).Int("bytes", len(data)).Msg("document uploaded")

	return &UploadOutput{Body: docapi.UploadResponse{
		JobID:    j.ID,
		Filename: j.Filename,
		Status:   string(j.Status),
		Message:  "Document uploaded successfully. Use /analyze to start processing.",
	}}, nil
}

func (h *DocumentsHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	j, ok := h.registry.Get(input.Body.JobID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown job_id.")
	}

	if err := h.orchestrator.Start(ctx, j.ID, j.DocumentText); err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return nil, huma.Error404NotFound("Unknown job_id.")
		case errors.Is(err, job.ErrAlreadyProcessing):
			return nil, huma.Error409Conflict("Analysis already in progress.")
		case errors.Is(err, job.ErrAlreadyFinished):
			return nil, huma.Error409Conflict("Analysis already completed.")
		default:
			return nil, huma.Error500InternalServerError(err.Error())
		}
	}

	return &AnalyzeOutput{Body: docapi.AnalyzeResponse{
		JobID:   j.ID,
		Status:  string(job.StatusProcessing),
		Message: "Analysis started. Check /results/{job_id} for updates.",
	}}, nil
}

func (h *DocumentsHandler) Results(ctx context.Context, input *ResultsInput) (*ResultsOutput, error) {
	j, ok := h.registry.Get(input.JobID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown job_id.")
	}

	return &ResultsOutput{Body: docapi.ResultsResponse{
		JobID:                      j.ID,
		Status:                     string(j.Status),
		DocumentName:               j.Filename,
		Results:                    docapi.FromOutcomes(j.Results),
		TotalProcessingTimeSeconds: docapi.RoundSeconds(j.TotalProcessingTime.Seconds()),
		AgentsCompleted:            j.AgentsCompleted,
		AgentsFailed:               j.AgentsFailed,
		Warning:                    j.Warning,
	}}, nil
}
