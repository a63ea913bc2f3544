// Package docapi defines the wire types of the document analysis API, shared
// by the server handlers and the polling client.
package docapi

type UploadResponse struct {
	JobID    string `json:"job_id" doc:"Job ID"`
	Filename string `json:"filename" doc:"Original filename"`
	Status   string `json:"status" doc:"Job status"`
	Message  string `json:"message"`
}

type AnalyzeResponse struct {
	JobID   string `json:"job_id" doc:"Job ID"`
	Status  string `json:"status" doc:"Job status"`
	Message string `json:"message"`
}

// SummaryPayload is the summary task's slot in the results object. On failure
// only Error and ProcessingTimeSeconds are populated.
type SummaryPayload struct {
	Text                  string   `json:"text,omitempty"`
	KeyPoints             []string `json:"key_points,omitempty"`
	Confidence            float64  `json:"confidence,omitempty"`
	ProcessingTimeSeconds float64  `json:"processing_time_seconds"`
	Error                 string   `json:"error,omitempty"`
}

type EntityItem struct {
	Name     string `json:"name"`
	Mentions int    `json:"mentions"`
	Context  string `json:"context,omitempty"`
	Role     string `json:"role,omitempty"`
	Type     string `json:"type,omitempty"`
}

type EntitiesPayload struct {
	People                []EntityItem `json:"people,omitempty"`
	Organizations         []EntityItem `json:"organizations,omitempty"`
	Dates                 []EntityItem `json:"dates,omitempty"`
	Locations             []EntityItem `json:"locations,omitempty"`
	ProcessingTimeSeconds float64      `json:"processing_time_seconds"`
	Error                 string       `json:"error,omitempty"`
}

type SentimentPayload struct {
	Tone                  string   `json:"tone,omitempty"`
	Confidence            float64  `json:"confidence,omitempty"`
	Formality             string   `json:"formality,omitempty"`
	KeyPhrases            []string `json:"key_phrases,omitempty"`
	ProcessingTimeSeconds float64  `json:"processing_time_seconds"`
	Error                 string   `json:"error,omitempty"`
}

// AnalysisResults carries one slot per task. A slot is nil until the job
// settles; a populated slot holds either the structured payload or an error,
// never both.
type AnalysisResults struct {
	Summary   *SummaryPayload   `json:"summary,omitempty"`
	Entities  *EntitiesPayload  `json:"entities,omitempty"`
	Sentiment *SentimentPayload `json:"sentiment,omitempty"`
}

type ResultsResponse struct {
	JobID                      string          `json:"job_id" doc:"Job ID"`
	Status                     string          `json:"status" doc:"Job status (uploaded, processing, completed, partial, failed)"`
	DocumentName               string          `json:"document_name" doc:"Original filename"`
	Results                    AnalysisResults `json:"results"`
	TotalProcessingTimeSeconds float64         `json:"total_processing_time_seconds,omitempty" doc:"Wall time of the parallel analysis phase"`
	AgentsCompleted            int             `json:"agents_completed"`
	AgentsFailed               int             `json:"agents_failed"`
	Warning                    string          `json:"warning,omitempty"`
}
