// Package integrations declares the external services the application
// depends on. Implementations live in the subpackages.
package integrations

import (
	"context"
	"errors"
	"io"

	"github.com/linskybing/catalyst/internal/domain/voice"
)

var ErrMissingAPIKey = errors.New("api key not configured")

// ExportError marks a failure reported by an export destination, as opposed
// to transport or programming errors.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return "export failed: " + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

// Chat completion operations. Each maps to a prompt in prompts.yaml.
const (
	OpPRD             = "prd"
	OpUserStory       = "user_story"
	OpActionItems     = "action_items"
	OpSummary         = "summary"
	OpMeetingAnalysis = "meeting_analysis"
	OpMeetingDiagram  = "meeting_diagram"
	OpMermaid         = "mermaid"
)

// LLM renders the prompt for op with data and returns the model's reply.
type LLM interface {
	Generate(ctx context.Context, op string, data any) (string, error)
	Configured() bool
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (voice.Transcription, error)
	Configured() bool
}

// PageExporter publishes markdown as a page and returns its URL. An empty
// databaseID selects the default parent page.
type PageExporter interface {
	Export(ctx context.Context, title, content, databaseID string) (string, error)
}

type DocumentRenderer interface {
	Render(title, content string) ([]byte, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
}
