package application

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/catalyst"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/integrations/nemotron"
)

var (
	ErrInvalidOutputType = errors.New("invalid output_type")
	ErrEmptyNotes        = errors.New("notes cannot be empty")
	ErrEmptyPrompt       = errors.New("prompt cannot be empty")
	ErrEmptyContent      = errors.New("content cannot be empty")
)

type CatalystService struct {
	LLM      integrations.LLM
	Exporter integrations.PageExporter
	Renderer integrations.DocumentRenderer
}

func NewCatalystService(llm integrations.LLM, exporter integrations.PageExporter, renderer integrations.DocumentRenderer) *CatalystService {
	return &CatalystService{
		LLM:      llm,
		Exporter: exporter,
		Renderer: renderer,
	}
}

// Process turns meeting notes into the requested document.
func (s *CatalystService) Process(ctx context.Context, req catalyst.ProcessRequest) (*catalyst.ProcessResponse, error) {
	if !req.OutputType.Valid() {
		return nil, ErrInvalidOutputType
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, ErrEmptyNotes
	}

	content, err := s.LLM.Generate(ctx, string(req.OutputType), struct{ Notes string }{req.Notes})
	if err != nil {
		return nil, err
	}
	return &catalyst.ProcessResponse{Content: strings.TrimSpace(content), OutputType: req.OutputType}, nil
}

func (s *CatalystService) ExportNotion(ctx context.Context, req catalyst.NotionExportRequest) (*catalyst.NotionExportResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	databaseID := ""
	if req.DatabaseID != nil {
		databaseID = strings.TrimSpace(*req.DatabaseID)
	}

	url, err := s.Exporter.Export(ctx, req.PageTitle, req.Content, databaseID)
	if err != nil {
		log.Printf("[Notion] export of %q failed: %v", req.PageTitle, err)
		return nil, err
	}
	return &catalyst.NotionExportResponse{
		Success:   true,
		NotionURL: url,
		Message:   "Successfully exported to Notion",
	}, nil
}

func (s *CatalystService) ExportPDF(ctx context.Context, req catalyst.PDFExportRequest) ([]byte, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	return s.Renderer.Render(req.PageTitle, req.Content)
}

// GenerateMermaid converts a description into Mermaid source.
func (s *CatalystService) GenerateMermaid(ctx context.Context, req catalyst.MermaidRequest) (*catalyst.MermaidResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if !s.LLM.Configured() {
		return nil, integrations.ErrMissingAPIKey
	}

	raw, err := s.LLM.Generate(ctx, integrations.OpMermaid, struct{ Prompt string }{req.Prompt})
	if err != nil {
		return nil, err
	}
	return &catalyst.MermaidResponse{Mermaid: nemotron.StripCodeFence(raw)}, nil
}
