package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/catalyst"
	"github.com/linskybing/catalyst/internal/integrations"
	imock "github.com/linskybing/catalyst/internal/integrations/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalyst(t *testing.T) (*application.CatalystService, *imock.MockLLM, *imock.MockPageExporter, *imock.MockDocumentRenderer) {
	ctrl := gomock.NewController(t)
	llm := imock.NewMockLLM(ctrl)
	exporter := imock.NewMockPageExporter(ctrl)
	renderer := imock.NewMockDocumentRenderer(ctrl)
	return application.NewCatalystService(llm, exporter, renderer), llm, exporter, renderer
}

func TestCatalystProcess(t *testing.T) {
	svc, llm, _, _ := setupCatalyst(t)
	ctx := context.Background()

	t.Run("generates requested document", func(t *testing.T) {
		llm.EXPECT().Generate(gomock.Any(), "user_story", gomock.Any()).Return("  As a PM...  ", nil)
		resp, err := svc.Process(ctx, catalyst.ProcessRequest{Notes: "notes", OutputType: catalyst.OutputUserStory})
		require.NoError(t, err)
		assert.Equal(t, "As a PM...", resp.Content)
		assert.Equal(t, catalyst.OutputUserStory, resp.OutputType)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.Process(ctx, catalyst.ProcessRequest{Notes: "notes", OutputType: "poem"})
		assert.True(t, errors.Is(err, application.ErrInvalidOutputType))
	})

	t.Run("rejects empty notes", func(t *testing.T) {
		_, err := svc.Process(ctx, catalyst.ProcessRequest{Notes: "  ", OutputType: catalyst.OutputPRD})
		assert.True(t, errors.Is(err, application.ErrEmptyNotes))
	})

	t.Run("propagates llm failure", func(t *testing.T) {
		llm.EXPECT().Generate(gomock.Any(), "summary", gomock.Any()).Return("", errors.New("upstream 500"))
		_, err := svc.Process(ctx, catalyst.ProcessRequest{Notes: "n", OutputType: catalyst.OutputSummary})
		assert.Error(t, err)
	})
}

func TestCatalystExports(t *testing.T) {
	svc, _, exporter, renderer := setupCatalyst(t)
	ctx := context.Background()

	exporter.EXPECT().Export(gomock.Any(), "Plan", "# Plan", "db-1").Return("https://notion.so/x", nil)
	resp, err := svc.ExportNotion(ctx, catalyst.NotionExportRequest{Content: "# Plan", PageTitle: "Plan", DatabaseID: strPtr(" db-1 ")})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://notion.so/x", resp.NotionURL)

	exportErr := &integrations.ExportError{Err: errors.New("validation_error")}
	exporter.EXPECT().Export(gomock.Any(), "Plan", "body", "").Return("", exportErr)
	_, err = svc.ExportNotion(ctx, catalyst.NotionExportRequest{Content: "body", PageTitle: "Plan"})
	var target *integrations.ExportError
	assert.True(t, errors.As(err, &target))

	renderer.EXPECT().Render("Plan", "body").Return([]byte("%PDF-1.3"), nil)
	pdf, err := svc.ExportPDF(ctx, catalyst.PDFExportRequest{Content: "body", PageTitle: "Plan"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
}

func TestGenerateMermaid(t *testing.T) {
	svc, llm, _, _ := setupCatalyst(t)
	ctx := context.Background()

	_, err := svc.GenerateMermaid(ctx, catalyst.MermaidRequest{Prompt: " "})
	assert.True(t, errors.Is(err, application.ErrEmptyPrompt))

	llm.EXPECT().Configured().Return(false)
	_, err = svc.GenerateMermaid(ctx, catalyst.MermaidRequest{Prompt: "login flow"})
	assert.True(t, errors.Is(err, integrations.ErrMissingAPIKey))

	llm.EXPECT().Configured().Return(true)
	llm.EXPECT().Generate(gomock.Any(), integrations.OpMermaid, gomock.Any()).Return("```\nmermaid\ngraph LR\n  A --> B\n```", nil)
	resp, err := svc.GenerateMermaid(ctx, catalyst.MermaidRequest{Prompt: "login flow"})
	require.NoError(t, err)
	assert.Equal(t, "graph LR\n  A --> B", resp.Mermaid)
}
