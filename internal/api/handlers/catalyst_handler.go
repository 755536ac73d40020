package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/catalyst"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/pkg/response"
)

type CatalystHandler struct {
	svc *application.CatalystService
}

func NewCatalystHandler(svc *application.CatalystService) *CatalystHandler {
	return &CatalystHandler{svc: svc}
}

// Process godoc
// @Summary Generate a document from meeting notes
// @Tags catalyst
// @Accept json
// @Produce json
// @Param request body catalyst.ProcessRequest true "Notes and output type (prd, user_story, action_items, summary)"
// @Success 200 {object} catalyst.ProcessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid output_type or empty notes"
// @Failure 500 {object} response.ErrorResponse "Generation failed"
// @Router /catalyst/process [post]
func (h *CatalystHandler) Process(c *gin.Context) {
	var req catalyst.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.svc.Process(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOutputType):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid output_type"})
		case errors.Is(err, application.ErrEmptyNotes):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, out)
}

// ExportNotion godoc
// @Summary Export markdown content to a Notion page
// @Description Without database_id the page is created under NOTION_PARENT_PAGE_ID, or under the first page the integration can see.
// @Tags catalyst
// @Accept json
// @Produce json
// @Param request body catalyst.NotionExportRequest true "Content and page title"
// @Success 200 {object} catalyst.NotionExportResponse
// @Failure 400 {object} response.ErrorResponse "Notion rejected the export"
// @Failure 500 {object} response.ErrorResponse "Export failed"
// @Router /catalyst/export-notion [post]
func (h *CatalystHandler) ExportNotion(c *gin.Context) {
	var req catalyst.NotionExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.svc.ExportNotion(c.Request.Context(), req)
	if err != nil {
		var exportErr *integrations.ExportError
		switch {
		case errors.As(err, &exportErr):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: exportErr.Err.Error()})
		case errors.Is(err, application.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Notion export failed: %v", err)})
		}
		return
	}
	c.JSON(http.StatusOK, out)
}

// ExportPDF godoc
// @Summary Render markdown content as a PDF
// @Tags catalyst
// @Accept json
// @Produce application/pdf
// @Param request body catalyst.PDFExportRequest true "Content and title"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /catalyst/export-pdf [post]
func (h *CatalystHandler) ExportPDF(c *gin.Context) {
	var req catalyst.PDFExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	pdf, err := h.svc.ExportPDF(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, application.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename(req.PageTitle)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GenerateMermaid godoc
// @Summary Generate a Mermaid diagram from a description
// @Tags mermaid
// @Accept json
// @Produce json
// @Param request body catalyst.MermaidRequest true "Diagram description"
// @Success 200 {object} catalyst.MermaidResponse
// @Failure 400 {object} response.ErrorResponse "Empty prompt or API key not configured"
// @Failure 500 {object} response.ErrorResponse "Generation failed"
// @Router /mermaid/generate [post]
func (h *CatalystHandler) GenerateMermaid(c *gin.Context) {
	var req catalyst.MermaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	out, err := h.svc.GenerateMermaid(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyPrompt), errors.Is(err, integrations.ErrMissingAPIKey):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to generate diagram: %v", err)})
		}
		return
	}
	c.JSON(http.StatusOK, out)
}

// pdfFilename keeps letters, digits, dashes and underscores of title.
func pdfFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, strings.TrimSpace(title))
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}
