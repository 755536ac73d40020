package catalyst

type OutputType string

const (
	OutputPRD         OutputType = "prd"
	OutputUserStory   OutputType = "user_story"
	OutputActionItems OutputType = "action_items"
	OutputSummary     OutputType = "summary"
)

func (o OutputType) Valid() bool {
	switch o {
	case OutputPRD, OutputUserStory, OutputActionItems, OutputSummary:
		return true
	}
	return false
}

type ProcessRequest struct {
	Notes      string     `json:"notes" binding:"required" example:"Discussed onboarding flow..."`
	OutputType OutputType `json:"output_type" binding:"required" example:"prd"`
}

type ProcessResponse struct {
	Content    string     `json:"content"`
	OutputType OutputType `json:"output_type"`
}

type NotionExportRequest struct {
	Content    string  `json:"content" binding:"required"`
	PageTitle  string  `json:"page_title" binding:"required"`
	DatabaseID *string `json:"database_id,omitempty"`
}

type NotionExportResponse struct {
	Success   bool   `json:"success"`
	NotionURL string `json:"notion_url"`
	Message   string `json:"message"`
}

type PDFExportRequest struct {
	Content   string `json:"content" binding:"required"`
	PageTitle string `json:"page_title" binding:"required"`
}

type MermaidRequest struct {
	Prompt string `json:"prompt"`
}

type MermaidResponse struct {
	Mermaid string `json:"mermaid"`
}
