package label

type CreateLabelDTO struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Color     *string `json:"color,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}

type UpdateLabelDTO struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Color     *string `json:"color,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}
