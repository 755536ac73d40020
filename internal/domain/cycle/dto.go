package cycle

type CreateCycleDTO struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ProjectID   *string `json:"project_id,omitempty"`
}

type UpdateCycleDTO struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ProjectID   *string `json:"project_id,omitempty"`
}
