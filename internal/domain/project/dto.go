package project

type CreateProjectDTO struct {
	Name        string  `json:"name" binding:"required,max=255" example:"Mobile App"`
	Identifier  *string `json:"identifier,omitempty" binding:"omitempty,max=50" example:"MOBILEAPP"`
	Description *string `json:"description,omitempty"`
}

type UpdateProjectDTO struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Identifier  *string `json:"identifier,omitempty" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty"`
}
