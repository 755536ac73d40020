package user

type CreateUserDTO struct {
	Name      string  `json:"name" binding:"required,max=255" example:"Jane Doe"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email" example:"jane@example.com"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url"`
	Color     *string `json:"color,omitempty" example:"#3B82F6"`
}

type UpdateUserDTO struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url"`
	Color     *string `json:"color,omitempty"`
}
