package profile

type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	PositionID string `json:"position_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName   string  `json:"full_name" binding:"required"`
	Department *string `json:"department"`
	PositionID *string `json:"position_id" binding:"omitempty,uuid"`
}
