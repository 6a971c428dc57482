package position

type CreatePositionRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePositionRequest struct {
	Name string `json:"name" binding:"required"`
}

type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
