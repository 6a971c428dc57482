package office

type CreateOfficeRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

type UpdateOfficeRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

type OfficeResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}
