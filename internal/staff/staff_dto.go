package staff

type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PositionID string `json:"position_id,omitempty"`
	OfficeID   string `json:"office_id,omitempty"`
	Position   string `json:"position,omitempty"`
	Office     string `json:"office,omitempty"`
	CreatedAt  string `json:"created_at"`
}
