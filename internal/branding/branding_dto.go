package branding

import "time"

type UpdateBrandingRequest struct {
	LogoURL string `json:"logo_url" binding:"required,url"`
	AppName string `json:"app_name" binding:"required"`
}

type BrandingResponse struct {
	LogoURL   string    `json:"logo_url"`
	AppName   string    `json:"app_name"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
