package provisioning

import "doctrack/internal/staff"

type CreateUserRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	FullName   string  `json:"full_name" binding:"required"`
	Role       string  `json:"role" binding:"required,oneof=admin user"`
	Department *string `json:"department"`
}

type ProvisionedUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type CreateUserResponse struct {
	Message string          `json:"message"`
	User    ProvisionedUser `json:"user"`
}

type InviteStaffRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	PositionID *string `json:"position_id" binding:"omitempty,uuid"`
	OfficeID   *string `json:"office_id" binding:"omitempty,uuid"`
}

type InviteStaffResponse struct {
	Message string              `json:"message"`
	Staff   staff.StaffResponse `json:"staff"`
}

type VerifyStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6,numeric"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifiedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type VerifyStaffResponse struct {
	Message string       `json:"message"`
	User    VerifiedUser `json:"user"`
}

type DeleteUserResponse struct {
	Message string `json:"message"`
}
