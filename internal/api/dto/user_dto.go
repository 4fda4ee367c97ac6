package dto

import "github.com/helpdesk/sla-ticket-service/internal/domain"

// CreateUserRequest payload.
type CreateUserRequest struct {
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserResponse representation.
type UserResponse struct {
	ID     int64             `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
}
