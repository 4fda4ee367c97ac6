package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk/sla-ticket-service/internal/api/dto"
	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// UsersHandler exposes the user directory. Users are created once and never
// deleted; roles are immutable, so there is no update endpoint.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// ListUsers GET /api/v1/users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListAll(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(items)
}

// GetUser GET /api/v1/users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(userResponse(user))
}

// CreateUser POST /api/v1/users.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}
	if !req.Role.Valid() {
		return apperrors.NewValidationError("role must be REPORTER or AGENT", map[string]any{
			"role": req.Role,
		})
	}
	status := req.Status
	if status == "" {
		status = domain.UserStatusActive
	}

	user := &domain.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: status,
	}
	if err := h.users.Create(c.UserContext(), user); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(userResponse(user))
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
