package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// UserHandler handles the user-management routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// userID parses and validates the :id path parameter.
func userID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("User ID must be a positive number")
	}
	return uint(id), nil
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No users found")
	}

	metrics.UserOperationsTotal.WithLabelValues("list").Inc()
	return c.JSON(http.StatusOK, listUsersResponse{Users: users, Count: len(users)})
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userEnvelope
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.UserOperationsTotal.WithLabelValues("get").Inc()
	return c.JSON(http.StatusOK, userEnvelope{User: user})
}

// Update handles PUT /api/users/:id. A user may update their own record;
// admins may update anyone. Only admins may change roles.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.empty() {
		return domain.NewValidationError("At least one field must be provided for update")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if identity.ID != id && identity.Role != domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to update this user")
	}
	if req.Role != nil && identity.Role != domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Only administrators can update user roles")
	}

	user, err := h.userService.Update(c.Request().Context(), id, ports.UserUpdates{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UserOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, userEnvelope{
		Message: "User updated successfully",
		User:    user,
	})
}

// Delete handles DELETE /api/users/:id. The admin-only rule is enforced by
// the RBAC middleware on the route.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UserOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
