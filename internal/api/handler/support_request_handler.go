package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/ports"
)

type SupportRequestHandler struct {
	requests ports.SupportRequestService
}

func NewSupportRequestHandler(requests ports.SupportRequestService) *SupportRequestHandler {
	return &SupportRequestHandler{requests: requests}
}

// List returns every support request. Admin only.
//
// @Summary      List support requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  ErrorResponse
// @Router       /request [get]
func (h *SupportRequestHandler) List(c echo.Context) error {
	reqs, err := h.requests.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support requests", "requests": reqs})
}

// Mine returns the caller's own support requests.
//
// @Summary      List my support requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /request/user [get]
func (h *SupportRequestHandler) Mine(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	reqs, err := h.requests.ListByUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "User support requests retrieved successfully.",
		"requests": reqs,
	})
}

// Get godoc
//
// @Summary      Get a support request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Support request ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  ErrorResponse
// @Router       /request/{id} [get]
func (h *SupportRequestHandler) Get(c echo.Context) error {
	req, err := h.requests.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support request", "request": req})
}

// History returns the audit trail of a support request. Admin only.
//
// @Summary      Support request history
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Support request ID"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /request/{id}/history [get]
func (h *SupportRequestHandler) History(c echo.Context) error {
	events, err := h.requests.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Support request history", "history": events})
}

// Create opens a support request owned by the caller.
//
// @Summary      Create a support request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSupportRequestRequest  true  "Support request"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Router       /request [post]
func (h *SupportRequestHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createSupportRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.requests.Create(c.Request().Context(), sess, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Support request has been created successfully!",
		"newRequest": created,
	})
}

// Update godoc
//
// @Summary      Update a support request
// @Description  Owners may edit the device and description. Status and quote are admin only.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Support request ID"
// @Param        body  body      updateSupportRequestRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /request/{id} [put]
func (h *SupportRequestHandler) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateSupportRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.requests.Update(c.Request().Context(), sess, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Support request has been updated successfully!",
		"updatedRequest": updated,
	})
}

// Delete godoc
//
// @Summary      Delete a support request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Support request ID"
// @Success      202  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /request/{id} [delete]
func (h *SupportRequestHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.requests.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "The user support request has been deleted successfully!"})
}
