package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

type TechnicianHandler struct {
	svc ports.TechnicianService
}

func NewTechnicianHandler(svc ports.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{svc: svc}
}

// List godoc
//
// @Summary      List technicians
// @Description  Technician names are free text; jobs reference them by name.
// @Tags         technicians
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /tech [get]
func (h *TechnicianHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Technicians!", "technicians": items})
}

// Get godoc
//
// @Summary      Get a technician
// @Tags         technicians
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  ErrorResponse
// @Router       /tech/{id} [get]
func (h *TechnicianHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Technician", "technician": item})
}

// Create godoc
//
// @Summary      Create a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      technicianRequest  true  "Technician"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /tech [post]
func (h *TechnicianHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req technicianRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), sess, domain.Technician{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Technician has been created successfully!", "newTechnician": created})
}

// Update godoc
//
// @Summary      Rename a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Technician ID"
// @Param        body  body      updateTechnicianRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /tech/{id} [put]
func (h *TechnicianHandler) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateTechnicianRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.Update(c.Request().Context(), sess, c.Param("id"), domain.TechnicianPatch{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Technician has been updated successfully!", "updatedTechnician": updated})
}

// Delete godoc
//
// @Summary      Delete a technician
// @Tags         technicians
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Technician ID"
// @Success      202  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tech/{id} [delete]
func (h *TechnicianHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "The technician has been deleted successfully!"})
}
