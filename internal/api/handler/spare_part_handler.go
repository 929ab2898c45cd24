package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/ports"
)

// SparePartHandler serves the /parts inventory routes. Reads are open to any
// authenticated caller.
type SparePartHandler struct {
	svc ports.SparePartService
}

func NewSparePartHandler(svc ports.SparePartService) *SparePartHandler {
	return &SparePartHandler{svc: svc}
}

// List godoc
//
// @Summary      List spare parts
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /parts [get]
func (h *SparePartHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support kspare parts!", "parts": items})
}

// Get godoc
//
// @Summary      Get a spare part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Spare part ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  ErrorResponse
// @Router       /parts/{id} [get]
func (h *SparePartHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Spare part", "part": item})
}

// Create godoc
//
// @Summary      Create a spare part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSparePartRequest  true  "Spare part"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /parts [post]
func (h *SparePartHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createSparePartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), sess, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Spare part has been created successfully!", "newPart": created})
}

// Update godoc
//
// @Summary      Update a spare part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Spare part ID"
// @Param        body  body      updateSparePartRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /parts/{id} [put]
func (h *SparePartHandler) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateSparePartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.Update(c.Request().Context(), sess, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Spare part has been updated successfully!", "updatedPart": updated})
}

// Delete godoc
//
// @Summary      Delete a spare part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Spare part ID"
// @Success      202  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /parts/{id} [delete]
func (h *SparePartHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "The spare part has been deleted successfully!"})
}
