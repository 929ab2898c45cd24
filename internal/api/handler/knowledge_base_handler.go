package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/ports"
)

type KnowledgeBaseHandler struct {
	svc ports.KnowledgeBaseService
}

func NewKnowledgeBaseHandler(svc ports.KnowledgeBaseService) *KnowledgeBaseHandler {
	return &KnowledgeBaseHandler{svc: svc}
}

// List returns every knowledge base article.
//
// @Summary      List knowledge bases
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /knowledge [get]
func (h *KnowledgeBaseHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support knowledge bases!", "knowledgeBases": items})
}

// Get godoc
//
// @Summary      Get a knowledge base article
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Knowledge base ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  ErrorResponse
// @Router       /knowledge/{id} [get]
func (h *KnowledgeBaseHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support knowledge base", "knowledgeBase": item})
}

// Create adds a troubleshooting article. Admin only. Symptoms and
// solutionSteps accept a JSON array or one newline separated string.
//
// @Summary      Create a knowledge base article
// @Tags         knowledge
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createKnowledgeBaseRequest  true  "Knowledge base article"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /knowledge [post]
func (h *KnowledgeBaseHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createKnowledgeBaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), sess, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Knowledge base has been created successfully!", "newKnowledgeBase": created})
}

// Update godoc
//
// @Summary      Update a knowledge base article
// @Tags         knowledge
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Knowledge base ID"
// @Param        body  body      updateKnowledgeBaseRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /knowledge/{id} [put]
func (h *KnowledgeBaseHandler) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateKnowledgeBaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.Update(c.Request().Context(), sess, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Knowledge base has been updated successfully!", "updatedKnowledgeBase": updated})
}

// Delete godoc
//
// @Summary      Delete a knowledge base article
// @Tags         knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Knowledge base ID"
// @Success      202  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /knowledge/{id} [delete]
func (h *KnowledgeBaseHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "The user support knowledge base has been deleted successfully!"})
}
