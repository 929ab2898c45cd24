package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/ports"
)

type JobHandler struct {
	svc ports.JobService
}

func NewJobHandler(svc ports.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// List returns every scheduled repair job.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /job [get]
func (h *JobHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Jobs!", "jobs": items})
}

// Get godoc
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  ErrorResponse
// @Router       /job/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User support job", "job": item})
}

// Create schedules a job against a support request. Admin only.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /job [post]
func (h *JobHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), sess, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Job has been created successfully!", "newJob": created})
}

// Update reschedules, reassigns or completes a job. Setting completedAt marks
// the job as done.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /job/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.Update(c.Request().Context(), sess, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Job has been updated successfully!", "updatedJob": updated})
}

// Delete godoc
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      202  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /job/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "The job has been deleted successfully!"})
}
