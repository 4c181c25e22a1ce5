package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunchbox-ai/internal/middleware"
	"lunchbox-ai/pkg/response"
)

// CreatePlan godoc
// @Summary     Create a task plan
// @Description Turns a natural language request into a structured task plan with steps, category, priority, and due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createPlanReq true "Natural language task description"
// @Success     200 {object} createPlanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream AI providers unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/plan [POST]
func (h *handler) CreatePlan(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processCreatePlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreatePlan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreatePlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreatePlanResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks ordered by priority, due date, and recency.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/in_progress/completed)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task plan by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task plan by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// NextStep godoc
// @Summary     Get the next step
// @Description Returns the first uncompleted step of a task with progress info.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} nextStepResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/next-step [GET]
func (h *handler) NextStep(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.NextStep(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.NextStep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNextStepResp(output))
}

// CompleteStep godoc
// @Summary     Complete the current step
// @Description Marks the current step done, advances progress, and awards XP. Completing the final step completes the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeStepResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete-step [POST]
func (h *handler) CompleteStep(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.CompleteStep(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteStep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteStepResp(output))
}

// CompleteTask godoc
// @Summary     Complete a task
// @Description Marks the whole task completed regardless of remaining steps and awards XP.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.CompleteTask(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteTaskResp(output))
}

// Motivation godoc
// @Summary     Get a motivational message
// @Description Generates an encouraging message for a task in progress. Falls back to a canned message when AI providers are down.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} motivationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/motivation [GET]
func (h *handler) Motivation(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.Motivation(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Motivation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMotivationResp(output))
}

// Stats godoc
// @Summary     Get user stats
// @Description Returns the user's XP, level, streak, and completed task count.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// ExportCalendar godoc
// @Summary     Export tasks as iCalendar
// @Description Renders the user's dated tasks as a downloadable .ics file.
// @Tags        Calendar
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar document"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/export [GET]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	cal, err := h.uc.ExportCalendar(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lunchbox-tasks.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}
