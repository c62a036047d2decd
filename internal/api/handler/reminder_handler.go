package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/tasknest/internal/api/metrics"
	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
)

// ReminderHandler handles HTTP requests for reminder operations. The guard
// behaviour matches TodoHandler; reminders only add scheduling fields.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

type createReminderRequest struct {
	Text     string     `json:"text" validate:"required"`
	Time     string     `json:"time" validate:"required"`
	DueDate  *time.Time `json:"due_date"`
	Category string     `json:"category"`
}

type updateReminderRequest struct {
	Text     *string    `json:"text"`
	Time     *string    `json:"time"`
	DueDate  *time.Time `json:"due_date"`
	Category *string    `json:"category"`
}

// List returns the caller's visible reminders, newest first.
//
// @Summary      List reminders
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Reminder
// @Failure      401  {object}  map[string]string
// @Router       /reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	reminders, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminders)
}

// ListGrouped returns the caller's reminders bucketed into Today, Tomorrow,
// and Upcoming by due date. Pure presentation grouping.
//
// @Summary      List reminders grouped by due date
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ReminderGroups
// @Failure      401  {object}  map[string]string
// @Router       /reminders/grouped [get]
func (h *ReminderHandler) ListGrouped(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	reminders, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.GroupByDueDate(reminders, time.Now()))
}

// Create adds a new reminder owned by the caller. Due date defaults to now
// and category to "Personal" when omitted.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReminderRequest  true  "Reminder details"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  map[string]string
// @Router       /reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CreateReminderInput{
		Text:     req.Text,
		Time:     req.Time,
		Category: req.Category,
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	reminder, err := h.service.Create(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(domain.ResourceReminder).Inc()
	return c.JSON(http.StatusCreated, reminder)
}

// Update merges the provided fields into a reminder.
//
// @Summary      Update a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Reminder id"
// @Param        body  body      updateReminderRequest  true  "Fields to update"
// @Success      200   {object}  domain.Reminder
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reminders/{id} [patch]
func (h *ReminderHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	reminder, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateReminderInput{
		Text:     req.Text,
		Time:     req.Time,
		DueDate:  req.DueDate,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminder)
}

// Toggle flips the completed flag of a reminder.
//
// @Summary      Toggle a reminder's completed flag
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Reminder id"
// @Success      200  {object}  domain.Reminder
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reminders/{id}/toggle [patch]
func (h *ReminderHandler) Toggle(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	reminder, err := h.service.Toggle(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminder)
}

// Delete removes a reminder.
//
// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Reminder id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: true})
}
