package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergington-activities/internal/delivery/http/helpers"
	"mergington-activities/internal/domain"
)

// Error detail strings returned to the frontend. These are part of the API
// contract and asserted by the frontend, so do not reword them.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student already signed up"
	detailActivityFull     = "Activity is full"
	detailNotRegistered    = "Student is not registered for this activity"
	detailEmailRequired    = "Email is required"
	detailInternalError    = "Internal server error"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with description, schedule, max_participants, and the current participants roster.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, detailInternalError)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, activities)
}

// SignUp godoc
// @Summary Sign a student up for an activity
// @Description Adds the student's email to the activity roster. Fails when the activity does not exist, the student is already signed up, or the activity is full.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name (URL-encoded)"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Student already signed up / Activity is full / Email is required"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) SignUp(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	message, err := c.Service.SignUp(r.Context(), activityName, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, message)
}

// Unregister godoc
// @Summary Unregister a student from an activity
// @Description Removes the student's email from the activity roster. Fails when the activity does not exist or the student is not registered.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name (URL-encoded)"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Student is not registered for this activity / Email is required"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	message, err := c.Service.Unregister(r.Context(), activityName, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, message)
}

// writeServiceError maps registry errors onto the status codes and detail
// strings of the API contract.
func (c *ActivityController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteDetail(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		helpers.WriteDetail(w, http.StatusBadRequest, detailAlreadySignedUp)
	case errors.Is(err, domain.ErrActivityFull):
		helpers.WriteDetail(w, http.StatusBadRequest, detailActivityFull)
	case errors.Is(err, domain.ErrNotRegistered):
		helpers.WriteDetail(w, http.StatusBadRequest, detailNotRegistered)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, detailInternalError)
	}
}
