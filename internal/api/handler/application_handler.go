package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bewerbungsportal/review-portal/internal/core/ports"
)

// ApplicationHandler serves the applicant form and the admin review list.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Submit handles POST /v1/applications, the applicant form submit. The
// submitter is taken from the session, never from the payload.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application form"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), toSubmitInput(session.UserID, req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toApplicationResponse(ports.ApplicationSummary{
		Application: *created,
		Username:    session.Username,
	}))
}

// List handles GET /v1/admin/applications.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listApplicationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	items, err := h.service.ListApplications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListApplicationsResponse(items))
}

// Get handles GET /v1/admin/applications/:id, the dashboard detail view.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetApplication(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(*detail))
}

// UpdateStatus handles PATCH /v1/admin/applications/:id/status. Any status
// may transition to any other.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                             true  "Application id"
// @Param        body  body      updateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  applicationResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	detail, err := h.service.GetApplication(c.Request().Context(), updated.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(*detail))
}
