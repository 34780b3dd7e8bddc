package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/domain"
	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

// RequestHandler exposes the user-request workflow endpoints.
type RequestHandler struct {
	requestService ports.RequestService
}

func NewRequestHandler(requestService ports.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Submit handles POST /requests.
//
// @Summary      Submit a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  domain.Request
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	created, err := h.requestService.Submit(c.Request().Context(), userID, req.Type, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// ListOwn handles GET /user-requests — the caller's own requests.
//
// @Summary      List the caller's requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  requestListResponse
// @Router       /user-requests [get]
func (h *RequestHandler) ListOwn(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.requestService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestListResponse{Success: true, Data: requests})
}

// ListAll handles GET /admin-requests — every request, admin only.
//
// @Summary      List all requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  requestListResponse
// @Router       /admin-requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	requests, err := h.requestService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestListResponse{Success: true, Data: requests})
}

// UpdateStatus handles PUT /status/:id — admin review of a request.
//
// @Summary      Update a request's status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Request ID"
// @Param        body  body      updateStatusRequest  true  "New status and feedback"
// @Success      200   {object}  updateStatusResponse
// @Failure      404   {object}  map[string]string
// @Router       /status/{id} [put]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.requestService.UpdateStatus(c.Request().Context(), c.Param("id"),
		domain.RequestStatus(req.Status), req.FeedbackMessage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateStatusResponse{
		Message:        "Request updated successfully",
		UpdatedRequest: updated,
	})
}

// Delete handles DELETE /delete-request/:id.
//
// @Summary      Delete a request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /delete-request/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	if err := h.requestService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Request deleted successfully"})
}
