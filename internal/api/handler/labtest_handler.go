package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

// LabTestHandler serves the lab-tests page actions.
type LabTestHandler struct {
	service ports.LabTestService
}

func NewLabTestHandler(service ports.LabTestService) *LabTestHandler {
	return &LabTestHandler{service: service}
}

// Board handles GET /api/lab-tests.
//
// @Summary      Lab test board
// @Tags         lab-tests
// @Produce      json
// @Param        q    query     string  false  "Patient name or test type"
// @Success      200  {object}  ports.LabTestBoard
// @Failure      401  {object}  errorResponse
// @Router       /api/lab-tests [get]
func (h *LabTestHandler) Board(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	board, err := h.service.Board(c.Request().Context(), c.QueryParam("q"), id.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Get handles GET /api/lab-tests/:id.
//
// @Summary      Get a lab test
// @Tags         lab-tests
// @Produce      json
// @Param        id   path      string  true  "Lab test id"
// @Success      200  {object}  domain.LabTest
// @Failure      404  {object}  errorResponse
// @Router       /api/lab-tests/{id} [get]
func (h *LabTestHandler) Get(c echo.Context) error {
	test, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, test)
}

// Start handles POST /api/lab-tests/:id/start.
//
// @Summary      Start a lab test
// @Tags         lab-tests
// @Produce      json
// @Param        id   path      string  true  "Lab test id"
// @Success      200  {object}  domain.LabTest
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/lab-tests/{id}/start [post]
func (h *LabTestHandler) Start(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	test, err := h.service.Start(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, test)
}

// UploadResult handles POST /api/lab-tests/:id/result.
//
// @Summary      Upload a lab test result
// @Tags         lab-tests
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Lab test id"
// @Param        body  body      uploadResultRequest  true  "Result text"
// @Success      200   {object}  domain.LabTest
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/lab-tests/{id}/result [post]
func (h *LabTestHandler) UploadResult(c echo.Context) error {
	var req uploadResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	test, err := h.service.UploadResult(c.Request().Context(), c.Param("id"), req.Result, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, test)
}
