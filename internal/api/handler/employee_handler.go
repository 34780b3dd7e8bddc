package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/core/ports"
)

// EmployeeHandler exposes the employee administration endpoints. All
// mutating routes are admin-gated in the router.
type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /create-employee.
//
// @Summary      Create an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /create-employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
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

	if _, err := h.employeeService.Create(c.Request().Context(), userID, toEmployeeUpdate(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employeeResponse{Success: true, Msg: "Employee created successfully"})
}

// List handles GET /get-employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  employeeListResponse
// @Router       /get-employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeListResponse{Success: true, Data: employees})
}

// Get handles GET /get-employee/:id.
//
// @Summary      Get one employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /get-employee/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.employeeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse{Success: true, Data: employee})
}

// Update handles PUT /update-employee/:id.
//
// @Summary      Update an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      404   {object}  map[string]string
// @Router       /update-employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	employee, err := h.employeeService.Update(c.Request().Context(), c.Param("id"), toEmployeeUpdate(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employeeResponse{Success: true, Data: employee})
}

// Delete handles DELETE /delete-employee/:id.
//
// @Summary      Delete an employee record
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /delete-employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse{Success: true, Msg: "Employee deleted successfully"})
}

func toEmployeeUpdate(r employeeRequest) ports.EmployeeUpdate {
	return ports.EmployeeUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Mobile:      r.Mobile,
		Designation: r.Designation,
		Gender:      r.Gender,
		Courses:     r.Courses,
		Image:       r.Image,
	}
}
