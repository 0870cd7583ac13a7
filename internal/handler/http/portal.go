package http

import (
	"net/http"

	"github.com/payrollweb/payroll-backend-go/internal/domain/portal"
	"github.com/payrollweb/payroll-backend-go/internal/handler/http/response"
)

type PortalHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	MySalary(w http.ResponseWriter, r *http.Request)
}

type portalHandlerImpl struct {
	portalService portal.PortalService
}

func NewPortalHandler(portalService portal.PortalService) PortalHandler {
	return &portalHandlerImpl{
		portalService: portalService,
	}
}

// Dashboard implements PortalHandler.
func (h *portalHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.portalService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyAttendance implements PortalHandler.
func (h *portalHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.portalService.MyAttendance(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MySalary implements PortalHandler.
func (h *portalHandlerImpl) MySalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.portalService.MySalary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
