package http

import (
	"net/http"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/analytics"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetAnalytics implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentStats implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetDepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
