package analytics

import (
	"net/http"

	"github.com/2beens/stridesync/internal/activities"
	"github.com/2beens/stridesync/internal/telemetry/tracing"
	"github.com/2beens/stridesync/pkg"
)

type activitiesProvider interface {
	State() activities.State
}

// Handler serves derived stats over the currently synced activities
type Handler struct {
	provider activitiesProvider
}

func NewHandler(provider activitiesProvider) *Handler {
	return &Handler{
		provider: provider,
	}
}

func (h *Handler) HandleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.weeklyStats")
	defer span.End()

	pkg.SendJsonResponse(w, http.StatusOK, CalculateWeeklyStats(h.provider.State().Activities))
}

func (h *Handler) HandleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.monthlyStats")
	defer span.End()

	pkg.SendJsonResponse(w, http.StatusOK, CalculateMonthlyStats(h.provider.State().Activities))
}

func (h *Handler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.totals")
	defer span.End()

	pkg.SendJsonResponse(w, http.StatusOK, CalculateAggregateStats(h.provider.State().Activities))
}

func (h *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.streaks")
	defer span.End()

	pkg.SendJsonResponse(w, http.StatusOK, CalculateStreaks(h.provider.State().Activities))
}

func (h *Handler) HandlePaceTrends(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.paceTrends")
	defer span.End()

	trends := CalculatePaceTrends(h.provider.State().Activities)
	if trends == nil {
		trends = []PaceTrendPoint{}
	}
	pkg.SendJsonResponse(w, http.StatusOK, trends)
}
