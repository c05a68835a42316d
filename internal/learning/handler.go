package learning

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/pkg/handlers"
	"github.com/curiolabs/curio/pkg/routes"
)

// Handler provides HTTP endpoints for feedback submission, insight
// inspection, and adjustment management.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "learning"),
	}
}

// EffectivenessCommand carries the signed delta applied to an adjustment's
// effectiveness score.
type EffectivenessCommand struct {
	Delta float64 `json:"delta"`
}

// Routes returns the route group definition for learning endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/learning",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/feedback/user", Handler: h.UserCorrection},
			{Method: "POST", Pattern: "/feedback/expert", Handler: h.ExpertCorrection},
			{Method: "POST", Pattern: "/feedback/sale", Handler: h.SaleOutcome},
			{Method: "POST", Pattern: "/feedback/ground-truth", Handler: h.GroundTruth},
			{Method: "GET", Pattern: "/insights", Handler: h.Insights},
			{Method: "GET", Pattern: "/stats", Handler: h.Stats},
			{Method: "GET", Pattern: "/report", Handler: h.Report},
			{Method: "GET", Pattern: "/export", Handler: h.ExportState},
			{Method: "GET", Pattern: "/adjustments", Handler: h.Adjustments},
			{Method: "POST", Pattern: "/adjustments", Handler: h.CreateAdjustment},
			{Method: "POST", Pattern: "/adjustments/{id}/effectiveness", Handler: h.UpdateEffectiveness},
			{Method: "POST", Pattern: "/adjustments/{id}/deactivate", Handler: h.Deactivate},
		},
	}
}

// UserCorrection records a correction submitted by an end user.
func (h *Handler) UserCorrection(w http.ResponseWriter, r *http.Request) {
	var cmd CorrectionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordUserCorrection(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ExpertCorrection records a correction submitted by a verified expert.
func (h *Handler) ExpertCorrection(w http.ResponseWriter, r *http.Request) {
	var cmd CorrectionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordExpertCorrection(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// SaleOutcome records an actual sale result for a predicted item.
func (h *Handler) SaleOutcome(w http.ResponseWriter, r *http.Request) {
	var cmd SaleOutcomeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordSaleOutcome(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// GroundTruth records a verified-truth result for one predicted field.
func (h *Handler) GroundTruth(w http.ResponseWriter, r *http.Request) {
	var cmd GroundTruthCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordGroundTruth(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Insights returns all derived insights, highest severity first.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.sys.Insights(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, insights)
}

// Stats returns summary statistics over the learning state.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// Report returns the accuracy breakdown by source and field.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.sys.AccuracyReport(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// ExportState returns a full snapshot of the learning state.
func (h *Handler) ExportState(w http.ResponseWriter, r *http.Request) {
	export, err := h.sys.Export(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, export)
}

// Adjustments lists prompt adjustments. Pass active=true to return only
// active ones.
func (h *Handler) Adjustments(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))

	adjustments, err := h.sys.Adjustments(r.Context(), activeOnly)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, adjustments)
}

// CreateAdjustment creates a new active prompt adjustment.
func (h *Handler) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var cmd AdjustmentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	adj, err := h.sys.CreateAdjustment(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, adj)
}

// UpdateEffectiveness applies a signed delta to an adjustment's
// effectiveness score.
func (h *Handler) UpdateEffectiveness(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrAdjustmentNotFound)
		return
	}

	var cmd EffectivenessCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	adj, err := h.sys.UpdateAdjustmentEffectiveness(r.Context(), id, cmd.Delta)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, adj)
}

// Deactivate turns an adjustment off.
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrAdjustmentNotFound)
		return
	}

	adj, err := h.sys.DeactivateAdjustment(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, adj)
}
