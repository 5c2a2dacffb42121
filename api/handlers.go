/*
handlers.go - HTTP API handlers for the curve renderer

PURPOSE:
  Exposes plan storage and curve rendering via REST. Handles HTTP
  request/response and JSON serialization, and delegates to the curve,
  scene, and svg packages. The API is the "owns config, triggers recompute"
  host: every render call re-evaluates from the current config.

ENDPOINTS:
  Plans:
    GET    /api/plans                  List stored plans
    POST   /api/plans                  Create/update a plan from JSON config
    GET    /api/plans/{id}             Get a plan
    DELETE /api/plans/{id}             Delete a plan
    GET    /api/plans/{id}/scene       Evaluate + build, return scene JSON
    GET    /api/plans/{id}/curve.svg   Evaluate + build + render SVG

  Transient:
    POST   /api/render                 One-shot render, scene JSON
    POST   /api/render.svg             One-shot render, SVG

ERROR HANDLING:
  - 400: Malformed config on the strict plan-creation path
  - 404: Unknown plan id
  - 500: Storage errors
  Render paths are lenient: a stored config that no longer parses renders
  as an empty degenerate chart instead of failing (matching the factory's
  lenient mode).

SECURITY NOTE:
  No authentication. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/comp-curve/curve"
	"github.com/warp/comp-curve/factory"
	"github.com/warp/comp-curve/scene"
	"github.com/warp/comp-curve/store/sqlite"
	"github.com/warp/comp-curve/svg"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Factory *factory.PlanFactory
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewPlanFactory(),
	}
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// ListPlans returns all stored plans.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListPlans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list plans", err)
		return
	}

	dtos := make([]PlanDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, h.toPlanDTO(rec))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePlan creates or updates a plan from its JSON config. This is the
// strict parse path: malformed configs are rejected.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Config.ID == "" {
		writeError(w, http.StatusBadRequest, "Plan id is required", nil)
		return
	}

	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid plan config", err)
		return
	}
	if _, err := h.Factory.ParsePlan(string(configJSON)); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid plan config", err)
		return
	}

	rec := sqlite.PlanRecord{
		ID:         req.Config.ID,
		Name:       req.Config.Name,
		ConfigJSON: string(configJSON),
	}
	if err := h.Store.SavePlan(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save plan", err)
		return
	}

	saved, err := h.Store.GetPlan(r.Context(), rec.ID)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "Failed to load saved plan", err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toPlanDTO(*saved))
}

// GetPlan returns a single plan.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.toPlanDTO(*rec))
}

// DeletePlan removes a plan.
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.Store.DeletePlan(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete plan", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Plan not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RENDER HANDLERS
// =============================================================================

// GetPlanScene evaluates a stored plan and returns the scene as JSON.
func (h *Handler) GetPlanScene(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	plan := h.Factory.ParsePlanLenient(rec.ConfigJSON)
	writeJSON(w, http.StatusOK, h.renderCurveDTO(plan))
}

// GetPlanSVG evaluates a stored plan and returns the rendered SVG.
func (h *Handler) GetPlanSVG(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	plan := h.Factory.ParsePlanLenient(rec.ConfigJSON)
	writeSVG(w, renderSVG(plan))
}

// RenderScene is the one-shot transient render returning scene JSON.
// Nothing is stored; the lenient parse keeps interactive editing alive.
func (h *Handler) RenderScene(w http.ResponseWriter, r *http.Request) {
	plan := h.decodeTransient(r)
	writeJSON(w, http.StatusOK, h.renderCurveDTO(plan))
}

// RenderSVG is the one-shot transient render returning SVG.
func (h *Handler) RenderSVG(w http.ResponseWriter, r *http.Request) {
	plan := h.decodeTransient(r)
	writeSVG(w, renderSVG(plan))
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) lookupPlan(w http.ResponseWriter, r *http.Request) (*sqlite.PlanRecord, bool) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return nil, false
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Plan not found", nil)
		return nil, false
	}
	return rec, true
}

// decodeTransient reads a RenderRequest body leniently: any failure yields
// an empty plan that renders a degenerate chart.
func (h *Handler) decodeTransient(r *http.Request) *factory.Plan {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return h.Factory.ParsePlanLenient("")
	}
	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		return h.Factory.ParsePlanLenient("")
	}
	return h.Factory.ParsePlanLenient(string(configJSON))
}

func (h *Handler) renderCurveDTO(plan *factory.Plan) CurveDTO {
	ds := curve.Evaluate(plan.Bands)

	points := make([]PointDTO, 0, len(ds.Points))
	for _, p := range ds.Points {
		points = append(points, PointDTO{
			Attainment: p.Attainment.InexactFloat64(),
			Payout:     p.Payout.InexactFloat64(),
		})
	}

	return CurveDTO{
		Points: points,
		Scene:  scene.Build(ds, plan.Bands, plan.Config),
	}
}

func renderSVG(plan *factory.Plan) string {
	ds := curve.Evaluate(plan.Bands)
	return svg.Render(scene.Build(ds, plan.Bands, plan.Config))
}

func (h *Handler) toPlanDTO(rec sqlite.PlanRecord) PlanDTO {
	plan := h.Factory.ParsePlanLenient(rec.ConfigJSON)
	return PlanDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Config:    h.Factory.ToJSON(plan),
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeSVG(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
