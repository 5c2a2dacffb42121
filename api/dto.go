/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the internal
  domain model from the external contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - factory/plan.go: PlanJSON schema embedded in plan payloads
*/
package api

import (
	"github.com/warp/comp-curve/factory"
)

// PlanDTO represents a stored plan in API responses.
type PlanDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Config    factory.PlanJSON `json:"config"`
	Version   int              `json:"version"`
	CreatedAt string           `json:"created_at,omitempty"`
	UpdatedAt string           `json:"updated_at,omitempty"`
}

// CreatePlanRequest is the request to create or update a plan.
type CreatePlanRequest struct {
	Config factory.PlanJSON `json:"config"`
}

// RenderRequest is a one-shot transient render: the config is not stored.
type RenderRequest struct {
	Config factory.PlanJSON `json:"config"`
}

// CurveDTO is the scene response: the evaluated boundary points plus the
// drawable primitives.
type CurveDTO struct {
	Points []PointDTO `json:"points"`
	Scene  any        `json:"scene"`
}

// PointDTO is one evaluated (attainment, payout) boundary point.
type PointDTO struct {
	Attainment float64 `json:"attainment"`
	Payout     float64 `json:"payout"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
