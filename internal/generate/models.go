package generate

import (
	"time"

	"floorplan-server/internal/layout"
	"floorplan-server/internal/program"
	"floorplan-server/internal/shared/errors"

	"github.com/google/uuid"
)

// Public API bounds for footprint dimensions (exclusive) and floor count.
const (
	MinDimension = 4.0
	MaxDimension = 200.0
	MinFloors    = 1
	MaxFloors    = 3
)

// LayoutNote accompanies every generated layout.
const LayoutNote = "Procedurally generated layout (conceptual). Units in meters."

// Request is a layout generation request. Absent fields are filled with the
// configured defaults before validation. Floors is accepted and validated
// but has no effect on the generated geometry.
type Request struct {
	Prompt string  `json:"prompt"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Floors int     `json:"floors"`
}

// Validate checks the numeric bounds. It must pass before the layout
// pipeline runs; the partitioner does not re-validate.
func (r Request) Validate() error {
	if r.Width <= MinDimension || r.Width >= MaxDimension {
		return errors.Validationf("width must be greater than %g and less than %g meters, got %g",
			MinDimension, MaxDimension, r.Width)
	}
	if r.Depth <= MinDimension || r.Depth >= MaxDimension {
		return errors.Validationf("depth must be greater than %g and less than %g meters, got %g",
			MinDimension, MaxDimension, r.Depth)
	}
	if r.Floors < MinFloors || r.Floors > MaxFloors {
		return errors.Validationf("floors must be between %d and %d, got %d",
			MinFloors, MaxFloors, r.Floors)
	}
	return nil
}

type Meta struct {
	Program program.HousingProgram `json:"program"`
	Note    string                 `json:"note"`
}

// Result is a complete generated layout as returned to clients.
type Result struct {
	Footprint layout.Footprint `json:"footprint"`
	Rooms     []layout.Room    `json:"rooms"`
	Meta      Meta             `json:"meta"`
}

// Record is a persisted generation, available when the database is
// configured.
type Record struct {
	ID        uuid.UUID              `json:"id"`
	Prompt    string                 `json:"prompt"`
	Width     float64                `json:"width"`
	Depth     float64                `json:"depth"`
	Floors    int                    `json:"floors"`
	Program   program.HousingProgram `json:"program"`
	RoomCount int                    `json:"room_count"`
	CreatedAt time.Time              `json:"created_at"`
}
