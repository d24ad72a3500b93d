package program

type Style string

const (
	StyleModern      Style = "modern"
	StyleTraditional Style = "traditional"
	StyleNeutral     Style = "neutral"
)

// HousingProgram is the structured set of housing requirements derived from
// a free-text prompt. It is produced once by Extract and consumed read-only
// by the partitioner.
type HousingProgram struct {
	Bedrooms  int   `json:"bedrooms"`
	Bathrooms int   `json:"bathrooms"`
	Office    bool  `json:"office"`
	OpenPlan  bool  `json:"open_plan"`
	Style     Style `json:"style"`
}
