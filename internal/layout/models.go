package layout

// Wall is the fixed wall thickness in meters separating adjacent rooms.
const Wall = 0.1

// RoomHeight is the fixed interior height in meters of every generated room.
const RoomHeight = 3.0

// Room is an axis-aligned rectangular room. X and Y locate the bottom-left
// corner in meters with the origin at the footprint's bottom-left corner;
// Z is 0 for the modeled ground floor.
type Room struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Footprint is the overall rectangular building outline.
type Footprint struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}
