package layout

import (
	"fmt"
	"math"

	"floorplan-server/internal/program"
)

// Partition splits a rectangular footprint into rectangular rooms according
// to the extracted housing program. Placement is strictly sequential and
// order-dependent: a front zone holds Living, Kitchen and Dining, the back
// zone holds a row-major bedroom grid, bathrooms stack along the back-right
// edge, and an optional office sits at the front-right. Output order is
// Living, Kitchen, Dining, Bedroom 1..N, Bath 1..M, then Office if present.
//
// The caller is responsible for validating width and depth. Extreme ratios
// of room counts to footprint size can produce degenerate (zero or negative)
// room dimensions; these are passed through unchanged rather than clamped.
func Partition(width, depth float64, p program.HousingProgram) []Room {
	rooms := make([]Room, 0, 4+p.Bedrooms+p.Bathrooms)

	// Front strip reserved for living/kitchen/dining. Open-plan layouts
	// take a deeper strip so the merged zone reads as one space.
	frontDepth := depth * 0.35
	if p.OpenPlan {
		frontDepth = depth * 0.45
	}

	rooms = append(rooms, Room{
		Name:   "Living",
		X:      Wall,
		Y:      Wall,
		Width:  width - 2*Wall,
		Depth:  frontDepth - 2*Wall,
		Height: RoomHeight,
	})

	if p.OpenPlan {
		// Kitchen and dining side by side across the full front depth.
		kitchenWidth := (width - 3*Wall) * 0.4
		rooms = append(rooms,
			Room{
				Name:   "Kitchen",
				X:      Wall,
				Y:      Wall,
				Width:  kitchenWidth,
				Depth:  frontDepth - 2*Wall,
				Height: RoomHeight,
			},
			Room{
				Name:   "Dining",
				X:      Wall + kitchenWidth + Wall,
				Y:      Wall,
				Width:  width - (kitchenWidth + 3*Wall),
				Depth:  frontDepth - 2*Wall,
				Height: RoomHeight,
			},
		)
	} else {
		// Closed kitchen on a shallower band, dining beside it.
		kitchenDepth := frontDepth * 0.55
		kitchenWidth := (width - 3*Wall) * 0.5
		rooms = append(rooms,
			Room{
				Name:   "Kitchen",
				X:      Wall,
				Y:      Wall,
				Width:  kitchenWidth,
				Depth:  kitchenDepth - Wall,
				Height: RoomHeight,
			},
			Room{
				Name:   "Dining",
				X:      Wall + kitchenWidth + Wall,
				Y:      Wall,
				Width:  width - (kitchenWidth + 3*Wall),
				Depth:  kitchenDepth - Wall,
				Height: RoomHeight,
			},
		)
	}

	// Back zone: bedrooms on a fixed grid, filled row by row. Rows are
	// sized so the grid always has at least as many cells as bedrooms.
	remainingDepth := depth - frontDepth - Wall
	rows := (p.Bedrooms + 1) / 2
	if rows < 1 {
		rows = 1
	}
	cols := 1
	if p.Bedrooms >= 2 {
		cols = 2
	}
	cellWidth := (width - float64(cols+1)*Wall) / float64(cols)
	cellDepth := (remainingDepth - float64(rows+1)*Wall) / float64(rows)

	placed := 0
	y := frontDepth + Wall
	for row := 0; row < rows; row++ {
		x := Wall
		for col := 0; col < cols && placed < p.Bedrooms; col++ {
			placed++
			rooms = append(rooms, Room{
				Name:   fmt.Sprintf("Bedroom %d", placed),
				X:      x,
				Y:      y,
				Width:  cellWidth,
				Depth:  cellDepth,
				Height: RoomHeight,
			})
			x += cellWidth + Wall
		}
		y += cellDepth + Wall
	}

	// Bathrooms stack along the back-right edge.
	bathWidth := math.Min(2.2, cellWidth*0.6)
	bathDepth := math.Min(2.4, Wall+cellDepth*0.6)
	for i := 0; i < p.Bathrooms; i++ {
		rooms = append(rooms, Room{
			Name:   fmt.Sprintf("Bath %d", i+1),
			X:      width - bathWidth - Wall,
			Y:      frontDepth + Wall + float64(i)*(bathDepth+Wall),
			Width:  bathWidth,
			Depth:  bathDepth,
			Height: RoomHeight,
		})
	}

	// Optional office near the entrance, front-right.
	if p.Office {
		officeWidth := math.Min(3.0, (width-3*Wall)*0.35)
		officeDepth := math.Min(3.0, (frontDepth-3*Wall)*0.7)
		rooms = append(rooms, Room{
			Name:   "Office",
			X:      width - officeWidth - Wall,
			Y:      Wall,
			Width:  officeWidth,
			Depth:  officeDepth,
			Height: RoomHeight,
		})
	}

	return rooms
}
