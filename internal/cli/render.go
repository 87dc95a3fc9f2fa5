package cli

import (
	"fmt"
	"strings"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
)

// RenderSeatMap draws a seat grid as text, one line per row, with a column
// header and [O]/[X] markers for available and booked seats. Seats are
// expected in row-major order, as produced by SeatMap.Snapshot.
func RenderSeatMap(seats []domain.SeatStatus) string {
	if len(seats) == 0 {
		return "(no seats)\n"
	}

	var b strings.Builder

	b.WriteString("Seat Map: [O] available, [X] booked\n")

	cols := 0
	for _, s := range seats {
		if s.ID[0] != seats[0].ID[0] {
			break
		}
		cols++
	}

	b.WriteString("    ")
	for c := 1; c <= cols; c++ {
		fmt.Fprintf(&b, "%4d", c)
	}
	b.WriteString("\n")

	row := byte(0)
	for _, s := range seats {
		if s.ID[0] != row {
			if row != 0 {
				b.WriteString("\n")
			}
			row = s.ID[0]
			fmt.Fprintf(&b, "  %c ", row)
		}

		if s.Booked {
			b.WriteString(" [X]")
		} else {
			b.WriteString(" [O]")
		}
	}
	b.WriteString("\n")

	return b.String()
}
