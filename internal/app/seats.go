package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
)

func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showID")

	show, seats, err := app.service.SeatMap(showID)
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		ShowID:   show.ID,
		Screen:   show.Screen,
		SeatRows: toSeatRows(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatRows(seats []domain.SeatStatus) []api.SeatRow {
	// Seats arrive in row-major creation order, so a row change shows up as
	// a change of the leading letter.
	var seatRows []api.SeatRow

	for _, s := range seats {
		row := s.ID[:1]

		if len(seatRows) == 0 || seatRows[len(seatRows)-1].Row != row {
			seatRows = append(seatRows, api.SeatRow{Row: row})
		}

		last := &seatRows[len(seatRows)-1]
		last.Seats = append(last.Seats, api.Seat{
			ID:        s.ID,
			Available: !s.Booked,
		})
	}

	return seatRows
}
