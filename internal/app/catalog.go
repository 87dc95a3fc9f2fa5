package app

import (
	"net/http"

	"github.com/metinatakli/show-reservation-engine/api"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies := app.service.Movies()

	resp := api.MovieListResponse{Movies: make([]api.Movie, len(movies))}
	for i, m := range movies {
		resp.Movies[i] = api.Movie{
			ID:       m.ID,
			Title:    m.Title,
			Language: m.Language,
			Duration: m.Duration,
			Genre:    m.Genre,
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShows(w http.ResponseWriter, r *http.Request) {
	shows := app.service.Shows()

	resp := api.ShowListResponse{Shows: make([]api.Show, len(shows))}
	for i, s := range shows {
		resp.Shows[i] = toShowResponse(app.service, s)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowResponse(service ReservationService, show *domain.Show) api.Show {
	resp := api.Show{
		ID:             show.ID,
		MovieID:        show.MovieID,
		StartTime:      show.StartTime,
		Screen:         show.Screen,
		PricePerSeat:   show.PricePerSeat,
		AvailableSeats: show.AvailableSeats(),
		TotalSeats:     show.Seats.Size(),
	}

	if movie, ok := service.Movie(show.MovieID); ok {
		resp.MovieTitle = movie.Title
	}

	return resp
}
