package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/metinatakli/show-reservation-engine/internal/catalog"
	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/metinatakli/show-reservation-engine/internal/payment"
	"github.com/metinatakli/show-reservation-engine/internal/reservation"
	"github.com/metinatakli/show-reservation-engine/internal/store"
	appvalidator "github.com/metinatakli/show-reservation-engine/internal/validator"
	"github.com/metinatakli/show-reservation-engine/internal/vcs"
)

var (
	version = vcs.Version()
)

// ReservationService is the slice of the reservation façade the HTTP
// handlers consume.
type ReservationService interface {
	Reserve(ctx context.Context, showID, userName string, seatIDs []string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	BookingsByUser(userName string) []*domain.Booking
	SeatMap(showID string) (*domain.Show, []domain.SeatStatus, error)
	Shows() []*domain.Show
	Movies() []*domain.Movie
	Movie(movieID string) (*domain.Movie, bool)
	Save(ctx context.Context) error
}

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	service   ReservationService
}

type config struct {
	port        int
	env         string
	dataFile    string
	catalogFile string
}

func Run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.dataFile, "data-file", envString("DATA_FILE", "bookings.json"), "Durable booking record file")
	flag.StringVar(&cfg.catalogFile, "catalog-file", envString("CATALOG_FILE", ""), "Catalog definition file (built-in sample data when empty)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shows, err := newCatalog(cfg.catalogFile)
	if err != nil {
		logger.Error("could not build catalog", "error", err)
		return err
	}

	service := reservation.NewService(
		shows,
		store.NewFileStore(cfg.dataFile),
		payment.NewSimulator(logger),
		logger,
	)

	if err := service.Load(context.Background()); err != nil {
		// conflicting seat claims in the durable record; refusing to pick
		// a winner is the whole point, so do not start
		logger.Error("booking record failed integrity check", "error", err)
		return err
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		service:   service,
	}

	return app.run()
}

func newCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	cfg, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return catalog.New(cfg)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			shutdownError <- err
			return
		}

		// flush the ledger once more on the way out
		if err := app.service.Save(ctx); err != nil {
			app.logger.Warn("could not save booking records on shutdown", "error", err)
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)
	r.Get("/movies", app.GetMovies)
	r.Get("/shows", app.GetShows)
	r.Get("/shows/{showID}/seats", app.GetSeatMap)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/", app.GetBookingsOfUser)
		r.Delete("/{bookingID}", app.CancelBooking)
	})

	return r
}
