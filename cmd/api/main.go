package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mmacedo-dev/bustrip/internal/booking"
	bookingInfra "github.com/mmacedo-dev/bustrip/internal/booking/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/config"
	"github.com/mmacedo-dev/bustrip/internal/monitoring"
	"github.com/mmacedo-dev/bustrip/internal/station"
	stationInfra "github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/travel"
	travelInfra "github.com/mmacedo-dev/bustrip/internal/travel/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/user"
	userInfra "github.com/mmacedo-dev/bustrip/internal/user/infrastructure"
	"github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
	zapAdapter "github.com/mmacedo-dev/bustrip/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		appLogger.Error(ctx, "error connecting to the database", map[string]interface{}{"error": err})
		panic(err)
	}

	stationRepo, err := stationInfra.NewGormBusStationRepository(db, appLogger)
	if err != nil {
		panic(err)
	}
	travelRepo, err := travelInfra.NewGormTravelRepository(db, appLogger)
	if err != nil {
		panic(err)
	}
	passengerRepo, err := bookingInfra.NewGormPassengerRepository(db, appLogger)
	if err != nil {
		panic(err)
	}
	userRepo, err := userInfra.NewGormUserRepository(db, appLogger)
	if err != nil {
		panic(err)
	}

	hasher := userInfra.NewBcryptHasher()
	tokens := userInfra.NewJWTTokenManager(cfg.JWTSecret)
	admin := userInfra.RequireAdmin(tokens)

	placesClient := stationInfra.NewGooglePlacesClient(cfg.GoogleAPIKey)
	routesClient := travelInfra.NewGoogleRoutesClient(cfg.GoogleAPIKey)

	// One event bus for the whole app; each slice registers its own handlers.
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](appLogger)

	stationSlice := station.NewBusStationSlice(stationRepo, placesClient, eventBus, appLogger, admin)
	travelSlice := travel.NewTravelSlice(travelRepo, stationRepo, routesClient, eventBus, appLogger, admin)
	bookingSlice := booking.NewBookingSlice(passengerRepo, travelRepo, userRepo, eventBus, appLogger, admin)
	userSlice := user.NewUserSlice(userRepo, hasher, tokens, eventBus, appLogger, admin)

	router := chi.NewRouter()
	router.Use(requestID)

	stationSlice.RegisterRoutes(router)
	travelSlice.RegisterRoutes(router)
	bookingSlice.RegisterRoutes(router)
	userSlice.RegisterRoutes(router)

	if cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", monitoring.Handler())
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "signal received", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "server starting", map[string]interface{}{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "error starting server", map[string]interface{}{"error": err})
		}
	}()

	<-ctx.Done()
	appLogger.Info(ctx, "shutting down server", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "error shutting down server", map[string]interface{}{"error": err})
	}

	appLogger.Info(context.Background(), "server stopped", nil)
}

// requestID tags every request with an ID the loggers echo on each entry.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(application.WithRequestID(r.Context(), id)))
	})
}
