// README: Entry point; loads config, wires collaborators, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/ai"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/config"
	httptransport "github.com/Seymakarakurt/TravelGuideWithoutKi/internal/http"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/infra"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/nlu"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/dialogue"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/turnlog"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var flightCache flights.Cache = flights.NewMemoryCache()
	var hotelCache hotels.Cache = hotels.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		flightCache = flights.NewRedisCache(redisClient)
		hotelCache = hotels.NewRedisCache(redisClient)
	}

	var turnLogger dialogue.TurnLogger
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		turnLogger = turnlog.NewStore(dbPool)
	}

	var geocoder weather.Geocoder
	if cfg.Maps.APIKey != "" {
		geocoder, err = weather.NewMapsGeocoder(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("geocoder init: %v", err)
		}
	}

	var llm dialogue.AnswerProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		llm = gemini
	}

	engine := dialogue.NewEngine(dialogue.Config{
		Sessions:      session.NewMemoryStore(session.ParseGoal(cfg.Dialogue.Goal)),
		NLU:           nlu.NewClassifier(),
		Flights:       flights.NewService(flightCache),
		Hotels:        hotels.NewService(hotelCache),
		Weather:       weather.NewService(cfg.Weather.APIKey, geocoder),
		AI:            llm,
		Turnlog:       turnLogger,
		DefaultOrigin: cfg.Dialogue.DefaultOrigin,
		SearchTimeout: time.Duration(cfg.Dialogue.SearchTimeoutSeconds) * time.Second,
		HistoryLimit:  cfg.Dialogue.HistoryLimit,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(engine)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("travelguide: listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
