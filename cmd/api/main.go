package main

import (
	"io"
	"log"
	"os"

	"github.com/AdithyahNair/Prefer/internal/config"
	"github.com/AdithyahNair/Prefer/internal/llm"
	"github.com/AdithyahNair/Prefer/internal/logging"
	"github.com/AdithyahNair/Prefer/internal/maps"
	"github.com/AdithyahNair/Prefer/internal/repository/kvstore"
	"github.com/AdithyahNair/Prefer/internal/service"
	transport "github.com/AdithyahNair/Prefer/internal/transport/http"
	"github.com/AdithyahNair/Prefer/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		shipper, err := logging.NewShipper(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: log shipping disabled: %v", err)
		} else {
			defer shipper.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, shipper))
		}
	}

	store, err := kvstore.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	credentials := kvstore.NewCredentialRepo(store)
	profiles := kvstore.NewProfileRepo(store)
	sessions := kvstore.NewSessionRepo(store)
	trips := kvstore.NewTripRepo(store)
	settings := kvstore.NewSettingsRepo(store)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	authSvc := service.NewAuthService(credentials, profiles, sessions, jwtManager)
	profileSvc := service.NewProfileService(profiles)
	settingsSvc := service.NewSettingsService(settings, cfg.GoogleMapsAPIKey)

	mapsOpts := []maps.Option{maps.WithTimeout(cfg.MapsTimeout)}
	if cfg.MapsBaseURL != "" {
		mapsOpts = append(mapsOpts, maps.WithBaseURL(cfg.MapsBaseURL))
	}
	mapsClient := maps.NewClient(settingsSvc.MapsAPIKey, mapsOpts...)

	geoOpts := []maps.Option{maps.WithTimeout(cfg.GeolocationTimeout)}
	if cfg.MapsBaseURL != "" {
		geoOpts = append(geoOpts, maps.WithBaseURL(cfg.MapsBaseURL))
	}
	geocoder := maps.NewClient(settingsSvc.MapsAPIKey, geoOpts...)

	locationSvc := service.NewLocationService(geocoder)
	tripSvc := service.NewTripService(trips)

	completer := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.LLMTimeout,
	})
	plannerSvc := service.NewPlannerService(completer, mapsClient, trips, profiles)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e)
	transport.RegisterAuth(e, authSvc)
	transport.RegisterProfile(e, authSvc, profileSvc)
	transport.RegisterTrips(e, authSvc, plannerSvc, tripSvc, locationSvc)
	transport.RegisterSettings(e, authSvc, settingsSvc)
	transport.RegisterDestinations(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
