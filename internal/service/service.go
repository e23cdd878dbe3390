package service

import (
	"context"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/components/assert"
	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/servicerecords"
)

// RecordsAPI is an abstraction over the lookup of service records, it is implemented
// by servicerecords.Service.
//
// note: fault injection point
type RecordsAPI interface {
	FindByPlayerAndGame(ctx context.Context, player string, gameId catalog.GameId) ([]servicerecords.ServiceRecord, bool)
	FindByPlayerAndMission(ctx context.Context, player string, gameId catalog.GameId, missionId int) (servicerecords.ServiceRecord, bool)
}

const (
	report_http_encode      = "http.encode"
	report_http_bad_request = "http.bad-request"
)

// PublicService serves the games, missions and service records as JSON.
type PublicService struct {
	records        RecordsAPI
	allowedOrigins []string
	tel            telemetry.API
}

type publicServiceConfig struct {
	allowedOrigins []string
	tel            telemetry.API
}

type PublicServiceOption func(cfg *publicServiceConfig)

func WithCustomTelemetryAPI(tel telemetry.API) PublicServiceOption {
	return func(cfg *publicServiceConfig) {
		cfg.tel = tel
	}
}

// WithAllowedOrigins sets the origins allowed by CORS, by default every origin is allowed.
func WithAllowedOrigins(origins []string) PublicServiceOption {
	return func(cfg *publicServiceConfig) {
		cfg.allowedOrigins = origins
	}
}

// NewPublicService creates a PublicService
func NewPublicService(records RecordsAPI, options ...PublicServiceOption) PublicService {
	assert.NotNil(records)

	cfg := publicServiceConfig{
		allowedOrigins: []string{"*"},
		tel:            telemetry.SlogAPI{},
	}
	for _, opt := range options {
		opt(&cfg)
	}

	return PublicService{
		records:        records,
		allowedOrigins: cfg.allowedOrigins,
		tel:            telemetry.NewScopedAPI("service", cfg.tel),
	}
}
