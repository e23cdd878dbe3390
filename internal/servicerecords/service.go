package servicerecords

import (
	"context"
	"fmt"
	"sync"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/components/assert"
	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/scrapers/waypoint"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/multierr"
)

const (
	report_service_find_by_player_and_game    = "service.find-by-player-and-game"
	report_service_find_by_player_and_mission = "service.find-by-player-and-mission"
)

var tracer = otel.Tracer("halorun-backend/internal/servicerecords")

// Service looks up the service records of players, errors never leave it: they are
// reported and turned into absent results.
type Service struct {
	waypoint    waypoint.API
	credentials waypoint.Credentials
	tel         telemetry.API
}

func NewService(api waypoint.API, credentials waypoint.Credentials, tel telemetry.API) Service {
	assert.NotNil(api)
	assert.NotNil(tel)
	assert.NotEmptyStr(credentials.Login)
	assert.NotEmptyStr(credentials.Password)
	return Service{
		waypoint:    api,
		credentials: credentials,
		tel:         telemetry.NewScopedAPI("servicerecords", tel),
	}
}

// fetch requests every campaign mode of a game concurrently, it fails if any of them fails.
func (s Service) fetch(ctx context.Context, player string, game catalog.Game) ([]ServiceRecord, error) {
	token, err := s.waypoint.GetAuth(ctx, s.credentials)
	if err != nil {
		return nil, fmt.Errorf("get auth: %w", err)
	}

	responses := make([]waypoint.StatsResponse, len(waypoint.CampaignModes))
	var errs error
	errLock := sync.Mutex{}
	wg := sync.WaitGroup{}

	for i, mode := range waypoint.CampaignModes {
		wg.Add(1)
		go func(i int, mode waypoint.CampaignMode) {
			defer wg.Done()

			res, err := s.waypoint.GetStatsResponse(ctx, token, waypoint.StatsRequest{
				Player:       player,
				Game:         game.Code,
				CampaignMode: mode,
			})
			if err != nil {
				errLock.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", mode.String(), err))
				errLock.Unlock()
				return
			}
			responses[i] = res
		}(i, mode)
	}
	wg.Wait()

	if errs != nil {
		return nil, errs
	}
	return Aggregate(player, responses...), nil
}

func (s Service) findByPlayerAndGame(ctx context.Context, player string, gameId catalog.GameId) ([]ServiceRecord, error) {
	ctx, span := tracer.Start(ctx, "FindByPlayerAndGame")
	defer span.End()
	span.SetAttributes(
		attribute.String("player", player),
		attribute.Int("game_id", int(gameId)),
	)

	game, ok := catalog.GameById(gameId)
	if !ok {
		err := fmt.Errorf("unknown game id %d", gameId)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	records, err := s.fetch(ctx, player, game)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// FindByPlayerAndGame returns every record of a player for a game across all campaign modes.
func (s Service) FindByPlayerAndGame(ctx context.Context, player string, gameId catalog.GameId) ([]ServiceRecord, bool) {
	records, err := s.findByPlayerAndGame(ctx, player, gameId)
	if err != nil {
		s.tel.ReportBroken(report_service_find_by_player_and_game, err, player, gameId)
		return nil, false
	}
	return records, true
}

// FindByPlayerAndMission narrows FindByPlayerAndGame to a single mission, a mission
// that was never played is absent too.
func (s Service) FindByPlayerAndMission(ctx context.Context, player string, gameId catalog.GameId, missionId int) (ServiceRecord, bool) {
	if _, ok := catalog.MissionByGameIdAndId(gameId, missionId); !ok {
		s.tel.ReportWarning(report_service_find_by_player_and_mission, "unknown mission", gameId, missionId)
		return ServiceRecord{}, false
	}

	records, err := s.findByPlayerAndGame(ctx, player, gameId)
	if err != nil {
		s.tel.ReportBroken(report_service_find_by_player_and_mission, err, player, gameId, missionId)
		return ServiceRecord{}, false
	}
	for _, record := range records {
		if record.MissionId == missionId {
			return record, true
		}
	}
	return ServiceRecord{}, false
}
