package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/scrapers/waypoint"
	"halorun-backend/internal/servicerecords"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeWaypoint struct {
	err error
}

func (f fakeWaypoint) GetAuth(ctx context.Context, credentials waypoint.Credentials) (waypoint.SessionToken, error) {
	return "token", nil
}

func (f fakeWaypoint) GetStatsResponse(ctx context.Context, token waypoint.SessionToken, req waypoint.StatsRequest) (waypoint.StatsResponse, error) {
	if f.err != nil {
		return waypoint.StatsResponse{}, f.err
	}
	fastest := 15*time.Minute + 53*time.Second
	score := 12450
	return waypoint.StatsResponse{
		Game:         req.Game,
		CampaignMode: req.CampaignMode,
		Missions: []waypoint.MissionRow{
			{Id: 0, Difficulty: waypoint.DIFFICULTY_LEGENDARY, FastestTime: &fastest, HighestScore: &score},
			{Id: 1, Difficulty: waypoint.DIFFICULTY_NONE},
		},
	}, nil
}

func newTestServer(t testing.TB, api waypoint.API) (*httptest.Server, *telemetry.MemoryAPI) {
	tel := telemetry.NewMemoryAPI()
	records := servicerecords.NewService(api, waypoint.Credentials{Login: "l", Password: "p"}, tel)
	service := NewPublicService(records, WithCustomTelemetryAPI(tel), WithAllowedOrigins([]string{"https://halomcc.run"}))

	server := httptest.NewServer(service.Handler())
	t.Cleanup(server.Close)
	return server, tel
}

func get(t testing.TB, server *httptest.Server, path string) (int, string) {
	res, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, strings.TrimSpace(string(body))
}

func TestGetGames(t *testing.T) {
	server, _ := newTestServer(t, fakeWaypoint{})

	status, body := get(t, server, "/games")
	require.Equal(t, http.StatusOK, status)

	var games []Game
	require.NoError(t, json.Unmarshal([]byte(body), &games))
	require.Len(t, games, 6)
	require.Equal(t, Game{Id: 5, Code: "HaloReach", Name: "Halo: Reach"}, games[4])

	status, body = get(t, server, "/games/9")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "null", body)

	status, _ = get(t, server, "/games/reach")
	require.Equal(t, http.StatusBadRequest, status)
}

func TestGetMissions(t *testing.T) {
	server, _ := newTestServer(t, fakeWaypoint{})

	_, body := get(t, server, "/games/1/missions")
	var missions []Mission
	require.NoError(t, json.Unmarshal([]byte(body), &missions))
	require.Len(t, missions, 10)
	require.Equal(t, "Pillar of Autumn", missions[0].Name)
	require.Equal(t, 15*60, *missions[0].ParTimeInSeconds)

	_, body = get(t, server, "/games/4/missions/1")
	var mission Mission
	require.NoError(t, json.Unmarshal([]byte(body), &mission))
	require.Equal(t, "Prepare To Drop", mission.Name)
	require.Nil(t, mission.ParTimeInSeconds)
	require.Nil(t, mission.ParScore)
}

func TestGetServiceRecords(t *testing.T) {
	server, tel := newTestServer(t, fakeWaypoint{})

	status, body := get(t, server, "/games/1/service-records/John117")
	require.Equal(t, http.StatusOK, status)

	var records []ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(body), &records))
	expected := []ServiceRecord{{
		Player:    "John117",
		GameId:    int(catalog.GAME_ID_HALO),
		MissionId: 1,
		Runs: []Run{
			{CampaignMode: "Solo", Difficulty: "Legendary", TimeInSeconds: 953, Score: 12450},
			{CampaignMode: "Coop", Difficulty: "Legendary", TimeInSeconds: 953, Score: 12450},
		},
	}}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatal(diff)
	}

	_, body = get(t, server, "/games/1/missions/1/service-records/John117")
	var record ServiceRecord
	require.NoError(t, json.Unmarshal([]byte(body), &record))
	require.Equal(t, expected[0], record)

	_, body = get(t, server, "/games/1/missions/2/service-records/John117")
	require.Equal(t, "null", body)
	require.Empty(t, tel.Broken)
}

func TestGetServiceRecordsUpstreamFailure(t *testing.T) {
	server, tel := newTestServer(t, fakeWaypoint{err: errors.New("waypoint is down")})

	status, body := get(t, server, "/games/1/service-records/John117")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "null", body)

	status, body = get(t, server, "/games/1/missions/1/service-records/John117")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "null", body)

	require.Len(t, tel.Broken, 2)
}

func TestCors(t *testing.T) {
	server, _ := newTestServer(t, fakeWaypoint{})

	req, err := http.NewRequest(http.MethodGet, server.URL+"/games", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://halomcc.run")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, "https://halomcc.run", res.Header.Get("Access-Control-Allow-Origin"))
}
