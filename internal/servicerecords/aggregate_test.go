package servicerecords

import (
	_ "embed"
	"testing"
	"time"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/scrapers/waypoint"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/halo_reach_solo.html
var haloReachSoloPage string

func clock(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

func ptr[T any](v T) *T {
	return &v
}

func TestAggregateReachFixture(t *testing.T) {
	res, err := waypoint.ParseStatsResponse(haloReachSoloPage)
	require.NoError(t, err)
	require.Len(t, res.Missions, 12)

	records := Aggregate("John117", res)

	type tuple struct {
		MissionId  int
		Difficulty waypoint.Difficulty
		Time       time.Duration
		Score      int
	}
	var got []tuple
	for _, record := range records {
		require.Equal(t, "John117", record.Player)
		require.Equal(t, catalog.GAME_ID_HALO_REACH, record.GameId)
		require.Len(t, record.Runs, 1)
		run := record.Runs[0]
		require.Equal(t, waypoint.CAMPAIGN_MODE_SOLO, run.CampaignMode)
		got = append(got, tuple{record.MissionId, run.Difficulty, run.Time, run.Score})
	}

	expected := []tuple{
		{1, waypoint.DIFFICULTY_LEGENDARY, clock(0, 12, 1), 1000},
		{2, waypoint.DIFFICULTY_HEROIC, clock(0, 21, 44), 2000},
		{3, waypoint.DIFFICULTY_HEROIC, clock(0, 18, 30), 3000},
		{4, waypoint.DIFFICULTY_NORMAL, clock(0, 25, 12), 4000},
		{5, waypoint.DIFFICULTY_EASY, clock(0, 9, 58), 5000},
		{6, waypoint.DIFFICULTY_LEGENDARY, clock(0, 31, 7), 6000},
		{7, waypoint.DIFFICULTY_NORMAL, clock(0, 22, 45), 7000},
		{8, waypoint.DIFFICULTY_HEROIC, clock(0, 27, 19), 8000},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestAggregateMergesCampaignModes(t *testing.T) {
	solo := waypoint.StatsResponse{
		Game:         waypoint.GAME_HALO,
		CampaignMode: waypoint.CAMPAIGN_MODE_SOLO,
		Missions: []waypoint.MissionRow{
			{Id: 1, Difficulty: waypoint.DIFFICULTY_LEGENDARY, FastestTime: ptr(clock(1, 27, 34)), HighestScore: ptr(31020)},
			{Id: 0, Difficulty: waypoint.DIFFICULTY_NORMAL, FastestTime: ptr(clock(0, 15, 53))},
			{Id: 2, Difficulty: waypoint.DIFFICULTY_NONE},
		},
	}
	coop := waypoint.StatsResponse{
		Game:         waypoint.GAME_HALO,
		CampaignMode: waypoint.CAMPAIGN_MODE_COOP,
		Missions: []waypoint.MissionRow{
			{Id: 0, Difficulty: waypoint.DIFFICULTY_LEGENDARY, FastestTime: ptr(clock(0, 13, 35))},
			{Id: 3, Difficulty: waypoint.DIFFICULTY_HEROIC, FastestTime: ptr(clock(0, 27, 46)), HighestScore: ptr(900)},
		},
	}

	expected := []ServiceRecord{
		{
			Player: "John117", GameId: catalog.GAME_ID_HALO, MissionId: 1,
			Runs: []Run{
				{CampaignMode: waypoint.CAMPAIGN_MODE_SOLO, Difficulty: waypoint.DIFFICULTY_NORMAL, Time: clock(0, 15, 53)},
				{CampaignMode: waypoint.CAMPAIGN_MODE_COOP, Difficulty: waypoint.DIFFICULTY_LEGENDARY, Time: clock(0, 13, 35)},
			},
		},
		{
			Player: "John117", GameId: catalog.GAME_ID_HALO, MissionId: 2,
			Runs: []Run{
				{CampaignMode: waypoint.CAMPAIGN_MODE_SOLO, Difficulty: waypoint.DIFFICULTY_LEGENDARY, Time: clock(1, 27, 34), Score: 31020},
			},
		},
		{
			Player: "John117", GameId: catalog.GAME_ID_HALO, MissionId: 4,
			Runs: []Run{
				{CampaignMode: waypoint.CAMPAIGN_MODE_COOP, Difficulty: waypoint.DIFFICULTY_HEROIC, Time: clock(0, 27, 46), Score: 900},
			},
		},
	}
	if diff := cmp.Diff(expected, Aggregate("John117", solo, coop)); diff != "" {
		t.Fatal(diff)
	}
}

func TestAggregateKeepsDuplicateModes(t *testing.T) {
	res := waypoint.StatsResponse{
		Game:         waypoint.GAME_HALO_4,
		CampaignMode: waypoint.CAMPAIGN_MODE_SOLO,
		Missions: []waypoint.MissionRow{
			{Id: 104, Difficulty: waypoint.DIFFICULTY_EASY, FastestTime: ptr(clock(0, 20, 0))},
		},
	}
	records := Aggregate("John117", res, res)
	require.Len(t, records, 1)
	require.Equal(t, 2, records[0].MissionId)
	require.Len(t, records[0].Runs, 2)
}

func TestAggregateDropsRowsWithoutDifficulty(t *testing.T) {
	res := waypoint.StatsResponse{
		Game:         waypoint.GAME_HALO,
		CampaignMode: waypoint.CAMPAIGN_MODE_SOLO,
		Missions: []waypoint.MissionRow{
			{Id: 0, Difficulty: waypoint.DIFFICULTY_NONE, FastestTime: ptr(clock(0, 15, 53))},
			{Id: 1, Difficulty: waypoint.DIFFICULTY_NONE, HighestScore: ptr(4560)},
			{Id: 2, Difficulty: waypoint.DIFFICULTY_HEROIC},
		},
	}

	records := Aggregate("John117", res)
	require.Len(t, records, 1)
	require.Equal(t, 3, records[0].MissionId)
	for _, record := range records {
		for _, run := range record.Runs {
			require.NotEqual(t, waypoint.DIFFICULTY_NONE, run.Difficulty)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	require.Empty(t, Aggregate("John117"))
	require.Empty(t, Aggregate("John117", waypoint.StatsResponse{Game: waypoint.GAME_HALO_2}))
}
