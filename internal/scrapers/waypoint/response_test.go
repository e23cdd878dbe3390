package waypoint

import (
	_ "embed"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

//go:embed testdata/halo_solo.html
var haloSoloPage string

//go:embed testdata/halo_coop.html
var haloCoopPage string

//go:embed testdata/halo_reach_solo.html
var haloReachSoloPage string

//go:embed testdata/broken.html
var brokenPage string

func clock(h, m, s int) *time.Duration {
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return &d
}

func score(n int) *int {
	return &n
}

func TestParseHaloSolo(t *testing.T) {
	res, err := ParseStatsResponse(haloSoloPage)
	require.NoError(t, err)

	require.Equal(t, GAME_HALO, res.Game)
	require.Equal(t, CAMPAIGN_MODE_SOLO, res.CampaignMode)

	expected := []MissionRow{
		{Id: 0, Difficulty: DIFFICULTY_LEGENDARY, FastestTime: clock(0, 15, 53), HighestScore: score(12450)},
		{Id: 1, Difficulty: DIFFICULTY_LEGENDARY, FastestTime: clock(1, 27, 34), HighestScore: score(31020)},
		{Id: 2, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 39, 3), HighestScore: score(8900)},
		{Id: 3, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 20, 47)},
		{Id: 4, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 44, 50), HighestScore: score(10115)},
		{Id: 5, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 18, 56), HighestScore: score(4560)},
		{Id: 6, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 41, 19), HighestScore: score(9870)},
		{Id: 7, Difficulty: DIFFICULTY_NONE},
		{Id: 8, Difficulty: DIFFICULTY_NONE},
		{Id: 9, Difficulty: DIFFICULTY_NORMAL, FastestTime: clock(0, 39, 46), HighestScore: score(7345)},
	}
	if diff := cmp.Diff(expected, res.Missions); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseHaloCoop(t *testing.T) {
	res, err := ParseStatsResponse(haloCoopPage)
	require.NoError(t, err)

	require.Equal(t, GAME_HALO, res.Game)
	require.Equal(t, CAMPAIGN_MODE_COOP, res.CampaignMode)
	require.Len(t, res.Missions, 10)

	first := res.Missions[0]
	require.Equal(t, DIFFICULTY_LEGENDARY, first.Difficulty)
	require.Equal(t, *clock(0, 13, 35), *first.FastestTime)
	require.Nil(t, first.HighestScore)

	last := res.Missions[9]
	require.Equal(t, 9, last.Id)
	require.Equal(t, *clock(0, 40, 42), *last.FastestTime)
}

func TestParseHaloReach(t *testing.T) {
	res, err := ParseStatsResponse(haloReachSoloPage)
	require.NoError(t, err)

	require.Equal(t, GAME_HALO_REACH, res.Game)
	require.Len(t, res.Missions, 12)
	require.Equal(t, 178, res.Missions[0].Id)
	require.Equal(t, 189, res.Missions[11].Id)

	unplayed := 0
	for _, m := range res.Missions {
		if m.Difficulty == DIFFICULTY_NONE {
			unplayed++
			require.Nil(t, m.FastestTime)
		}
	}
	require.Equal(t, 4, unplayed)
}

func TestParseCollectsEveryError(t *testing.T) {
	_, err := ParseStatsResponse(brokenPage)
	require.Error(t, err)

	var fieldErrs []FieldError
	for _, e := range multierr.Errors(err) {
		var fieldErr FieldError
		require.True(t, errors.As(e, &fieldErr), "unexpected error %v", e)
		fieldErrs = append(fieldErrs, fieldErr)
	}

	expected := []FieldError{
		unknownField(FIELD_GAME, "Halo5"),
		missingField(FIELD_CAMPAIGN_MODE),
		unknownField(FIELD_DIFFICULTY, "Mythic"),
		invalidField(FIELD_TIME, "1h20m"),
		invalidField(FIELD_SCORE, "12a"),
	}
	if diff := cmp.Diff(expected, fieldErrs); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseEmptyFragment(t *testing.T) {
	_, err := ParseStatsResponse("")
	require.Len(t, multierr.Errors(err), 2)
}

func TestParseWithoutMissions(t *testing.T) {
	res, err := ParseStatsResponse(`<div data-game-id="Halo4"><div data-mode-id="Coop"></div></div>`)
	require.NoError(t, err)
	require.Equal(t, GAME_HALO_4, res.Game)
	require.Equal(t, CAMPAIGN_MODE_COOP, res.CampaignMode)
	require.Empty(t, res.Missions)
}
