package waypoint

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func mission(t testing.TB, html string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find("[data-mission-id]").First()
}

func TestExtractMissionId(t *testing.T) {
	cases := []struct {
		html     string
		expected int
		err      error
	}{
		{html: `<li data-mission-id="12"></li>`, expected: 12},
		{html: `<li data-mission-id=" 7 "></li>`, expected: 7},
		{html: `<li data-mission-id="twelve"></li>`, err: invalidField(FIELD_MISSION_ID, "twelve")},
	}
	for _, test := range cases {
		id, err := extractMissionId(mission(t, test.html))
		if test.err != nil {
			require.Equal(t, test.err, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.expected, id)
	}

	_, err := extractMissionId(&goquery.Selection{})
	require.Equal(t, missingField(FIELD_MISSION_ID), err)
}

func TestExtractDifficulty(t *testing.T) {
	cases := []struct {
		title    string
		expected Difficulty
	}{
		{"None", DIFFICULTY_NONE},
		{"Easy", DIFFICULTY_EASY},
		{"Normal", DIFFICULTY_NORMAL},
		{"Heroic", DIFFICULTY_HEROIC},
		{"Legendary", DIFFICULTY_LEGENDARY},
	}
	for _, test := range cases {
		html := `<li data-mission-id="0"><div class="skull"><span class="spritesheet" title="` + test.title + `"></span></div></li>`
		difficulty, err := extractDifficulty(mission(t, html))
		require.NoError(t, err)
		require.Equal(t, test.expected, difficulty)
	}

	_, err := extractDifficulty(mission(t, `<li data-mission-id="0"><span class="spritesheet" title="Legendary"></span></li>`))
	require.Equal(t, missingField(FIELD_DIFFICULTY), err)

	_, err = extractDifficulty(mission(t, `<li data-mission-id="0"><div class="skull"><span class="spritesheet" title="legendary"></span></div></li>`))
	require.Equal(t, unknownField(FIELD_DIFFICULTY, "legendary"), err)
}

func TestExtractFastestTime(t *testing.T) {
	d, err := extractFastestTime(mission(t, `<li data-mission-id="0"><span class="best-time">01:27:34</span></li>`))
	require.NoError(t, err)
	require.Equal(t, time.Hour+27*time.Minute+34*time.Second, *d)

	d, err = extractFastestTime(mission(t, `<li data-mission-id="0"><span class="best-time">
		00:00:09
	</span></li>`))
	require.NoError(t, err)
	require.Equal(t, 9*time.Second, *d)

	d, err = extractFastestTime(mission(t, `<li data-mission-id="0"><span class="best-time">--</span></li>`))
	require.NoError(t, err)
	require.Nil(t, d)

	_, err = extractFastestTime(mission(t, `<li data-mission-id="0"><span class="best-time">25:00:00</span></li>`))
	require.Equal(t, invalidField(FIELD_TIME, "25:00:00"), err)

	_, err = extractFastestTime(mission(t, `<li data-mission-id="0"></li>`))
	require.Equal(t, missingField(FIELD_TIME), err)
}

func TestExtractHighestScore(t *testing.T) {
	s, err := extractHighestScore(mission(t, `<li data-mission-id="0"><span class="highest-score">1,234,567</span></li>`))
	require.NoError(t, err)
	require.Equal(t, 1234567, *s)

	s, err = extractHighestScore(mission(t, `<li data-mission-id="0"><span class="highest-score">--</span></li>`))
	require.NoError(t, err)
	require.Nil(t, s)

	_, err = extractHighestScore(mission(t, `<li data-mission-id="0"><span class="highest-score">lots</span></li>`))
	require.Equal(t, invalidField(FIELD_SCORE, "lots"), err)

	_, err = extractHighestScore(mission(t, `<li data-mission-id="0"></li>`))
	require.Equal(t, missingField(FIELD_SCORE), err)
}

func TestExtractGameAndMode(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div data-game-id="Halo3Odst"><span data-mode-id="Solo"></span><span data-mode-id="Coop"></span></div>`,
	))
	require.NoError(t, err)

	game, err := extractGame(doc.Selection)
	require.NoError(t, err)
	require.Equal(t, GAME_HALO_3_ODST, game)

	mode, err := extractCampaignMode(doc.Selection)
	require.NoError(t, err)
	require.Equal(t, CAMPAIGN_MODE_SOLO, mode)

	for _, g := range []Game{GAME_HALO, GAME_HALO_2, GAME_HALO_3, GAME_HALO_3_ODST, GAME_HALO_REACH, GAME_HALO_4} {
		parsed, ok := ParseGame(g.String())
		require.True(t, ok)
		require.Equal(t, g, parsed)
	}
}
