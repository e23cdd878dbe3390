package waypoint

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// every extractor here is independent of the others so that a single parse
// can report all the fields that are broken at once.

const notRecorded = "--"

func extractGame(doc *goquery.Selection) (Game, error) {
	raw, exists := doc.Find("[data-game-id]").First().Attr("data-game-id")
	if !exists {
		return 0, missingField(FIELD_GAME)
	}
	game, ok := ParseGame(raw)
	if !ok {
		return 0, unknownField(FIELD_GAME, raw)
	}
	return game, nil
}

func extractCampaignMode(doc *goquery.Selection) (CampaignMode, error) {
	raw, exists := doc.Find("[data-mode-id]").First().Attr("data-mode-id")
	if !exists {
		return 0, missingField(FIELD_CAMPAIGN_MODE)
	}
	mode, ok := ParseCampaignMode(raw)
	if !ok {
		return 0, unknownField(FIELD_CAMPAIGN_MODE, raw)
	}
	return mode, nil
}

func extractMissionId(mission *goquery.Selection) (int, error) {
	raw, exists := mission.Attr("data-mission-id")
	if !exists {
		return 0, missingField(FIELD_MISSION_ID)
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidField(FIELD_MISSION_ID, raw)
	}
	return id, nil
}

func extractDifficulty(mission *goquery.Selection) (Difficulty, error) {
	raw, exists := mission.Find(".skull .spritesheet").First().Attr("title")
	if !exists {
		return 0, missingField(FIELD_DIFFICULTY)
	}
	difficulty, ok := ParseDifficulty(raw)
	if !ok {
		return 0, unknownField(FIELD_DIFFICULTY, raw)
	}
	return difficulty, nil
}

// parseClock parses `HH:MM:SS` into the duration since midnight.
func parseClock(text string) (time.Duration, bool) {
	clock, err := time.Parse(time.TimeOnly, text)
	if err != nil {
		return 0, false
	}
	return time.Duration(clock.Hour())*time.Hour +
		time.Duration(clock.Minute())*time.Minute +
		time.Duration(clock.Second())*time.Second, true
}

func extractFastestTime(mission *goquery.Selection) (*time.Duration, error) {
	el := mission.Find(".best-time").First()
	if el.Length() == 0 {
		return nil, missingField(FIELD_TIME)
	}
	text := strings.TrimSpace(el.Text())
	if text == notRecorded {
		return nil, nil
	}
	duration, ok := parseClock(text)
	if !ok {
		return nil, invalidField(FIELD_TIME, text)
	}
	return &duration, nil
}

func extractHighestScore(mission *goquery.Selection) (*int, error) {
	el := mission.Find(".highest-score").First()
	if el.Length() == 0 {
		return nil, missingField(FIELD_SCORE)
	}
	text := strings.TrimSpace(el.Text())
	if text == notRecorded {
		return nil, nil
	}
	score, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return nil, invalidField(FIELD_SCORE, text)
	}
	return &score, nil
}
