package waypoint

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/multierr"
)

func parseMissionRow(mission *goquery.Selection) (MissionRow, error) {
	id, idErr := extractMissionId(mission)
	difficulty, difficultyErr := extractDifficulty(mission)
	fastestTime, timeErr := extractFastestTime(mission)
	highestScore, scoreErr := extractHighestScore(mission)

	err := multierr.Combine(idErr, difficultyErr, timeErr, scoreErr)
	if err != nil {
		return MissionRow{}, err
	}
	return MissionRow{
		Id:           id,
		Difficulty:   difficulty,
		FastestTime:  fastestTime,
		HighestScore: highestScore,
	}, nil
}

// ParseStatsResponse parses the html fragment returned by a statistics request.
//
// Every field of every mission is always extracted, if anything fails the returned error
// holds all the failures (use multierr.Errors to list them).
func ParseStatsResponse(fragment string) (StatsResponse, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return StatsResponse{}, err
	}
	return parseStatsDocument(doc.Selection)
}

func parseStatsDocument(doc *goquery.Selection) (StatsResponse, error) {
	game, gameErr := extractGame(doc)
	mode, modeErr := extractCampaignMode(doc)

	var missionsErr error
	var missions []MissionRow
	doc.Find("[data-mission-id]").Each(func(_ int, mission *goquery.Selection) {
		row, err := parseMissionRow(mission)
		if err != nil {
			missionsErr = multierr.Append(missionsErr, err)
			return
		}
		missions = append(missions, row)
	})

	err := multierr.Combine(gameErr, modeErr, missionsErr)
	if err != nil {
		return StatsResponse{}, err
	}
	return StatsResponse{
		Game:         game,
		CampaignMode: mode,
		Missions:     missions,
	}, nil
}
