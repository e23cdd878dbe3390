package servicerecords

import (
	"cmp"
	"slices"
	"time"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/scrapers/waypoint"
)

// Run is a single completion of a mission in one campaign mode.
type Run struct {
	CampaignMode waypoint.CampaignMode
	Difficulty   waypoint.Difficulty
	Time         time.Duration
	Score        int
}

// ServiceRecord is every run a player has of a single mission.
type ServiceRecord struct {
	Player    string
	GameId    catalog.GameId
	MissionId int
	Runs      []Run
}

type recordKey struct {
	gameId    catalog.GameId
	missionId int
}

// played is false for rows without a difficulty, whatever else the row carries.
func played(row waypoint.MissionRow) bool {
	return row.Difficulty != waypoint.DIFFICULTY_NONE
}

func runOf(mode waypoint.CampaignMode, row waypoint.MissionRow) Run {
	run := Run{
		CampaignMode: mode,
		Difficulty:   row.Difficulty,
	}
	if row.FastestTime != nil {
		run.Time = *row.FastestTime
	}
	if row.HighestScore != nil {
		run.Score = *row.HighestScore
	}
	return run
}

// Aggregate merges the rows of several statistics pages of the same player into one record per
// mission. Rows of missions that were never played are dropped, the runs of a record keep the
// order of the responses they came from.
func Aggregate(player string, responses ...waypoint.StatsResponse) []ServiceRecord {
	grouped := map[recordKey]*ServiceRecord{}
	for _, res := range responses {
		game, ok := catalog.GameByCode(res.Game)
		if !ok {
			continue
		}
		for _, row := range res.Missions {
			if !played(row) {
				continue
			}
			key := recordKey{
				gameId:    game.Id,
				missionId: row.Id + game.MissionOffset,
			}
			record, exists := grouped[key]
			if !exists {
				record = &ServiceRecord{
					Player:    player,
					GameId:    key.gameId,
					MissionId: key.missionId,
				}
				grouped[key] = record
			}
			record.Runs = append(record.Runs, runOf(res.CampaignMode, row))
		}
	}

	records := make([]ServiceRecord, 0, len(grouped))
	for _, record := range grouped {
		records = append(records, *record)
	}
	slices.SortFunc(records, func(a, b ServiceRecord) int {
		if a.GameId != b.GameId {
			return cmp.Compare(a.GameId, b.GameId)
		}
		return cmp.Compare(a.MissionId, b.MissionId)
	})
	return records
}
