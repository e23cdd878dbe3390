// Package catalog holds the static reference data of the collection: which games exist,
// which missions they contain and how waypoint numbers those missions.
package catalog

import (
	"time"

	"halorun-backend/internal/scrapers/waypoint"
)

type GameId int

const (
	GAME_ID_HALO GameId = iota + 1
	GAME_ID_HALO_2
	GAME_ID_HALO_3
	GAME_ID_HALO_3_ODST
	GAME_ID_HALO_REACH
	GAME_ID_HALO_4
)

type Game struct {
	Id   GameId
	Code waypoint.Game
	Name string
	// MissionOffset converts the page-local mission id of this game into the catalog mission id.
	MissionOffset int
}

type Mission struct {
	GameId GameId
	Id     int
	Name   string
	// ParTime and ParScore are nil for missions without a par (cutscene only missions).
	ParTime  *time.Duration
	ParScore *int
}

var games = []Game{
	{Id: GAME_ID_HALO, Code: waypoint.GAME_HALO, Name: "Halo: Combat Evolved", MissionOffset: 1},
	{Id: GAME_ID_HALO_2, Code: waypoint.GAME_HALO_2, Name: "Halo 2", MissionOffset: -28},
	{Id: GAME_ID_HALO_3, Code: waypoint.GAME_HALO_3, Name: "Halo 3", MissionOffset: -68},
	{Id: GAME_ID_HALO_3_ODST, Code: waypoint.GAME_HALO_3_ODST, Name: "Halo 3: ODST", MissionOffset: -165},
	{Id: GAME_ID_HALO_REACH, Code: waypoint.GAME_HALO_REACH, Name: "Halo: Reach", MissionOffset: -177},
	{Id: GAME_ID_HALO_4, Code: waypoint.GAME_HALO_4, Name: "Halo 4", MissionOffset: -102},
}

// Games returns every game in release order.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

func GameById(id GameId) (Game, bool) {
	for _, g := range games {
		if g.Id == id {
			return g, true
		}
	}
	return Game{}, false
}

func GameByCode(code waypoint.Game) (Game, bool) {
	for _, g := range games {
		if g.Code == code {
			return g, true
		}
	}
	return Game{}, false
}

// MissionOffset returns the offset for a waypoint game code, unknown codes have no offset.
func MissionOffset(code waypoint.Game) int {
	g, ok := GameByCode(code)
	if !ok {
		return 0
	}
	return g.MissionOffset
}

func MissionsByGameId(id GameId) []Mission {
	var out []Mission
	for _, m := range missions {
		if m.GameId == id {
			out = append(out, m)
		}
	}
	return out
}

func MissionByGameIdAndId(gameId GameId, id int) (Mission, bool) {
	for _, m := range missions {
		if m.GameId == gameId && m.Id == id {
			return m, true
		}
	}
	return Mission{}, false
}
