package waypoint

import "time"

// Credentials is the login pair used to acquire a session.
type Credentials struct {
	Login    string
	Password string
}

// SessionToken is the value of the `Auth` cookie issued after logging in.
type SessionToken string

// Game is a game code as it appears on the service record pages.
type Game int

const (
	GAME_HALO Game = iota
	GAME_HALO_2
	GAME_HALO_3
	GAME_HALO_3_ODST
	GAME_HALO_REACH
	GAME_HALO_4
)

var gameCodes = map[Game]string{
	GAME_HALO:        "HaloCombatEvolved",
	GAME_HALO_2:      "Halo2",
	GAME_HALO_3:      "Halo3",
	GAME_HALO_3_ODST: "Halo3Odst",
	GAME_HALO_REACH:  "HaloReach",
	GAME_HALO_4:      "Halo4",
}

func (g Game) String() string {
	return gameCodes[g]
}

// ParseGame resolves a raw page code, ok is false for codes outside of the known set.
func ParseGame(raw string) (Game, bool) {
	for game, code := range gameCodes {
		if code == raw {
			return game, true
		}
	}
	return 0, false
}

type CampaignMode int

const (
	CAMPAIGN_MODE_SOLO CampaignMode = iota
	CAMPAIGN_MODE_COOP
)

// CampaignModes lists every campaign mode in the order they are fetched.
var CampaignModes = []CampaignMode{CAMPAIGN_MODE_SOLO, CAMPAIGN_MODE_COOP}

func (c CampaignMode) String() string {
	switch c {
	case CAMPAIGN_MODE_SOLO:
		return "Solo"
	case CAMPAIGN_MODE_COOP:
		return "Coop"
	}
	return ""
}

func ParseCampaignMode(raw string) (CampaignMode, bool) {
	switch raw {
	case "Solo":
		return CAMPAIGN_MODE_SOLO, true
	case "Coop":
		return CAMPAIGN_MODE_COOP, true
	}
	return 0, false
}

// Difficulty is the highest difficulty a mission was completed on,
// DIFFICULTY_NONE means the mission was never played.
type Difficulty int

const (
	DIFFICULTY_NONE Difficulty = iota
	DIFFICULTY_EASY
	DIFFICULTY_NORMAL
	DIFFICULTY_HEROIC
	DIFFICULTY_LEGENDARY
)

var difficultyTitles = []string{"None", "Easy", "Normal", "Heroic", "Legendary"}

func (d Difficulty) String() string {
	if int(d) < 0 || int(d) >= len(difficultyTitles) {
		return ""
	}
	return difficultyTitles[d]
}

func ParseDifficulty(raw string) (Difficulty, bool) {
	for i, title := range difficultyTitles {
		if title == raw {
			return Difficulty(i), true
		}
	}
	return 0, false
}

// StatsRequest identifies one statistics page, it is comparable so it can be used as a cache key.
type StatsRequest struct {
	Player       string
	Game         Game
	CampaignMode CampaignMode
}

// MissionRow is one mission as it appears in a single statistics page.
type MissionRow struct {
	// Id is local to the page, see catalog.MissionOffset.
	Id           int
	Difficulty   Difficulty
	FastestTime  *time.Duration
	HighestScore *int
}

type StatsResponse struct {
	Game         Game
	CampaignMode CampaignMode
	Missions     []MissionRow
}
