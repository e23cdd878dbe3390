package catalog

import (
	"time"
)

func par(d time.Duration) *time.Duration {
	return &d
}

func score(n int) *int {
	return &n
}

// missions is ordered by game then mission id.
var missions = []Mission{
	{GameId: GAME_ID_HALO, Id: 1, Name: "Pillar of Autumn", ParTime: par(15*time.Minute), ParScore: score(17_000)},
	{GameId: GAME_ID_HALO, Id: 2, Name: "Halo", ParTime: par(20*time.Minute), ParScore: score(12_000)},
	{GameId: GAME_ID_HALO, Id: 3, Name: "Truth and Reconciliation", ParTime: par(20*time.Minute), ParScore: score(19_000)},
	{GameId: GAME_ID_HALO, Id: 4, Name: "Silent Cartographer", ParTime: par(15*time.Minute), ParScore: score(18_000)},
	{GameId: GAME_ID_HALO, Id: 5, Name: "Assault on the Control Room", ParTime: par(15*time.Minute), ParScore: score(18_000)},
	{GameId: GAME_ID_HALO, Id: 6, Name: "343 Guilty Spark", ParTime: par(15*time.Minute), ParScore: score(17_000)},
	{GameId: GAME_ID_HALO, Id: 7, Name: "The Library", ParTime: par(25*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO, Id: 8, Name: "Two Betrayals", ParTime: par(20*time.Minute), ParScore: score(16_000)},
	{GameId: GAME_ID_HALO, Id: 9, Name: "Keyes", ParTime: par(15*time.Minute), ParScore: score(20_000)},
	{GameId: GAME_ID_HALO, Id: 10, Name: "The Maw", ParTime: par(15*time.Minute), ParScore: score(18_000)},

	{GameId: GAME_ID_HALO_2, Id: 1, Name: "The Heretic", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_2, Id: 2, Name: "The Armory", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_2, Id: 3, Name: "Cairo Station", ParTime: par(15*time.Minute), ParScore: score(14_000)},
	{GameId: GAME_ID_HALO_2, Id: 4, Name: "Outskirts", ParTime: par(15*time.Minute), ParScore: score(8_000)},
	{GameId: GAME_ID_HALO_2, Id: 5, Name: "Metropolis", ParTime: par(15*time.Minute), ParScore: score(9_000)},
	{GameId: GAME_ID_HALO_2, Id: 6, Name: "The Arbiter", ParTime: par(15*time.Minute), ParScore: score(7_000)},
	{GameId: GAME_ID_HALO_2, Id: 7, Name: "The Oracle", ParTime: par(25*time.Minute), ParScore: score(16_000)},
	{GameId: GAME_ID_HALO_2, Id: 8, Name: "Delta Halo", ParTime: par(15*time.Minute), ParScore: score(10_000)},
	{GameId: GAME_ID_HALO_2, Id: 9, Name: "Regret", ParTime: par(15*time.Minute), ParScore: score(8_000)},
	{GameId: GAME_ID_HALO_2, Id: 10, Name: "Sacred Icon", ParTime: par(15*time.Minute), ParScore: score(7_000)},
	{GameId: GAME_ID_HALO_2, Id: 11, Name: "Quarantine Zone", ParTime: par(15*time.Minute), ParScore: score(7_000)},
	{GameId: GAME_ID_HALO_2, Id: 12, Name: "Gravemind", ParTime: par(20*time.Minute), ParScore: score(11_000)},
	{GameId: GAME_ID_HALO_2, Id: 13, Name: "Uprising", ParTime: par(15*time.Minute), ParScore: score(9_000)},
	{GameId: GAME_ID_HALO_2, Id: 14, Name: "High Charity", ParTime: par(15*time.Minute), ParScore: score(9_000)},
	{GameId: GAME_ID_HALO_2, Id: 15, Name: "The Great Journey", ParTime: par(15*time.Minute), ParScore: score(8_000)},

	{GameId: GAME_ID_HALO_3, Id: 1, Name: "Arrival", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_3, Id: 2, Name: "Sierra 117", ParTime: par(15*time.Minute), ParScore: score(13_000)},
	{GameId: GAME_ID_HALO_3, Id: 3, Name: "Crow's Nest", ParTime: par(20*time.Minute), ParScore: score(19_000)},
	{GameId: GAME_ID_HALO_3, Id: 4, Name: "Tvaso Highway", ParTime: par(20*time.Minute), ParScore: score(21_000)},
	{GameId: GAME_ID_HALO_3, Id: 5, Name: "The Storm", ParTime: par(15*time.Minute), ParScore: score(15_000)},
	{GameId: GAME_ID_HALO_3, Id: 6, Name: "Floodgate", ParTime: par(15*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_3, Id: 7, Name: "The Ark", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_3, Id: 8, Name: "The Covenant", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_3, Id: 9, Name: "Cortana", ParTime: par(15*time.Minute), ParScore: score(17_000)},
	{GameId: GAME_ID_HALO_3, Id: 10, Name: "Halo", ParTime: par(20*time.Minute), ParScore: score(24_000)},
	{GameId: GAME_ID_HALO_3, Id: 11, Name: "Epilogue", ParTime: nil, ParScore: nil},

	{GameId: GAME_ID_HALO_3_ODST, Id: 1, Name: "Prepare To Drop", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_3_ODST, Id: 2, Name: "Mombasa Streets", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_3_ODST, Id: 3, Name: "Tayari Plaza", ParTime: par(3*time.Minute), ParScore: score(8_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 4, Name: "Uplift Reserve", ParTime: par(4*time.Minute), ParScore: score(14_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 5, Name: "Kizingo Boulevard", ParTime: par(9*time.Minute), ParScore: score(18_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 6, Name: "ONI Alpha Site", ParTime: par(13*time.Minute), ParScore: score(16_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 7, Name: "NMPD HQ", ParTime: par(10*time.Minute), ParScore: score(40_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 8, Name: "Kikowani Station", ParTime: par(10*time.Minute), ParScore: score(42_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 9, Name: "Data Hive", ParTime: par(16*time.Minute), ParScore: score(8_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 10, Name: "Coastal Highway", ParTime: par(25*time.Minute), ParScore: score(90_000)},
	{GameId: GAME_ID_HALO_3_ODST, Id: 11, Name: "Epilogue", ParTime: nil, ParScore: nil},

	{GameId: GAME_ID_HALO_REACH, Id: 1, Name: "Noble Actual", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_REACH, Id: 2, Name: "Winter Contingency", ParTime: par(15*time.Minute), ParScore: score(15_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 3, Name: "ONI Sword Base", ParTime: par(10*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 4, Name: "Nightfall", ParTime: par(10*time.Minute), ParScore: score(7_500)},
	{GameId: GAME_ID_HALO_REACH, Id: 5, Name: "Tip of The Spear", ParTime: par(15*time.Minute), ParScore: score(30_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 6, Name: "Long Night of Solace", ParTime: par(25*time.Minute), ParScore: score(45_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 7, Name: "Exodus", ParTime: par(20*time.Minute), ParScore: score(30_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 8, Name: "New Alexandria", ParTime: par(20*time.Minute), ParScore: score(22_500)},
	{GameId: GAME_ID_HALO_REACH, Id: 9, Name: "The Package", ParTime: par(20*time.Minute), ParScore: score(65_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 10, Name: "The Pillar of Autumn", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_REACH, Id: 11, Name: "Epilogue", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_REACH, Id: 12, Name: "Lone Wolf", ParTime: nil, ParScore: nil},

	{GameId: GAME_ID_HALO_4, Id: 1, Name: "Prologue", ParTime: nil, ParScore: nil},
	{GameId: GAME_ID_HALO_4, Id: 2, Name: "Dawn", ParTime: par(15*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 3, Name: "Requiem", ParTime: par(15*time.Minute), ParScore: score(22_000)},
	{GameId: GAME_ID_HALO_4, Id: 4, Name: "Forerunner", ParTime: par(20*time.Minute), ParScore: score(22_000)},
	{GameId: GAME_ID_HALO_4, Id: 5, Name: "Infinity", ParTime: par(25*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 6, Name: "Reclaimer", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 7, Name: "Shutdown", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 8, Name: "Composer", ParTime: par(20*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 9, Name: "Midnight", ParTime: par(25*time.Minute), ParScore: score(25_000)},
	{GameId: GAME_ID_HALO_4, Id: 10, Name: "Epilogue", ParTime: nil, ParScore: nil},
}
