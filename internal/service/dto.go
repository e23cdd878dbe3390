package service

import (
	"time"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/servicerecords"
)

type Game struct {
	Id   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Mission struct {
	GameId int    `json:"gameId"`
	Id     int    `json:"id"`
	Name   string `json:"name"`
	// ParTimeInSeconds and ParScore are null for missions without a par.
	ParTimeInSeconds *int `json:"parTimeInSeconds"`
	ParScore         *int `json:"parScore"`
}

type Run struct {
	CampaignMode  string `json:"campaignMode"`
	Difficulty    string `json:"difficulty"`
	TimeInSeconds int    `json:"timeInSeconds"`
	Score         int    `json:"score"`
}

type ServiceRecord struct {
	Player    string `json:"player"`
	GameId    int    `json:"gameId"`
	MissionId int    `json:"missionId"`
	Runs      []Run  `json:"runs"`
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}

func newGame(g catalog.Game) Game {
	return Game{
		Id:   int(g.Id),
		Code: g.Code.String(),
		Name: g.Name,
	}
}

func newMission(m catalog.Mission) Mission {
	out := Mission{
		GameId:   int(m.GameId),
		Id:       m.Id,
		Name:     m.Name,
		ParScore: m.ParScore,
	}
	if m.ParTime != nil {
		parTime := seconds(*m.ParTime)
		out.ParTimeInSeconds = &parTime
	}
	return out
}

func newServiceRecord(r servicerecords.ServiceRecord) ServiceRecord {
	runs := make([]Run, len(r.Runs))
	for i, run := range r.Runs {
		runs[i] = Run{
			CampaignMode:  run.CampaignMode.String(),
			Difficulty:    run.Difficulty.String(),
			TimeInSeconds: seconds(run.Time),
			Score:         run.Score,
		}
	}
	return ServiceRecord{
		Player:    r.Player,
		GameId:    int(r.GameId),
		MissionId: r.MissionId,
		Runs:      runs,
	}
}
