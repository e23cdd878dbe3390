package service

import (
	"encoding/json"
	"net/http"
	"strconv"

	"halorun-backend/internal/catalog"

	"github.com/rs/cors"
)

// Handler routes every endpoint of the service, absent results are written as `null`
// with status 200 since upstream failures are never surfaced to clients.
func (s PublicService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /games", s.getGames)
	mux.HandleFunc("GET /games/{gameId}", s.getGame)
	mux.HandleFunc("GET /games/{gameId}/missions", s.getMissions)
	mux.HandleFunc("GET /games/{gameId}/missions/{missionId}", s.getMission)
	mux.HandleFunc("GET /games/{gameId}/service-records/{player}", s.getGameServiceRecords)
	mux.HandleFunc("GET /games/{gameId}/missions/{missionId}/service-records/{player}", s.getMissionServiceRecord)

	return cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(mux)
}

func (s PublicService) writeJson(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		s.tel.ReportBroken(report_http_encode, err)
	}
}

func (s PublicService) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		s.tel.ReportWarning(report_http_bad_request, name, raw)
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func (s PublicService) getGames(w http.ResponseWriter, r *http.Request) {
	games := catalog.Games()
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = newGame(g)
	}
	s.writeJson(w, out)
}

func (s PublicService) getGame(w http.ResponseWriter, r *http.Request) {
	gameId, ok := s.pathInt(w, r, "gameId")
	if !ok {
		return
	}
	game, found := catalog.GameById(catalog.GameId(gameId))
	if !found {
		s.writeJson(w, nil)
		return
	}
	s.writeJson(w, newGame(game))
}

func (s PublicService) getMissions(w http.ResponseWriter, r *http.Request) {
	gameId, ok := s.pathInt(w, r, "gameId")
	if !ok {
		return
	}
	missions := catalog.MissionsByGameId(catalog.GameId(gameId))
	out := make([]Mission, len(missions))
	for i, m := range missions {
		out[i] = newMission(m)
	}
	s.writeJson(w, out)
}

func (s PublicService) getMission(w http.ResponseWriter, r *http.Request) {
	gameId, ok := s.pathInt(w, r, "gameId")
	if !ok {
		return
	}
	missionId, ok := s.pathInt(w, r, "missionId")
	if !ok {
		return
	}
	mission, found := catalog.MissionByGameIdAndId(catalog.GameId(gameId), missionId)
	if !found {
		s.writeJson(w, nil)
		return
	}
	s.writeJson(w, newMission(mission))
}

func (s PublicService) getGameServiceRecords(w http.ResponseWriter, r *http.Request) {
	gameId, ok := s.pathInt(w, r, "gameId")
	if !ok {
		return
	}
	records, found := s.records.FindByPlayerAndGame(r.Context(), r.PathValue("player"), catalog.GameId(gameId))
	if !found {
		s.writeJson(w, nil)
		return
	}
	out := make([]ServiceRecord, len(records))
	for i, record := range records {
		out[i] = newServiceRecord(record)
	}
	s.writeJson(w, out)
}

func (s PublicService) getMissionServiceRecord(w http.ResponseWriter, r *http.Request) {
	gameId, ok := s.pathInt(w, r, "gameId")
	if !ok {
		return
	}
	missionId, ok := s.pathInt(w, r, "missionId")
	if !ok {
		return
	}
	record, found := s.records.FindByPlayerAndMission(
		r.Context(),
		r.PathValue("player"),
		catalog.GameId(gameId),
		missionId,
	)
	if !found {
		s.writeJson(w, nil)
		return
	}
	s.writeJson(w, newServiceRecord(record))
}
