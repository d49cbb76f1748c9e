package app

import (
	"github.com/vancomm/minefind/internal/handlers"
	"github.com/vancomm/minefind/internal/mines"
)

func (a *App) loadRoutes() {
	base := a.cfg.BasePath

	var recorder handlers.Recorder
	if a.repo != nil {
		recorder = a.repo
	}
	game := handlers.NewGameHandler(a.log, a.ws, recorder, mines.NewRandomRand)

	a.router.HandleFunc("GET "+base+"/v1/status", handlers.Status)
	a.router.HandleFunc("GET "+base+"/v1/game/connect", game.Connect)

	if a.repo != nil {
		records := handlers.NewRecordsHandler(a.log, a.repo)
		a.router.HandleFunc("GET "+base+"/v1/records", records.List)
	}
}
