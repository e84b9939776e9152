package leaderboardservice

import (
	"log/slog"

	"golang.org/x/text/language"

	"festboard/contexts/festival/leaderboard-service/adapters/collate"
	httpadapter "festboard/contexts/festival/leaderboard-service/adapters/http"
	"festboard/contexts/festival/leaderboard-service/application"
	"festboard/contexts/festival/leaderboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service *application.Service
}

type Dependencies struct {
	Docs         ports.DocumentSource
	Collator     ports.NameCollator
	MatchTeamIDs bool
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Collator == nil {
		deps.Collator = collate.New(language.Und)
	}
	service := &application.Service{
		Docs:         deps.Docs,
		Collator:     deps.Collator,
		MatchTeamIDs: deps.MatchTeamIDs,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
