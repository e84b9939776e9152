package posterservice

import (
	"log/slog"

	httpadapter "festboard/contexts/festival/poster-service/adapters/http"
	"festboard/contexts/festival/poster-service/adapters/render"
	"festboard/contexts/festival/poster-service/adapters/system"
	"festboard/contexts/festival/poster-service/application"
	"festboard/contexts/festival/poster-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Docs     ports.DocumentSource
	Renderer ports.PosterRenderer
	Clock    ports.Clock
	Branding ports.Branding
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Renderer == nil {
		deps.Renderer = render.New()
	}
	if deps.Clock == nil {
		deps.Clock = system.Clock{}
	}
	service := application.Service{
		Docs:     deps.Docs,
		Renderer: deps.Renderer,
		Clock:    deps.Clock,
		Branding: deps.Branding,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
