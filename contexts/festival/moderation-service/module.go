package moderationservice

import (
	"log/slog"

	httpadapter "festboard/contexts/festival/moderation-service/adapters/http"
	"festboard/contexts/festival/moderation-service/adapters/system"
	"festboard/contexts/festival/moderation-service/application"
	"festboard/contexts/festival/moderation-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Docs        ports.DocumentStore
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.IDGenerator == nil {
		deps.IDGenerator = system.UUIDGenerator{}
	}
	service := application.Service{
		Docs:        deps.Docs,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
