package documentservice

import (
	"log/slog"

	httpadapter "festboard/contexts/festival/document-service/adapters/http"
	"festboard/contexts/festival/document-service/adapters/memory"
	"festboard/contexts/festival/document-service/application"
	"festboard/contexts/festival/document-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service *application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository      ports.Repository
	Outbox          ports.OutboxWriter
	Publisher       ports.EventPublisher
	Clock           ports.Clock
	IDGenerator     ports.IDGenerator
	StorageKey      string
	Topic           string
	EnforceRevision bool
	Logger          *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := &application.Service{
		Repo:            deps.Repository,
		Outbox:          deps.Outbox,
		Publisher:       deps.Publisher,
		Clock:           deps.Clock,
		IDGenerator:     deps.IDGenerator,
		StorageKey:      deps.StorageKey,
		Topic:           deps.Topic,
		EnforceRevision: deps.EnforceRevision,
		Logger:          deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(deps Dependencies) Module {
	store := memory.NewStore()
	deps.Repository = store
	module := NewModule(deps)
	module.Store = store
	return module
}
