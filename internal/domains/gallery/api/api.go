package api

import (
	"go.uber.org/zap"

	"github.com/imgreport/imgreport/internal/domains/gallery/app"
	"github.com/imgreport/imgreport/internal/domains/gallery/ports"
)

// API is the stable boundary for gallery report generation.
type API interface {
	Generate(req app.GenerateRequest) (app.GenerateResult, error)
}

// Dependencies are the OS adapters (or mocks) injected by the composition root.
type Dependencies struct {
	Lister   ports.Lister
	Captions ports.CaptionReader
	Walker   ports.Walker
	Writer   ports.PageWriter
	Logger   *zap.Logger
}

func New(deps Dependencies) API {
	return &galleryAPI{
		svc: &app.Service{
			Lister:   deps.Lister,
			Captions: deps.Captions,
			Walker:   deps.Walker,
			Writer:   deps.Writer,
			Logger:   deps.Logger,
		},
	}
}

type galleryAPI struct {
	svc *app.Service
}

func (g *galleryAPI) Generate(req app.GenerateRequest) (app.GenerateResult, error) {
	return g.svc.Generate(req)
}
