package wiring

import (
	"go.uber.org/zap"

	galleryadapters "github.com/imgreport/imgreport/internal/domains/gallery/adapters"
	galleryapi "github.com/imgreport/imgreport/internal/domains/gallery/api"
)

// Container is the in-process DI container.
type Container struct {
	Gallery galleryapi.API
}

func New(logger *zap.Logger) Container {
	gallery := galleryapi.New(galleryapi.Dependencies{
		Lister:   galleryadapters.NewOSLister(),
		Captions: galleryadapters.NewOSCaptionReader(),
		Walker:   galleryadapters.NewOSWalker(),
		Writer:   galleryadapters.NewOSPageWriter(),
		Logger:   logger,
	})

	return Container{
		Gallery: gallery,
	}
}
