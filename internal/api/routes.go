package api

import (
	"net/http"

	"github.com/curiolabs/curio/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	storage := newStorageHandler(runtime.Storage, runtime.Logger)

	routes.Register(
		mux,
		domain.Appraisals.Handler().Routes(),
		domain.Learning.Handler().Routes(),
		storage.routes(),
	)
}
