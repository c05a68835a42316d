package api

import (
	"github.com/curiolabs/curio/internal/appraisals"
	"github.com/curiolabs/curio/internal/learning"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Appraisals appraisals.System
	Learning   learning.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	learningSystem := learning.New(
		learning.NewPostgresStore(runtime.Database.Connection()),
		runtime.Logger,
	)

	appraisalsSystem := appraisals.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		runtime.Storage,
		runtime.Market,
		learningSystem,
		runtime.MaxUpload,
	)

	return &Domain{
		Appraisals: appraisalsSystem,
		Learning:   learningSystem,
	}
}
