package api

import (
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/api/routes"
	"github.com/plazahq/api/internal/rest/rest"
)

// New builds the /api route tree.
func New(gCtx global.Context) rest.Route {
	return routes.New(gCtx)
}
