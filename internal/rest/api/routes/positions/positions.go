package positions

import (
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/rest"
)

type positionsRoute struct {
	Ctx global.Context
}

func New(gctx global.Context) rest.Route {
	return &positionsRoute{gctx}
}

func (r *positionsRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/positions",
		Method:     rest.GET,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

// Get Positions
// Returns every non-stale presence entry keyed by session id. Reading
// sweeps stale entries as a side effect.
func (r *positionsRoute) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, r.Ctx.Inst().Presence.Snapshot())
}
