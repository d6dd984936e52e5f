package session

import (
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/middleware"
	"github.com/plazahq/api/internal/rest/rest"
)

type sessionRoute struct {
	Ctx global.Context
}

func New(gctx global.Context) rest.Route {
	return &sessionRoute{gctx}
}

func (r *sessionRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/session",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Session(r.Ctx),
		},
	}
}

// Get Session
// Returns the caller's session id and color.
func (r *sessionRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized().SetDetail("User not logged in")
	}

	return ctx.JSON(rest.OK, actor)
}
