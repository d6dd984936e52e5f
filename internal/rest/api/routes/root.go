package routes

import (
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/api/routes/messages"
	"github.com/plazahq/api/internal/rest/api/routes/positions"
	"github.com/plazahq/api/internal/rest/api/routes/session"
	"github.com/plazahq/api/internal/rest/rest"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/api",
		Method: rest.GET,
		Children: []rest.Route{
			messages.New(r.Ctx),
			messages.NewPost(r.Ctx),
			messages.NewClear(r.Ctx),
			positions.New(r.Ctx),
			positions.NewPost(r.Ctx),
			session.New(r.Ctx),
		},
		Middleware: []rest.Middleware{},
	}
}

func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, &Response{
		Online: true,
	})
}

type Response struct {
	Online bool `json:"online"`
}
