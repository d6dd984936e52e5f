package messages

import (
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/rest"
)

type messagesRoute struct {
	Ctx global.Context
}

func New(gctx global.Context) rest.Route {
	return &messagesRoute{gctx}
}

func (r *messagesRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/messages",
		Method:     rest.GET,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

// Get Messages
// Returns the full board in append order.
func (r *messagesRoute) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, r.Ctx.Inst().Messages.List())
}
