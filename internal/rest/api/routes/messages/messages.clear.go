package messages

import (
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/rest"
)

type messagesClearRoute struct {
	Ctx global.Context
}

func NewClear(gctx global.Context) rest.Route {
	return &messagesClearRoute{gctx}
}

func (r *messagesClearRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/clear_messages",
		Method:     rest.POST,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

// Clear Messages
// Empties the board. The next posted message gets id 0.
func (r *messagesClearRoute) Handler(ctx *rest.Ctx) rest.APIError {
	if err := r.Ctx.Inst().Messages.Clear(); err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, rest.SuccessResponse())
}
