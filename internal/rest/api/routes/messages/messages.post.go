package messages

import (
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/rest"
)

type messagesPostRoute struct {
	Ctx global.Context
}

func NewPost(gctx global.Context) rest.Route {
	return &messagesPostRoute{gctx}
}

func (r *messagesPostRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/messages",
		Method:     rest.POST,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

// Post Message
// Appends a board entry from the form fields username and message.
func (r *messagesPostRoute) Handler(ctx *rest.Ctx) rest.APIError {
	username, _ := ctx.FormValue("username").String()
	message, _ := ctx.FormValue("message").String()

	if _, err := r.Ctx.Inst().Messages.Add(username, message); err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, rest.SuccessResponse())
}
