package positions

import (
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/middleware"
	"github.com/plazahq/api/internal/rest/rest"
)

type positionsPostRoute struct {
	Ctx global.Context
}

func NewPost(gctx global.Context) rest.Route {
	return &positionsPostRoute{gctx}
}

func (r *positionsPostRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/positions",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Session(r.Ctx),
		},
	}
}

// Update Position
// Records the caller's position from the form fields x, y and z. The
// entry's color always comes from the caller's session, never from the
// request.
func (r *positionsPostRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrNoSession()
	}

	x, err := ctx.FormValue("x").Float64()
	if err != nil {
		return errors.ErrValidationRejected().SetDetail("Invalid position data")
	}

	y, err := ctx.FormValue("y").Float64()
	if err != nil {
		return errors.ErrValidationRejected().SetDetail("Invalid position data")
	}

	z, err := ctx.FormValue("z").Float64()
	if err != nil {
		return errors.ErrValidationRejected().SetDetail("Invalid position data")
	}

	if err := r.Ctx.Inst().Presence.Upsert(actor.UserID, x, y, z, actor.Color); err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, rest.SuccessResponse())
}
