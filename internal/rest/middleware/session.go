package middleware

import (
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/rest/rest"
	"github.com/plazahq/api/internal/utils"
)

// Session resolves the caller's session cookie and attaches the identity
// to the request. Requests without a valid cookie pass through with no
// actor set; routes that require one decide how to fail.
func Session(gCtx global.Context) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		token := utils.B2S(ctx.Request.Header.Cookie(gCtx.Config().Http.Cookie.Name))
		if token == "" {
			return nil
		}

		sess, err := gCtx.Inst().Sessions.Verify(token)
		if err != nil {
			return nil
		}

		ctx.SetActor(&sess)

		return nil
	}
}
