package portal

import (
	"fmt"
	"os"
	"path"

	"github.com/fasthttp/router"
	"github.com/plazahq/api/internal/global"
	"github.com/plazahq/api/internal/structures"
	"github.com/plazahq/api/internal/utils"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasttemplate"
	"go.uber.org/zap"
)

// Served when no portal build is present on disk.
const defaultPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>plaza</title>
<!-- {{SESSION}} -->
</head>
<body>
<canvas id="three-canvas"></canvas>
<script type="module" src="/static/main.js"></script>
</body>
</html>
`

// Bind registers the portal page and its static assets on the main
// router. Visiting the page is what establishes a client's session.
func Bind(gCtx global.Context, r *router.Router) {
	root := utils.Ternary(gCtx.Config().Portal.Root == "", "portal", gCtx.Config().Portal.Root)

	index, err := os.ReadFile(path.Join(root, "index.html"))
	if err != nil {
		zap.S().Warnw("portal, no index page on disk, serving built-in",
			"root", root,
			"error", err,
		)

		index = []byte(defaultPage)
	}

	template := fasttemplate.New(utils.B2S(index), "<!-- {{", "}} -->")

	r.GET("/", func(ctx *fasthttp.RequestCtx) {
		sess := resolveSession(gCtx, ctx)

		ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
		ctx.Response.Header.Set("Cache-Control", "no-cache")
		ctx.SetBodyString(template.ExecuteString(map[string]interface{}{
			"SESSION": fmt.Sprintf(
				`<script>window.__session = {"user_id": %q, "color": %q};</script>`,
				sess.UserID, sess.Color,
			),
		}))
	})

	if st, err := os.Stat(path.Join(root, "static")); err == nil && st.IsDir() {
		r.ServeFiles("/static/{filepath:*}", path.Join(root, "static"))
	}
}

// resolveSession returns the caller's session, issuing a new one and
// setting the cookie when the caller doesn't have a valid one yet.
func resolveSession(gCtx global.Context, ctx *fasthttp.RequestCtx) structures.Session {
	cfg := gCtx.Config().Http.Cookie

	token := utils.B2S(ctx.Request.Header.Cookie(cfg.Name))
	if sess, err := gCtx.Inst().Sessions.Verify(token); err == nil {
		return sess
	}

	sess, signed, err := gCtx.Inst().Sessions.Issue()
	if err != nil {
		zap.S().Errorw("portal, failed to issue a session",
			"error", err,
		)

		return structures.Session{}
	}

	cookie := fasthttp.Cookie{}
	cookie.SetKey(cfg.Name)
	cookie.SetValue(signed)
	cookie.SetPath("/")
	cookie.SetDomain(cfg.Domain)
	cookie.SetSecure(cfg.Secure)
	cookie.SetHTTPOnly(true)
	ctx.Response.Header.SetCookie(&cookie)

	return sess
}
