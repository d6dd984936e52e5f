package rest

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/structures"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Ctx struct {
	*fasthttp.RequestCtx
}

type APIError = errors.APIError

func (c *Ctx) JSON(status HttpStatusCode, v interface{}) APIError {
	b, err := json.Marshal(v)
	if err != nil {
		c.SetStatusCode(InternalServerError)
		return errors.ErrInternalServerError().
			SetDetail("JSON Parsing Failed").
			SetFields(errors.Fields{"JSON_ERROR": err.Error()})
	}

	c.SetStatusCode(status)
	c.SetContentType("application/json")
	c.SetBody(b)
	return nil
}

func (c *Ctx) SetStatusCode(code HttpStatusCode) {
	c.RequestCtx.SetStatusCode(int(code))
}

func (c *Ctx) StatusCode() HttpStatusCode {
	return HttpStatusCode(c.RequestCtx.Response.StatusCode())
}

// Set the current session identity
func (c *Ctx) SetActor(s *structures.Session) {
	c.SetUserValue(string(SessionKey), s)
}

// Get the current session identity
func (c *Ctx) GetActor() (*structures.Session, bool) {
	v := c.UserValue(SessionKey).Session()
	return v, v != nil
}
