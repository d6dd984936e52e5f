package rest

import (
	"net/http"

	"github.com/fasthttp/router"
)

type Route interface {
	Config() RouteConfig
	Handler(ctx *Ctx) APIError
}

type Router = router.Router

type RouteConfig struct {
	URI        string
	Method     RouteMethod
	Children   []Route
	Middleware []Middleware
}

type RouteMethod string

const (
	GET     RouteMethod = "GET"
	POST    RouteMethod = "POST"
	PUT     RouteMethod = "PUT"
	PATCH   RouteMethod = "PATCH"
	DELETE  RouteMethod = "DELETE"
	OPTIONS RouteMethod = "OPTIONS"
)

type Middleware = func(ctx *Ctx) APIError

// APIErrorResponse is the wire shape of every error the API emits.
type APIErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse is the wire shape of a plain success acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

func SuccessResponse() StatusResponse {
	return StatusResponse{Status: "success"}
}

type HttpStatusCode int

func (c HttpStatusCode) String() string {
	return http.StatusText(int(c))
}

const (
	OK        HttpStatusCode = 200
	Created   HttpStatusCode = 201
	Accepted  HttpStatusCode = 202
	NoContent HttpStatusCode = 204

	MovedPermanently HttpStatusCode = 301
	Found            HttpStatusCode = 302
	NotModified      HttpStatusCode = 304

	BadRequest       HttpStatusCode = 400
	Unauthorized     HttpStatusCode = 401
	Forbidden        HttpStatusCode = 403
	NotFound         HttpStatusCode = 404
	MethodNotAllowed HttpStatusCode = 405
	Conflict         HttpStatusCode = 409
	TooManyRequests  HttpStatusCode = 429

	InternalServerError HttpStatusCode = 500
	NotImplemented      HttpStatusCode = 501
	BadGateway          HttpStatusCode = 502
	ServiceUnavailable  HttpStatusCode = 503
)
