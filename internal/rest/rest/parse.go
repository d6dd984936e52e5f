package rest

import (
	"math"
	"strconv"

	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/structures"
	"github.com/plazahq/api/internal/utils"
)

type Param struct {
	v interface{}
}

func (c *Ctx) UserValue(key Key) *Param {
	return &Param{c.RequestCtx.UserValue(string(key))}
}

// FormValue reads a field from the request's POST body. An absent field
// yields a Param that fails every conversion.
func (c *Ctx) FormValue(name string) *Param {
	args := c.PostArgs()
	if !args.Has(name) {
		return &Param{nil}
	}

	return &Param{utils.B2S(args.Peek(name))}
}

// String returns a string value of the param
func (p *Param) String() (string, bool) {
	if p.v == nil {
		return "", false
	}
	var s string
	switch t := p.v.(type) {
	case string:
		s = t
	default:
		return "", false
	}

	return s, true
}

// Float64 parses the param into a finite float64
func (p *Param) Float64() (float64, error) {
	s, ok := p.String()
	if !ok {
		return 0, errors.ErrMissingRequiredField()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.ErrBadFloat().SetDetail(err.Error())
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.ErrBadFloat().SetDetail("value is not finite")
	}

	return f, nil
}

func (p *Param) Session() *structures.Session {
	var s *structures.Session
	switch t := p.v.(type) {
	case *structures.Session:
		s = t
	default:
		return nil
	}
	return s
}
