package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/instance"
	"github.com/plazahq/api/internal/structures"
)

type Options struct {
	Secret string
}

type claims struct {
	UserID string `json:"uid"`
	Color  string `json:"col"`
	jwt.RegisteredClaims
}

type sessionsInst struct {
	secret []byte

	// verified memoizes token -> session so polling clients don't pay
	// for HMAC verification on every request
	verified *cache.Cache
}

func New(opt Options) (instance.Sessions, error) {
	if opt.Secret == "" {
		return nil, fmt.Errorf("session: a signing secret is required")
	}

	return &sessionsInst{
		secret:   []byte(opt.Secret),
		verified: cache.New(time.Minute*10, time.Minute*30),
	}, nil
}

func (s *sessionsInst) Issue() (structures.Session, string, error) {
	sess := structures.Session{
		UserID: uuid.NewString(),
		Color:  fmt.Sprintf("#%06x", rand.Intn(0x1000000)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: sess.UserID,
		Color:  sess.Color,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return structures.Session{}, "", err
	}

	s.verified.SetDefault(signed, sess)

	return sess, signed, nil
}

func (s *sessionsInst) Verify(token string) (structures.Session, error) {
	if token == "" {
		return structures.Session{}, errors.ErrUnauthorized()
	}

	if v, ok := s.verified.Get(token); ok {
		return v.(structures.Session), nil
	}

	c := &claims{}

	tok, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return structures.Session{}, errors.ErrUnauthorized().SetFields(errors.Fields{
			"message": "Bad Token",
		})
	}

	if c.UserID == "" {
		return structures.Session{}, errors.ErrUnauthorized().SetFields(errors.Fields{
			"message": "Bad Token",
		})
	}

	sess := structures.Session{
		UserID: c.UserID,
		Color:  c.Color,
	}

	s.verified.SetDefault(token, sess)

	return sess, nil
}
