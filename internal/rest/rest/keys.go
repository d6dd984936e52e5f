package rest

type Key string

const (
	SessionKey Key = "CURRENT_SESSION"
)
