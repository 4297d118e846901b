package server

import "fmt"

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SESSION_READY ResponseCode = iota
	SESSION_REFUSED
	SESSION_FAILED
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SESSION_READY:
		return HTTP_SUCCESS
	case SESSION_REFUSED:
		return HTTP_BAD_REQUEST
	case SESSION_FAILED:
		return HTTP_SERVER_ERR
	default:
		return HTTP_SERVER_ERR
	}
}

func (ss SessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "SS_NEW"
	case SS_PLAY:
		return "SS_PLAY"
	case SS_OVER:
		return "SS_OVER"
	case SS_ERR:
		return "SS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}

type SessionAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
}

type SessionRequest struct {
	SessionAwaiting chan SessionAwaiting
}
