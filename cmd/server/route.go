package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_HIGHSCORE = "/highscore"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_HIGHSCORE, s.GameServer.HandleHighScore())
}
