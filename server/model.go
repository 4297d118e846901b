package server

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/zucenko/folio/engine"
)

type GameServer struct {
	Sessions        map[string]*GameSession
	SessionRequests chan SessionRequest
	Finished        chan string
	Upgrader        *websocket.Upgrader
	Store           engine.ScoreStore
	EngineOptions   []engine.Option
	Active          atomic.Int32
}

type SessionState int

const (
	SS_NEW SessionState = iota + 1
	SS_PLAY
	SS_OVER
	SS_ERR
)

// GameSession is one websocket client playing on its own engine.
type GameSession struct {
	Id     string
	Engine *engine.Engine
	Conn   *websocket.Conn
	Over   chan struct{}

	mu         sync.Mutex
	state      SessionState
	finished   chan<- string
	serverDone <-chan struct{}
	once       sync.Once

	DebugInMessages  atomic.Int64
	DebugOutMessages atomic.Int64
	DebugLastMessage atomic.Int64
	DebugLastPing    atomic.Int64
	DebugPings       atomic.Int64
}
