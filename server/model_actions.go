package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/engine"
	"github.com/zucenko/folio/model"
)

func NewGameServer(store engine.ScoreStore, opts ...engine.Option) *GameServer {
	return &GameServer{
		Sessions:        make(map[string]*GameSession),
		SessionRequests: make(chan SessionRequest),
		Finished:        make(chan string, 16),
		Upgrader:        &websocket.Upgrader{},
		Store:           store,
		EngineOptions:   opts,
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received from %s", r.RemoteAddr)

		awaiting := make(chan SessionAwaiting, 1)
		select {
		case s.SessionRequests <- SessionRequest{SessionAwaiting: awaiting}:
		case <-time.After(timeout):
			log.Warn("SessionRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		sa, ok := awaitSession(awaiting, timeout)
		if !ok {
			log.Warnf("HandleHttpCall SessionAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		if sa.ResponseCode != SESSION_READY {
			log.Warnf("HandleHttpCall session refused code:%d", sa.ResponseCode)
			w.WriteHeader(sa.ResponseCode.ToHttp())
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			sa.GameSession.finish(SS_ERR)
			return
		}
		defer con.Close()

		sa.GameSession.attach(con)
		log.Infof("HandleHttpCall session %s attached, waiting for it to end", sa.GameSession.Id)
		<-sa.GameSession.Over
	}
}

// awaitSession waits for the registry's answer. A session that arrives after
// the timeout is finished so the registry drops it.
func awaitSession(awaiting <-chan SessionAwaiting, timeout time.Duration) (SessionAwaiting, bool) {
	select {
	case sa := <-awaiting:
		return sa, true
	case <-time.After(timeout):
		go func() {
			sa := <-awaiting
			if sa.GameSession != nil {
				log.Warnf("awaitSession session %s arrived late, finishing", sa.GameSession.Id)
				sa.GameSession.finish(SS_ERR)
			}
		}()
		return SessionAwaiting{}, false
	}
}

// HandleHighScore answers {"highScore": n} from the store.
func (s *GameServer) HandleHighScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := 0
		if s.Store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			v, _, err := s.Store.Get(ctx, engine.HighScoreKey)
			if err != nil {
				log.Warnf("HandleHighScore store err %v", err)
				w.WriteHeader(HTTP_SERVER_ERR)
				return
			}
			value = v
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"highScore": value}); err != nil {
			log.Warnf("HandleHighScore write err %v", err)
		}
	}
}

// Loop owns the session registry until ctx ends.
func (s *GameServer) Loop(ctx context.Context) {
	log.Printf("GameServer.Loop starting")
	for {
		select {
		case <-ctx.Done():
			log.Printf("GameServer.Loop stopping, %d sessions open", len(s.Sessions))
			for id, gs := range s.Sessions {
				gs.Engine.Close()
				delete(s.Sessions, id)
			}
			s.Active.Store(0)
			return
		case req := <-s.SessionRequests:
			gs, err := s.newSession(ctx)
			if err != nil {
				log.Errorf("GameServer.Loop cannot create session %v", err)
				req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_FAILED}
				continue
			}
			s.Sessions[gs.Id] = gs
			s.Active.Store(int32(len(s.Sessions)))
			log.Infof("GameServer.Loop session %s created", gs.Id)
			req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_READY, GameSession: gs}
		case id := <-s.Finished:
			if gs, ok := s.Sessions[id]; ok {
				log.Infof("GameServer.Loop session %s ended %s, in:%d out:%d pings:%d%s",
					id, gs.State().Name(), gs.DebugInMessages.Load(), gs.DebugOutMessages.Load(),
					gs.DebugPings.Load(), lastSeen(gs.DebugLastPing.Load()))
				delete(s.Sessions, id)
				s.Active.Store(int32(len(s.Sessions)))
			}
		}
	}
}

func lastSeen(nanos int64) string {
	if nanos == 0 {
		return ""
	}
	return fmt.Sprintf(" last ping %s ago", time.Since(time.Unix(0, nanos)).Round(time.Millisecond))
}

func (s *GameServer) newSession(ctx context.Context) (*GameSession, error) {
	id := uuid.NewString()
	opts := append([]engine.Option{}, s.EngineOptions...)
	opts = append(opts, engine.WithLogger(log.WithField("session", id)))
	e, err := engine.New(s.Store, opts...)
	if err != nil {
		return nil, err
	}
	go e.Loop(ctx)
	return &GameSession{
		Id:         id,
		Engine:     e,
		Over:       make(chan struct{}),
		state:      SS_NEW,
		finished:   s.Finished,
		serverDone: ctx.Done(),
	}, nil
}

func (gs *GameSession) State() SessionState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.state
}

func (gs *GameSession) setState(state SessionState) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.state = state
}

func (gs *GameSession) attach(conn *websocket.Conn) {
	gs.Conn = conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			gs.DebugLastPing.Store(time.Now().UnixNano())
			gs.DebugPings.Add(1)
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	gs.setState(SS_PLAY)
	updates, cancel := gs.Engine.Subscribe()
	// start processing input from the client
	go gs.LoopChannelRead()
	// start sending snapshots
	go gs.LoopChannelWrite(updates, cancel)
}

// finish ends the session once: the engine stops and the server forgets it.
func (gs *GameSession) finish(state SessionState) {
	gs.once.Do(func() {
		gs.setState(state)
		gs.Engine.Close()
		close(gs.Over)
		select {
		case gs.finished <- gs.Id:
		case <-gs.serverDone:
		}
	})
}

func (gs *GameSession) LoopChannelRead() {
	log.Printf("LoopChannelRead %s STARTED", gs.Id)
	for {
		_, r, err := gs.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				gs.finish(SS_OVER)
			} else {
				log.Printf("LoopChannelRead err reading message from Conn %v", err)
				gs.finish(SS_ERR)
			}
			break
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			gs.finish(SS_ERR)
			break
		}
		gs.DebugInMessages.Add(1)
		gs.DebugLastMessage.Store(time.Now().UnixNano())
		accepted := gs.Engine.Apply(cm)
		log.Debugf("LoopChannelRead %s %s accepted:%v", gs.Id, cm.Kind.Name(), accepted)
	}
	log.Printf("LoopChannelRead %s ENDED", gs.Id)
}

// LoopChannelWrite sends every snapshot it gets and a closing frame once the
// engine has stopped.
func (gs *GameSession) LoopChannelWrite(updates <-chan model.Snapshot, cancel func()) {
	log.Printf("LoopChannelWrite %s STARTED", gs.Id)
	defer cancel()
	for snap := range updates {
		if err := gs.write(model.ServerMessage{Snapshot: snap}); err != nil {
			log.Warnf("LoopChannelWrite %s cant write %v", gs.Id, err)
			gs.finish(SS_ERR)
			return
		}
	}
	if err := gs.write(model.ServerMessage{Snapshot: gs.Engine.Snapshot(), Closing: true}); err != nil {
		log.Debugf("LoopChannelWrite %s closing frame not sent %v", gs.Id, err)
	}
	gs.finish(SS_OVER)
	log.Printf("LoopChannelWrite %s ENDED", gs.Id)
}

func (gs *GameSession) write(mes model.ServerMessage) error {
	w, err := gs.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	gs.DebugOutMessages.Add(1)
	return nil
}
