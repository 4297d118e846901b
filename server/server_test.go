package server

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/folio/engine"
	"github.com/zucenko/folio/model"
)

type memStore struct {
	mu     sync.Mutex
	values map[string]int
}

func (m *memStore) Get(ctx context.Context, key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(ctx context.Context, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func startServer(t *testing.T, store engine.ScoreStore) (*GameServer, *httptest.Server) {
	t.Helper()
	gs := NewGameServer(store)
	ctx, cancel := context.WithCancel(context.Background())
	go gs.Loop(ctx)
	mux := http.NewServeMux()
	mux.HandleFunc("/play", gs.HandleHttpCall())
	mux.HandleFunc("/highscore", gs.HandleHighScore())
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return gs, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func send(t *testing.T, conn *websocket.Conn, cm model.ClientMessage) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(cm))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()))
}

func receive(t *testing.T, conn *websocket.Conn) model.ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, r, err := conn.NextReader()
	require.NoError(t, err)
	var sm model.ServerMessage
	require.NoError(t, gob.NewDecoder(r).Decode(&sm))
	return sm
}

func TestSession_StartGame(t *testing.T) {
	gs, srv := startServer(t, &memStore{values: map[string]int{engine.HighScoreKey: 40}})
	conn := dial(t, srv)
	defer conn.Close()

	first := receive(t, conn)
	assert.Equal(t, model.IDLE, first.Snapshot.Phase)
	assert.Equal(t, model.GridSize, first.Snapshot.Grid)

	send(t, conn, model.ClientMessage{Kind: model.IN_START})
	var sm model.ServerMessage
	for i := 0; i < 5; i++ {
		sm = receive(t, conn)
		if sm.Snapshot.Phase == model.COUNTDOWN {
			break
		}
	}
	assert.Equal(t, model.COUNTDOWN, sm.Snapshot.Phase)
	assert.Equal(t, 3, sm.Snapshot.Countdown)
	assert.Equal(t, int32(1), gs.Active.Load())
}

func TestSession_EndsOnClose(t *testing.T) {
	gs, srv := startServer(t, nil)
	conn := dial(t, srv)
	receive(t, conn)
	require.Eventually(t, func() bool { return gs.Active.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()
	require.Eventually(t, func() bool { return gs.Active.Load() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestSession_BadFrameEndsSession(t *testing.T) {
	gs, srv := startServer(t, nil)
	conn := dial(t, srv)
	defer conn.Close()
	receive(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte("not gob")))
	require.Eventually(t, func() bool { return gs.Active.Load() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestAwaitSession_LateSessionFinished(t *testing.T) {
	gs := NewGameServer(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sess, err := gs.newSession(ctx)
	require.NoError(t, err)

	awaiting := make(chan SessionAwaiting, 1)
	_, ok := awaitSession(awaiting, time.Millisecond)
	require.False(t, ok)

	awaiting <- SessionAwaiting{ResponseCode: SESSION_READY, GameSession: sess}
	select {
	case id := <-gs.Finished:
		assert.Equal(t, sess.Id, id)
	case <-time.After(2 * time.Second):
		t.Fatal("late session was not finished")
	}
	assert.Equal(t, SS_ERR, sess.State())
	<-sess.Over
	assert.False(t, sess.Engine.OnStart())
}

func TestAwaitSession_InTime(t *testing.T) {
	awaiting := make(chan SessionAwaiting, 1)
	awaiting <- SessionAwaiting{ResponseCode: SESSION_REFUSED}
	sa, ok := awaitSession(awaiting, time.Second)
	require.True(t, ok)
	assert.Equal(t, SESSION_REFUSED, sa.ResponseCode)
}

func TestHandleHighScore(t *testing.T) {
	_, srv := startServer(t, &memStore{values: map[string]int{engine.HighScoreKey: 70}})
	res, err := http.Get(srv.URL + "/highscore")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var body map[string]int
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, 70, body["highScore"])
}

func TestResponseCode(t *testing.T) {
	assert.Equal(t, HTTP_SUCCESS, SESSION_READY.ToHttp())
	assert.Equal(t, HTTP_SERVER_ERR, SESSION_FAILED.ToHttp())
	assert.Equal(t, "SS_PLAY", SS_PLAY.Name())
}

func TestLastSeen(t *testing.T) {
	assert.Equal(t, "", lastSeen(0))
	assert.Contains(t, lastSeen(time.Now().Add(-time.Second).UnixNano()), "last ping")
}
