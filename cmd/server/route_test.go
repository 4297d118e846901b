package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/folio/server"
	"github.com/zucenko/folio/store"
)

func TestRoutes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := Server{GameServer: server.NewGameServer(store.NewMemory())}
	go s.GameServer.Loop(ctx)
	s.routes()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", URI_HIGHSCORE, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"highScore":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("POST", URI_WS, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
