package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/config"
	"github.com/zucenko/folio/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	if err := cfg.SetupLogging(); err != nil {
		log.Fatalln(err)
	}
	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()
	opts, err := cfg.EngineOptions()
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := Server{
		GameServer: server.NewGameServer(store, opts...),
	}
	go s.GameServer.Loop(ctx)
	s.routes()

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: s.router}
	go func() {
		<-ctx.Done()
		log.Printf("shutting down")
		httpServer.Shutdown(context.Background())
	}()
	log.Printf("listening on :%s, store %s %s", cfg.Port, cfg.Store, cfg.StorePath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
