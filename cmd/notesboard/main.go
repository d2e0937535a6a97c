package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/oliverisaac/goli"
	"github.com/oliverisaac/notesboard/store"
	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func init() {
	goli.InitLogrus(logrus.DebugLevel)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("no .env file loaded")
	}

	cfg, err := types.ConfigFromEnv()
	if err != nil {
		logrus.Fatal(errors.Wrap(err, "loading config"))
	}

	logCloser := setupLogging(cfg)
	defer logCloser.Close()

	st, err := store.Open(cfg)
	if err != nil {
		logrus.Fatal(errors.Wrap(err, "opening store"))
	}
	defer st.Close()

	e := newServer(cfg, st)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Listening on %s", cfg.ListenAddr)
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Error(errors.Wrap(err, "serving http"))
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.Error(errors.Wrap(err, "shutting down server"))
	}
}
