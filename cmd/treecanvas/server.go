package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type application struct {
	s *Session
}

type nodeResponse struct {
	Key int     `json:"key"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	R   float64 `json:"r"`
}

// NewRouter routes the HTTP API of s.
func NewRouter(s *Session) http.Handler {
	app := &application{s}
	r := mux.NewRouter()
	r.HandleFunc("/v1/keys", app.keysHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/keys/{key}", app.insertHandler).Methods(http.MethodPost)
	r.HandleFunc("/v1/keys/{key}", app.removeHandler).Methods(http.MethodDelete)
	r.HandleFunc("/v1/tree.svg", app.svgHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/redraw", app.redrawHandler).Methods(http.MethodPost)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Log.WithError(err).Warn("cannot write response")
	}
}

func (app *application) key(w http.ResponseWriter, r *http.Request) (int, bool) {
	k, err := ParseKey(mux.Vars(r)["key"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return k, true
}

func (app *application) insertHandler(w http.ResponseWriter, r *http.Request) {
	k, ok := app.key(w, r)
	if !ok {
		return
	}
	at := app.s.Insert(k)
	writeJSON(w, http.StatusCreated, nodeResponse{k, at.X, at.Y, at.R})
}

// removing an absent key succeeds too.
func (app *application) removeHandler(w http.ResponseWriter, r *http.Request) {
	k, ok := app.key(w, r)
	if !ok {
		return
	}
	app.s.Remove(k)
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) keysHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.s.Keys())
}

func (app *application) svgHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := app.s.WriteSVG(w); err != nil {
		Log.WithError(err).Warn("cannot write svg")
	}
}

func (app *application) redrawHandler(w http.ResponseWriter, r *http.Request) {
	app.s.Redraw()
	w.WriteHeader(http.StatusNoContent)
}

// serve h on addr until ctx is done.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		Log.WithFields(logrus.Fields{"addr": addr}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "cannot serve")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
