// Package server implements rstd's preview HTTP API: render rST
// source to HTML, fetch a cached revision by hash, and diff two
// revisions, mirroring the shape of periwiki's article/diff handlers
// but operating on content hashes instead of wiki article history.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/rstkit/rst/convert"
	"github.com/rstkit/rst/internal/store"
	"github.com/rstkit/rst/render"
	"github.com/rstkit/rst/resolve"
	"github.com/rstkit/rst/rstparse"
)

// App holds the preview server's dependencies.
type App struct {
	Store *store.Store
}

// NewRouter wires up rstd's routes: update docs/urls.md-equivalent
// knowledge by keeping this the single place routes are registered.
func (a *App) NewRouter() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(loggingMiddleware)

	r.HandleFunc("/render", a.renderHandler).Methods("POST")
	r.HandleFunc("/doc/{hash}", a.docHandler).Methods("GET")
	r.HandleFunc("/diff", a.diffHandler).Methods("GET")
	r.HandleFunc("/healthz", a.healthHandler).Methods("GET")

	return r
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, wrapped.status, time.Since(start))
	})
}

type renderResponse struct {
	Hash string `json:"hash"`
	HTML string `json:"html"`
}

// renderHandler parses and resolves the posted rST source, renders it
// to HTML, caches the result keyed by the source's content hash, and
// returns both.
func (a *App) renderHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	html, err := renderSource(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	hash, err := a.Store.Put(string(body), html)
	if err != nil {
		http.Error(w, "failed to cache revision", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{Hash: hash, HTML: html})
}

// docHandler returns a previously rendered revision by its content hash.
func (a *App) docHandler(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	rev, err := a.Store.Get(hash)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "revision not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load revision", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Hash: rev.Hash, HTML: rev.HTML})
}

type diffResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	HTML string `json:"diff_html"`
}

// diffHandler renders the rendered-HTML diff between two cached
// revisions, the way periwiki diffs two article revisions by hash.
func (a *App) diffHandler(w http.ResponseWriter, r *http.Request) {
	fromHash := r.URL.Query().Get("from")
	toHash := r.URL.Query().Get("to")
	if fromHash == "" || toHash == "" {
		http.Error(w, "both from and to query parameters are required", http.StatusBadRequest)
		return
	}

	from, err := a.Store.Get(fromHash)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "from revision not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "failed to load from revision", http.StatusInternalServerError)
		return
	}

	to, err := a.Store.Get(toHash)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "to revision not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "failed to load to revision", http.StatusInternalServerError)
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from.HTML, to.HTML, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	writeJSON(w, http.StatusOK, diffResponse{
		From: fromHash,
		To:   toHash,
		HTML: dmp.DiffPrettyHtml(diffs),
	})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func renderSource(src string) (string, error) {
	root, err := rstparse.Parse(src)
	if err != nil {
		return "", err
	}
	doc, err := convert.Document(root)
	if err != nil {
		return "", err
	}
	resolve.Resolve(doc)
	return render.HTML(doc, render.Options{}), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
