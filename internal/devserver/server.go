// Package devserver hosts the gateway contract over HTTP for local
// development and end-to-end tests: a bearer-checked key-value endpoint
// backed by the in-memory store.
package devserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-dynamicform/pkg/storage"
	"github.com/goliatone/go-dynamicform/pkg/storage/memory"
)

// Option configures the server.
type Option func(*Server)

// WithToken enables bearer-token checking. Without it the server accepts
// every request, which is only acceptable on a loopback dev box.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

// WithStore swaps the backing store.
func WithStore(store *memory.Store) Option {
	return func(s *Server) {
		if store != nil {
			s.store = store
		}
	}
}

// Server exposes GET/PUT/DELETE /kv/{key}.
type Server struct {
	store *memory.Store
	token string
}

// New builds a dev server with an empty in-memory store.
func New(options ...Option) *Server {
	s := &Server{store: memory.New()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Router returns the configured HTTP router.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	kv := r.PathPrefix("/kv").Subrouter()
	kv.Use(s.authMiddleware)
	kv.HandleFunc("/{key}", s.handleGet).Methods(http.MethodGet)
	kv.HandleFunc("/{key}", s.handlePut).Methods(http.MethodPut)
	kv.HandleFunc("/{key}", s.handleDelete).Methods(http.MethodDelete)
	return r
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	value, err := s.store.Get(r.Context(), key)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(value)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.Put(r.Context(), key, body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if err := s.store.Delete(r.Context(), key); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
