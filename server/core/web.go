package core

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/veggie-arcade/airhockey-mp/assets"
)

// StartWeb serves the embedded static pages plus health and status
// endpoints on its own port, next to the websocket transport. Blocks.
func (s *Server) StartWeb(port uint) error {
	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(assets.WebFS()))
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("[server] http listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type statusResponse struct {
	Name  string `json:"name"`
	Rooms int    `json:"rooms"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(statusResponse{Name: s.name, Rooms: s.registry.RoomCount()}); err != nil {
		log.Printf("[server] status encode error: %v", err)
	}
}
