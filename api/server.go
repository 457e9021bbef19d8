package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/matt-g-everett/ledseq/tween"
)

// Server serves diagnostic views of the animation engine.
type Server struct {
	sched *tween.Scheduler
}

// NewServer creates a Server over the given scheduler.
func NewServer(sched *tween.Scheduler) *Server {
	s := new(Server)
	s.sched = sched
	return s
}

type timelineStatus struct {
	ElapsedMs int64  `json:"elapsedMs"`
	TotalMs   int64  `json:"totalMs"`
	Mode      string `json:"mode"`
}

type timelinesResponse struct {
	Count     int              `json:"count"`
	Timelines []timelineStatus `json:"timelines"`
}

func (s *Server) handleTimelines(w http.ResponseWriter, r *http.Request) {
	active := s.sched.Active()
	resp := timelinesResponse{
		Count:     len(active),
		Timelines: make([]timelineStatus, 0, len(active)),
	}
	for _, tl := range active {
		resp.Timelines = append(resp.Timelines, timelineStatus{
			ElapsedMs: tl.Elapsed().Milliseconds(),
			TotalMs:   tl.Total().Milliseconds(),
			Mode:      tl.Mode().String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warn().Err(err).Msg("Failed to write timeline status")
	}
}

// Serve exposes the debug endpoints.
func (s *Server) Serve() {
	http.HandleFunc("/debug/timelines", s.handleTimelines)

	log.Info().Msg("Listening...")
	http.ListenAndServe(":3000", nil)
}
