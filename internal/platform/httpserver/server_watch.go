package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	documentports "festboard/contexts/festival/document-service/ports"
)

type watchEvent struct {
	Revision  int64  `json:"revision"`
	UpdatedAt string `json:"updated_at"`
}

// handleWatchDocument streams document revisions as server-sent events.
// Every replace pushes one event; the current revision is sent on
// connect so late subscribers start from known state.
func (s *Server) handleWatchDocument(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeDocumentError(w, http.StatusInternalServerError, "streaming_unsupported", "response writer does not support streaming")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events := make(chan watchEvent, 16)
	cancel := s.document.Service.Watch(func(snapshot documentports.Snapshot) {
		select {
		case events <- toWatchEvent(snapshot):
		default:
			// A stalled client skips intermediate revisions; the next
			// event carries the latest state anyway.
		}
	})
	defer cancel()

	if snapshot, err := s.document.Service.Load(r.Context()); err == nil {
		writeSSE(w, flusher, toWatchEvent(snapshot))
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-events:
			writeSSE(w, flusher, event)
		}
	}
}

func toWatchEvent(snapshot documentports.Snapshot) watchEvent {
	return watchEvent{
		Revision:  snapshot.Revision,
		UpdatedAt: snapshot.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, event watchEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: document\ndata: %s\n\n", payload)
	flusher.Flush()
}
