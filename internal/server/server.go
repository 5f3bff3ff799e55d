package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/koppilab/cryodaq-go/acquire"
	"github.com/koppilab/cryodaq-go/models"
	serialpkg "github.com/koppilab/cryodaq-go/serial"
	"github.com/koppilab/cryodaq-go/thermo"
)

// Server exposes the acquisition pipeline over HTTP, with processed
// batches streamed to live-plot clients over a websocket.
type Server struct {
	mux *http.ServeMux

	store *ConfigStore
	sess  *AcqSession

	wsData *WSHub
}

func New() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		store:  NewConfigStore(),
		sess:   &AcqSession{},
		wsData: NewWSHub(),
	}

	// API
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/upload/config", s.handleUploadConfig)
	s.mux.HandleFunc("/api/curves", s.handleCurves)
	s.mux.HandleFunc("/api/start", s.handleStart)
	s.mux.HandleFunc("/api/stop", s.handleStop)

	// WS
	s.mux.HandleFunc("/ws/data", s.handleWSData)

	// Static frontend
	s.mux.Handle("/", http.FileServer(http.Dir("./web")))

	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	b, err := io.ReadAll(io.LimitReader(r.Body, 2<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, 200, HealthResponse{OK: true, Timestamp: time.Now()})
}

func (s *Server) handleCurves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	names := thermo.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	s.writeJSON(w, 200, CurvesResponse{Curves: out})
}

func (s *Server) handleUploadConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	f, _, err := fileFromMultipart(r, "file")
	if err != nil {
		s.writeJSON(w, 400, APIError{Error: err.Error()})
		return
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, 4<<20))
	if err != nil {
		s.writeJSON(w, 400, APIError{Error: err.Error()})
		return
	}
	p, err := models.Decode(raw)
	if err != nil {
		s.writeJSON(w, 400, APIError{Error: err.Error()})
		return
	}
	rec, err := s.store.Put(raw, p)
	if err != nil {
		s.writeJSON(w, 500, APIError{Error: err.Error()})
		return
	}
	s.writeJSON(w, 200, UploadResponse{ConfigID: rec.ID})
}

func fileFromMultipart(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		return nil, nil, err
	}
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	return f, hdr, nil
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req StartRequest
	if err := s.readJSON(r, &req); err != nil {
		s.writeJSON(w, 400, APIError{Error: err.Error()})
		return
	}
	rec, ok := s.store.Get(req.ConfigID)
	if !ok {
		s.writeJSON(w, 404, APIError{Error: "configId not found (upload config first)"})
		return
	}
	p := rec.P

	s.sess.mu.Lock()
	defer s.sess.mu.Unlock()
	s.sess.cancelLocked()
	s.sess.disconnectLocked()

	var src acquire.Source
	port := ""
	if req.Sim || p.SERIAL == nil {
		src = acquire.NewSimSource(p, time.Now().UnixNano())
	} else {
		if strings.TrimSpace(p.SERIAL.PORT) == "" {
			detected := serialpkg.AutoDetectPort(p)
			if detected == "" {
				s.writeJSON(w, 400, APIError{Error: "could not auto-detect serial port"})
				return
			}
			p.SERIAL.PORT = detected
		}
		bridge, err := serialpkg.Open(p.SERIAL, p.CHANNELS)
		if err != nil {
			s.writeJSON(w, 400, APIError{Error: err.Error()})
			return
		}
		if _, _, _, err := bridge.GetVersion(); err != nil {
			_ = bridge.Close()
			s.writeJSON(w, 400, APIError{Error: "bridge version probe failed: " + err.Error()})
			return
		}
		s.sess.bridge = bridge
		port = p.SERIAL.PORT
		src = acquire.NewBridgeSource(bridge, p.FREQ, p.NSAMPLES)
	}

	var logger *acquire.Logger
	if p.LOGFILE != "" {
		var err error
		logger, err = acquire.NewLogger(p)
		if err != nil {
			s.sess.disconnectLocked()
			s.writeJSON(w, 500, APIError{Error: err.Error()})
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.sess.opCancel = cancel
	s.sess.configID = rec.ID
	s.sess.params = p

	labels := append([]string{"Time"}, p.Labels()...)
	cfg := acquire.Config{
		Multipliers: p.Multipliers(),
		ThermCh:     p.THERMCH,
		Curve:       thermo.Name(p.CALIB),
	}

	go func() {
		err := acquire.Run(ctx, src, p, func() acquire.Config { return cfg }, func(b acquire.Batch) {
			if logger != nil {
				if werr := logger.WriteBatch(b); werr != nil {
					log.Printf("log write: %v", werr)
				}
			}
			s.wsData.Broadcast(WSMessage{Type: "batch", Data: BatchDTO{Labels: labels, Rows: b.Rows}})
		})
		if logger != nil {
			_ = logger.Close()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			s.wsData.Broadcast(WSMessage{Type: "error", Data: map[string]string{"error": err.Error()}})
			return
		}
		s.wsData.Broadcast(WSMessage{Type: "done", Data: map[string]bool{"ok": true}})
	}()

	s.writeJSON(w, 200, StartResponse{Running: true, Port: port, Labels: labels})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	s.sess.mu.Lock()
	defer s.sess.mu.Unlock()
	s.sess.cancelLocked()
	s.sess.disconnectLocked()
	s.writeJSON(w, 200, map[string]bool{"ok": true})
}
