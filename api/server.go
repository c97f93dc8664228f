// Package api exposes the graph catalog and layout engines over HTTP:
// GET/POST/DELETE /api/graphs[/{id}], POST /api/layout, POST /api/upload.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/graphlayout/formats"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layout"
	"github.com/katalvlaran/graphlayout/metrics"
	"github.com/katalvlaran/graphlayout/store"
)

// Server serves the REST API described above.
type Server struct {
	store    *store.Store
	validate *validator.Validate
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewServer builds a Server backed by st. recorder and logger may be nil;
// a nil logger falls back to slog.Default().
func NewServer(st *store.Store, recorder *metrics.Recorder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		store:    st,
		validate: validator.New(),
		recorder: recorder,
		logger:   logger,
	}
}

// Routes returns an http.Handler with every endpoint registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/graphs", s.handleGraphsCollection)
	mux.HandleFunc("/api/graphs/", s.handleGraphByID)
	mux.HandleFunc("/api/layout", s.handleApplyLayout)
	mux.HandleFunc("/api/upload", s.handleUpload)

	return mux
}

func (s *Server) handleGraphsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listGraphs(w, r)
	case http.MethodPost:
		s.saveGraph(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGraphByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/graphs/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing graph id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getGraph(w, id)
	case http.MethodDelete:
		s.deleteGraph(w, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) getGraph(w http.ResponseWriter, id string) {
	g, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGraphResponse(id, g))
}

func (s *Server) deleteGraph(w http.ResponseWriter, id string) {
	if err := s.store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "graph '" + id + "' deleted"})
}

func (s *Server) listGraphs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GraphListResponse{GraphIDs: s.store.List()})
}

func (s *Server) saveGraph(w http.ResponseWriter, r *http.Request) {
	var req SaveGraphRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := json.Marshal(map[string]interface{}{"nodes": req.Nodes, "edges": req.Edges})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	g, err := formats.ParseJSON(doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := req.ID
	if id == "" {
		id, err = s.store.SaveNew(g)
	} else {
		err = s.store.Save(id, g)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "graph '" + id + "' saved"})
}

func (s *Server) handleApplyLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ApplyLayoutRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	g, err := s.store.Get(req.GraphID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	opts, err := buildOptions(req.Algorithm, req.Options)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := layout.Apply(g, opts); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Save(req.GraphID, g); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.recorder != nil {
		s.recorder.Observe(g)
	}

	writeJSON(w, http.StatusOK, toGraphResponse(req.GraphID, g))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req UploadGraphFileRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var (
		g   *graph.Graph
		err error
	)
	switch req.FileType {
	case "json":
		g, err = formats.ParseJSON([]byte(req.FileContent))
	case "csv":
		g, err = formats.ParseCSV([]byte(req.FileContent))
	case "dot":
		g, err = formats.ParseDOT([]byte(req.FileContent))
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Save(req.ID, g); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("uploaded graph", "id", req.ID, "file_type", req.FileType, "nodes", g.NodeCount())
	writeJSON(w, http.StatusOK, toGraphResponse(req.ID, g))
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}

	return true
}

func toGraphResponse(id string, g *graph.Graph) GraphResponse {
	resp := GraphResponse{ID: id}
	for _, nid := range g.Nodes() {
		doc := nodeDoc{ID: nid}
		if p, ok := g.Position(nid); ok && p.Set {
			x, y := p.X, p.Y
			doc.X, doc.Y = &x, &y
		}
		resp.Nodes = append(resp.Nodes, doc)
	}
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		resp.Edges = append(resp.Edges, edgeDoc{ID: eid, Source: e.Source, Target: e.Target})
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: status})
}
