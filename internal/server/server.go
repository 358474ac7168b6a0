// Package server exposes the conversion and matching engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/match"
	"github.com/tintlab/tintmatch/internal/project"
)

// Server routes API requests to the matching engine and the project store.
type Server struct {
	store *project.Store
}

// New creates a Server backed by the given project store.
func New(store *project.Store) *Server {
	return &Server{store: store}
}

// Handler returns the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/convert/lab", s.handleConvertLAB)
		r.Post("/convert/rgb", s.handleConvertRGB)
		r.Post("/compare", s.handleCompare)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetProject)
				r.Delete("/", s.handleDeleteProject)
				r.Put("/reference", s.handleSetReference)
				r.Post("/samples", s.handleAddSample)
			})
		})
	})

	return r
}

// rgbPayload is an RGB triplet on the wire. Channels are ints so that
// out-of-range input is rejected explicitly rather than truncated.
type rgbPayload struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (p rgbPayload) toRGB() (color.RGB, error) {
	return color.New(p.R, p.G, p.B)
}

type labPayload struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func labResponse(l color.LAB) labPayload {
	return labPayload{L: l.L, A: l.A, B: l.B}
}

type rgbResponse struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

func (s *Server) handleConvertLAB(w http.ResponseWriter, r *http.Request) {
	var req rgbPayload
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rgb, err := req.toRGB()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, labResponse(rgb.ToLAB()))
}

func (s *Server) handleConvertRGB(w http.ResponseWriter, r *http.Request) {
	var req labPayload
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rgb := color.LAB{L: req.L, A: req.A, B: req.B}.ToRGB()
	writeJSON(w, http.StatusOK, rgbResponse{R: rgb.R, G: rgb.G, B: rgb.B, Hex: rgb.Hex()})
}

type compareRequest struct {
	Reference rgbPayload `json:"reference"`
	Sample    rgbPayload `json:"sample"`
}

type compareResponse struct {
	DeltaE         float64    `json:"delta_e"`
	Verdict        string     `json:"verdict"`
	Recommendation string     `json:"recommendation"`
	ReferenceLAB   labPayload `json:"reference_lab"`
	SampleLAB      labPayload `json:"sample_lab"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ref, err := req.Reference.toRGB()
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reference: %w", err))
		return
	}
	sample, err := req.Sample.toRGB()
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("sample: %w", err))
		return
	}

	cmp := match.Compare(ref, sample)
	writeJSON(w, http.StatusOK, compareResponse{
		DeltaE:         cmp.DeltaE,
		Verdict:        cmp.Verdict,
		Recommendation: cmp.Recommendation,
		ReferenceLAB:   labResponse(cmp.Reference),
		SampleLAB:      labResponse(cmp.Sample),
	})
}

type createProjectRequest struct {
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"` // hex, optional
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var ref *color.RGB
	if req.Reference != "" {
		c, err := color.ParseHex(req.Reference)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		ref = &c
	}

	p, err := s.store.Create(req.Name, ref)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"projects": names})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "name")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type referenceRequest struct {
	Hex string `json:"hex"`
}

func (s *Server) handleSetReference(w http.ResponseWriter, r *http.Request) {
	var req referenceRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := color.ParseHex(req.Hex)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.store.SetReference(chi.URLParam(r, "name"), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type addSampleRequest struct {
	Hex string `json:"hex"`
}

type addSampleResponse struct {
	Project *project.Project `json:"project"`
	Sample  project.Sample   `json:"sample"`
}

func (s *Server) handleAddSample(w http.ResponseWriter, r *http.Request) {
	var req addSampleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := color.ParseHex(req.Hex)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, sample, err := s.store.AddSample(chi.URLParam(r, "name"), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addSampleResponse{Project: p, Sample: sample})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeStoreError maps project store errors onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, project.ErrExists):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, project.ErrNoReference), errors.Is(err, project.ErrInvalidName):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
