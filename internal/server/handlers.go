package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
	"github.com/vanshika/campusroute/internal/service"
)

// RouteFinder answers shortest-route queries.
type RouteFinder interface {
	ShortestRoute(source, destination string) (domain.Route, error)
}

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger *slog.Logger
	routes RouteFinder
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, routes RouteFinder) *APIHandlers {
	return &APIHandlers{
		logger: logger,
		routes: routes,
	}
}

type routeResponse struct {
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Distance    float64       `json:"distance"`
	Hops        int           `json:"hops"`
	Path        []string      `json:"path"`
	Legs        []legResponse `json:"legs"`
}

type legResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type errorResponse struct {
	Error string `json:"error"`
	Node  string `json:"node,omitempty"`
}

func (h *APIHandlers) handleShortestRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	source := query.Get("source")
	destination := query.Get("destination")
	if source == "" || destination == "" {
		writeError(w, http.StatusBadRequest, "source and destination are required")
		return
	}

	route, err := h.routes.ShortestRoute(source, destination)
	if err != nil {
		h.writeRouteError(w, err, source, destination)
		return
	}

	resp := routeResponse{
		Source:      route.Source,
		Destination: route.Destination,
		Distance:    route.Distance,
		Hops:        route.Hops(),
		Path:        route.Path,
		Legs:        make([]legResponse, 0, len(route.Legs)),
	}
	for _, leg := range route.Legs {
		resp.Legs = append(resp.Legs, legResponse{From: leg.From, To: leg.To, Distance: leg.Distance})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) writeRouteError(w http.ResponseWriter, err error, source, destination string) {
	var nodeErr *service.NodeError
	node := ""
	if errors.As(err, &nodeErr) {
		node = nodeErr.Node
	}

	switch {
	case errors.Is(err, pathfinding.ErrUnknownNode):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "no such node", Node: node})
	case errors.Is(err, pathfinding.ErrNoPath):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no path exists", Node: node})
	case errors.Is(err, service.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, "route graph not loaded")
	default:
		h.logger.Error("shortest route failed", "error", err, "source", source, "destination", destination)
		writeError(w, http.StatusInternalServerError, "failed to compute route")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
