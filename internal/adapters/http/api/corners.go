package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arcstar/internal/adapters/repository"
)

const defaultCornerLimit = 10

// cornerResponse is the JSON shape of a stored corner.
type cornerResponse struct {
	ID         string    `json:"id"`
	Row        uint16    `json:"row"`
	Col        uint16    `json:"col"`
	Polarity   uint8     `json:"polarity"`
	TS         uint32    `json:"ts"`
	DetectedAt time.Time `json:"detected_at"`
	Descriptor []float64 `json:"descriptor,omitempty"`
}

func newCornerResponse(c repository.Corner) cornerResponse {
	out := cornerResponse{
		ID:         c.ID.String(),
		Row:        c.Event.Row,
		Col:        c.Event.Col,
		Polarity:   c.Event.Polarity,
		TS:         c.Event.Timestamp,
		DetectedAt: c.DetectedAt,
	}
	if c.Event.Descriptor != nil {
		out.Descriptor = append([]float64(nil), c.Event.Descriptor[:]...)
	}
	return out
}

type matchResponse struct {
	Corner   cornerResponse `json:"corner"`
	Likeness float64        `json:"likeness"`
}

// CornersHandler serves detected corners.
type CornersHandler struct {
	deps     CornerDependencies
	maxLimit int
}

// NewCornersHandler creates a corners handler. Limits above maxLimit are
// rejected.
func NewCornersHandler(deps CornerDependencies, maxLimit int) *CornersHandler {
	if maxLimit < 1 {
		maxLimit = defaultCornerLimit
	}
	return &CornersHandler{deps: deps, maxLimit: maxLimit}
}

// HandleListCorners handles GET /corners?limit=N requests.
func (h *CornersHandler) HandleListCorners(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_corners"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := min(defaultCornerLimit, h.maxLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "bad_request",
				WrapKind(op, ErrBadRequest, fmt.Errorf("limit must be between 1 and %d", h.maxLimit)))
			return
		}
		limit = n
	}

	corners, err := h.deps.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	out := make([]cornerResponse, 0, len(corners))
	for _, c := range corners {
		out = append(out, newCornerResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetCorner handles GET /corners/{id} requests.
func (h *CornersHandler) HandleGetCorner(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_corner"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	corner, err := h.deps.Corner(r.Context(), id)
	if err != nil {
		// If upstream exposes not-found, translate; otherwise 500
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newCornerResponse(corner))
}

// HandleMatch handles POST /corners/match requests. The body is an event
// carrying a descriptor, as returned by POST /detect.
func (h *CornersHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_corner"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req matchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	probe, err := req.probe()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	corner, likeness, err := h.deps.Match(r.Context(), probe)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, matchResponse{Corner: newCornerResponse(corner), Likeness: likeness})
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, repository.ErrNoDescriptor):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
