package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
)

// matchRequest is an event with the descriptor to match against.
type matchRequest struct {
	eventRequest
	Descriptor []float64 `json:"descriptor"`
}

func (m matchRequest) probe() (model.Event, error) {
	if err := m.validate(); err != nil {
		return model.Event{}, err
	}
	if len(m.Descriptor) != model.DescriptorLen {
		return model.Event{}, fmt.Errorf("descriptor must have %d values, got %d", model.DescriptorLen, len(m.Descriptor))
	}
	for i, v := range m.Descriptor {
		if !(v >= 0 && v <= 1) {
			return model.Event{}, fmt.Errorf("descriptor[%d] = %g must be in [0, 1]", i, v)
		}
	}
	evt := m.event()
	var d model.Descriptor
	copy(d[:], m.Descriptor)
	evt.Descriptor = &d
	return evt, nil
}

type detectResponse struct {
	Outcome    string    `json:"outcome"`
	Corner     bool      `json:"corner"`
	Descriptor []float64 `json:"descriptor,omitempty"`
}

// DetectHandler classifies single events against the live surface.
type DetectHandler struct {
	deps DetectDependencies
}

// NewDetectHandler creates a new detect handler.
func NewDetectHandler(deps DetectDependencies) *DetectHandler {
	return &DetectHandler{deps: deps}
}

// HandleDetect handles POST /detect requests. The event is not stamped on
// the surface.
func (h *DetectHandler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	const op = "api.detect"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req eventRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	evt, outcome, err := h.deps.Detect(r.Context(), req.event())
	if err != nil {
		if errors.Is(err, sae.ErrOutOfBounds) {
			writeError(w, http.StatusBadRequest, "out_of_bounds", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}

	resp := detectResponse{Outcome: outcome.String(), Corner: evt.Descriptor != nil}
	if evt.Descriptor != nil {
		resp.Descriptor = append([]float64(nil), evt.Descriptor[:]...)
	}
	writeJSON(w, http.StatusOK, resp)
}
