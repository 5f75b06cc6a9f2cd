package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/okian/arcstar/internal/adapters/mq/queue"
	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
)

// maxBodyBytes bounds the size of a POST /events body.
const maxBodyBytes = 8 << 20

// eventRequest mirrors the JSON shape of one event.
type eventRequest struct {
	Row      *int64 `json:"row"`
	Col      *int64 `json:"col"`
	Polarity int64  `json:"polarity"`
	TS       *int64 `json:"ts"`
}

func (e eventRequest) validate() error {
	switch {
	case e.Row == nil:
		return errors.New("missing row")
	case e.Col == nil:
		return errors.New("missing col")
	case e.TS == nil:
		return errors.New("missing ts")
	case *e.Row < 0 || *e.Row > math.MaxUint16:
		return fmt.Errorf("row %d out of range", *e.Row)
	case *e.Col < 0 || *e.Col > math.MaxUint16:
		return fmt.Errorf("col %d out of range", *e.Col)
	case e.Polarity != 0 && e.Polarity != 1:
		return fmt.Errorf("polarity %d must be 0 or 1", e.Polarity)
	case *e.TS <= 0 || *e.TS > math.MaxUint32:
		return fmt.Errorf("ts %d out of range", *e.TS)
	}
	return nil
}

func (e eventRequest) event() model.Event {
	return model.Event{
		Row:       uint16(*e.Row),    //nolint:gosec // validated
		Col:       uint16(*e.Col),    //nolint:gosec // validated
		Polarity:  uint8(e.Polarity), //nolint:gosec // validated
		Timestamp: model.Time(*e.TS), //nolint:gosec // validated
	}
}

// decodeEvents reads either a single event object or an array of them.
func decodeEvents(r io.Reader) ([]model.Event, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}

	var reqs []eventRequest
	if body[0] == '[' {
		if err := json.Unmarshal(body, &reqs); err != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
		if len(reqs) == 0 {
			return nil, errors.New("empty event batch")
		}
	} else {
		var req eventRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		reqs = []eventRequest{req}
	}

	events := make([]model.Event, 0, len(reqs))
	for i, req := range reqs {
		if err := req.validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, req.event())
	}
	return events, nil
}

type ackResponse struct {
	Status   string `json:"status"`
	Accepted int    `json:"accepted"`
}

// EventsHandler handles event requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandlePostEvents handles POST /events requests. Events of a batch are
// queued in order; on the first failure the remaining events are dropped
// and the error reports how many were accepted.
func (h *EventsHandler) HandlePostEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_events"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	events, err := decodeEvents(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	for i, evt := range events {
		err := h.deps.Submit(r.Context(), evt)
		if err == nil {
			continue
		}
		err = fmt.Errorf("accepted %d of %d: %w", i, len(events), err)
		switch {
		case errors.Is(err, sae.ErrOutOfBounds):
			writeError(w, http.StatusBadRequest, "out_of_bounds", WrapKind(op, ErrBadRequest, err))
		case queue.IsBackpressure(err):
			writeError(w, http.StatusTooManyRequests, "backpressure", WrapKind(op, ErrBackpressure, err))
		default:
			writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		}
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Accepted: len(events)})
}
