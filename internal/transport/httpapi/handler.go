package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/logging"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
	"github.com/thenoetrevino/fete/internal/store"
)

// Handler serves the record API over a record service
type Handler struct {
	svc     recordservice.Service
	adapter *Adapter
	logger  *zap.Logger
	started time.Time
}

// NewHandler creates the API handler
func NewHandler(svc recordservice.Service, adapter *Adapter, logger *zap.Logger) *Handler {
	if adapter == nil {
		adapter = NewAdapter(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, adapter: adapter, logger: logger, started: time.Now()}
}

// Health reports that the server is up
func (h *Handler) Health(ctx *fasthttp.RequestCtx) {
	_, cancel := h.adapter.Attach(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	}, "")
}

// Create adds a record of the kind named in the path
func (h *Handler) Create(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.adapter.Attach(ctx)
	defer cancel()

	kind, ok := h.kind(ctx)
	if !ok {
		return
	}

	var req AddRecordRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		logging.WithRequestID(stdCtx, h.logger).Debug("malformed body", zap.Error(err))
		h.respondJSON(ctx, http.StatusBadRequest,
			NewError("INVALID_BODY", err.Error(), "Request body must be a JSON object."))
		return
	}

	var (
		rec *models.Record
		err error
	)
	if kind == models.KindEvent {
		var ev models.Event
		if req.Event != nil {
			ev = *req.Event
		}
		rec, err = h.svc.AddEvent(stdCtx, recordservice.AddEventRequest{ID: req.ID, Event: ev})
	} else {
		rec, err = h.svc.Add(stdCtx, recordservice.AddRequest{Kind: kind, ID: req.ID, Name: req.Name})
	}
	if err != nil {
		h.respondError(ctx, kind, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, rec, notify.Added(kind).Message)
}

// Get returns one record
func (h *Handler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.adapter.Attach(ctx)
	defer cancel()

	kind, ok := h.kind(ctx)
	if !ok {
		return
	}

	rec, err := h.svc.Get(stdCtx, kind, pathID(ctx))
	if err != nil {
		h.respondError(ctx, kind, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, rec, notify.Details(rec).Title)
}

// Delete removes one record
func (h *Handler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.adapter.Attach(ctx)
	defer cancel()

	kind, ok := h.kind(ctx)
	if !ok {
		return
	}

	id := pathID(ctx)
	if err := h.svc.Delete(stdCtx, kind, id); err != nil {
		h.respondError(ctx, kind, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, &models.Record{Kind: kind, ID: id}, notify.Deleted(kind).Message)
}

// kind parses the {kind} path parameter, answering 400 when it is unknown
func (h *Handler) kind(ctx *fasthttp.RequestCtx) (models.Kind, bool) {
	name, _ := ctx.UserValue("kind").(string)
	kind, err := models.ParseKind(name)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest,
			NewError("UNKNOWN_KIND", err.Error(), "Unknown record kind."))
		return "", false
	}
	return kind, true
}

func pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func (h *Handler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h *Handler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data any, message string) {
	h.respondJSON(ctx, status, NewSuccess(data, message))
}

func (h *Handler) respondError(ctx *fasthttp.RequestCtx, kind models.Kind, err error) {
	status, code := mapError(err)
	h.respondJSON(ctx, status, NewError(code, err.Error(), notify.Failed(kind, err).Message))
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnknownKind):
		return http.StatusBadRequest, "UNKNOWN_KIND"
	case errors.Is(err, store.ErrEmptyID):
		return http.StatusBadRequest, "EMPTY_ID"
	case errors.Is(err, store.ErrInvalidValue):
		return http.StatusBadRequest, "INVALID_VALUE"
	case errors.Is(err, recordservice.ErrEventRequiresDetails):
		return http.StatusBadRequest, "EVENT_REQUIRES_DETAILS"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, store.ErrDuplicateKey):
		return http.StatusConflict, "DUPLICATE_ID"
	case errors.Is(err, recordservice.ErrStillReferenced):
		return http.StatusConflict, "STILL_REFERENCED"
	case errors.Is(err, recordservice.ErrUnknownReference):
		return http.StatusUnprocessableEntity, "UNKNOWN_REFERENCE"
	case errors.Is(err, store.ErrPersistence):
		return http.StatusServiceUnavailable, "PERSISTENCE_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
