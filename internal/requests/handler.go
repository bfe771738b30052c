package requests

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"leadhub-backend/internal/httpx"
	"leadhub-backend/internal/middleware"
	"leadhub-backend/internal/transport"
	"leadhub-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// Notifier delivers the fire-and-forget new-lead email. A nil Notifier
// disables notifications.
type Notifier interface {
	SendLeadNotification(ctx context.Context, requestType, id, fullName, email, phone string) (string, error)
}

type statusUpdatePayload struct {
	Status string `json:"status" validate:"required"`
}

type Handler[P Payload[D], D Entity[D]] struct {
	service  *Service[P, D]
	val      *validation.Validator
	log      *slog.Logger
	notifier Notifier
}

func NewHandler[P Payload[D], D Entity[D]](service *Service[P, D], val *validation.Validator, log *slog.Logger, notifier Notifier) *Handler[P, D] {
	return &Handler[P, D]{
		service:  service,
		val:      val,
		log:      log.With(slog.String("resource", service.Definition().Slug)),
		notifier: notifier,
	}
}

// Routes mounts the uniform endpoint set for one request type. The public
// middleware wraps the submission endpoint, the admin middleware everything
// else.
func (h *Handler[P, D]) Routes(r chi.Router, public, admin func(http.Handler) http.Handler) {
	slug := h.service.Definition().Slug
	r.Route("/"+slug, func(r chi.Router) {
		r.With(public).Post("/", h.Create)
		r.Group(func(protected chi.Router) {
			protected.Use(admin)
			protected.Get("/", h.List)
			protected.Get("/stats", h.Stats)
			protected.Get("/{id}", h.GetByID)
			protected.Patch("/{id}/status", h.UpdateStatus)
			protected.Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler[P, D]) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var payload P
	if err := httpx.DecodeJSON(r.Body, &payload); err != nil {
		log.Warn("create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json body", nil)
		return
	}

	if err := h.val.Struct(payload); err != nil {
		log.Warn("create: validation failed")
		transport.WriteError(w, http.StatusBadRequest, "validation failed", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	doc, err := h.service.Create(ctx, payload)
	if err != nil {
		log.Error("create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again", nil)
		return
	}

	lead := doc.LeadInfo()
	if h.notifier != nil {
		go func() {
			notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
			defer notifyCancel()
			label := h.service.Definition().Label
			if _, err := h.notifier.SendLeadNotification(notifyCtx, label, lead.ID, lead.FullName, lead.Email, lead.Phone); err != nil {
				h.log.Warn("create: notification failed",
					slog.String("request_id", lead.ID),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	log.Info("create: ok", slog.String("id", lead.ID))
	transport.WriteSuccess(w, http.StatusCreated, h.service.Definition().Label+" request submitted successfully", doc)
}

func (h *Handler[P, D]) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 10, 100)
	if err != nil {
		log.Warn("list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, pagination, err := h.service.List(ctx, r.URL.Query(), page, limit)
	if err != nil {
		log.Error("list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again", nil)
		return
	}

	log.Info("list: ok", slog.Int("count", len(items)))
	transport.WriteSuccess(w, http.StatusOK, "requests fetched", map[string]interface{}{
		"requests":   items,
		"pagination": pagination,
	})
}

func (h *Handler[P, D]) Stats(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		log.Error("stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again", nil)
		return
	}

	transport.WriteSuccess(w, http.StatusOK, "dashboard stats fetched", stats)
}

func (h *Handler[P, D]) GetByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(w, log, "get", id, err)
		return
	}

	log.Info("get: ok", slog.String("id", id))
	transport.WriteSuccess(w, http.StatusOK, "request fetched", doc)
}

func (h *Handler[P, D]) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var payload statusUpdatePayload
	if err := httpx.DecodeJSON(r.Body, &payload); err != nil {
		log.Warn("status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json body", nil)
		return
	}
	if err := h.val.Struct(payload); err != nil {
		log.Warn("status: validation failed")
		transport.WriteError(w, http.StatusBadRequest, "validation failed", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.service.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		h.writeServiceError(w, log, "status", id, err)
		return
	}

	log.Info("status: ok", slog.String("id", id), slog.String("status", updated.Status))
	transport.WriteSuccess(w, http.StatusOK, "status updated", updated)
}

func (h *Handler[P, D]) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(w, log, "delete", id, err)
		return
	}

	log.Info("delete: ok", slog.String("id", id))
	transport.WriteSuccess(w, http.StatusOK, "request deleted", map[string]string{"id": id})
}

func (h *Handler[P, D]) writeServiceError(w http.ResponseWriter, log *slog.Logger, op, id string, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		log.Warn(op+": invalid id", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, ErrInvalidID.Error(), nil)
	case errors.Is(err, ErrInvalidStatus):
		log.Warn(op+": invalid status", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, ErrInvalidStatus.Error(), nil)
	case errors.Is(err, ErrNotFound):
		log.Warn(op+": not found", slog.String("id", id))
		transport.WriteError(w, http.StatusNotFound, ErrNotFound.Error(), nil)
	default:
		log.Error(op+": database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again", nil)
	}
}

func (h *Handler[P, D]) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("trace_id", id))
	}
	return h.log
}
