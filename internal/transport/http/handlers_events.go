package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"openfairdb/internal/boundary"
	"openfairdb/internal/domain"
	"openfairdb/internal/web/guards"
	pkgerrors "openfairdb/pkg/errors"
)

func (h *Handler) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.All(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	tag := r.URL.Query().Get("tag")
	out := make([]boundary.Event, 0, len(events))
	for _, event := range events {
		if tag != "" && !hasTag(event.Tags, tag) {
			continue
		}
		out = append(out, boundary.EventFromDomain(event))
	}
	writeJSON(w, http.StatusOK, out)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), domain.ID(chi.URLParam(r, "id")))
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boundary.EventFromDomain(event))
}

// requireTokenRole verifies the bearer token the guard extracted and checks
// the claimed role.
func (h *Handler) requireTokenRole(r *http.Request, min domain.Role) (domain.Email, error) {
	token := guards.TokenFromContext(r.Context())
	email, role, err := h.tokens.UserFor(token)
	if err != nil {
		h.metrics.AuthFailures.Inc()
		return "", err
	}
	if !role.IsAtLeast(min) {
		return "", pkgerrors.New(pkgerrors.CodeForbidden, "insufficient privileges")
	}
	return email, nil
}

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	creator, err := h.requireTokenRole(r, domain.RoleUser)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload boundary.Event
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	event, err := payload.ToDomain()
	if err != nil {
		WriteError(w, err)
		return
	}
	event.ID = domain.NewID()
	created := domain.Activity{
		At: domain.NowMs(),
		By: &creator,
	}
	event.Created = &created

	if err := h.events.Save(r.Context(), event); err != nil {
		WriteError(w, err)
		return
	}
	h.metrics.EventsCreated.Inc()
	h.logger.InfoContext(r.Context(), "event created", "id", event.ID, "created_by", creator)
	writeJSON(w, http.StatusCreated, event.ID.String())
}

func (h *Handler) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	creator, err := h.requireTokenRole(r, domain.RoleUser)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := domain.ID(chi.URLParam(r, "id"))
	existing, err := h.events.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload boundary.Event
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}
	event, err := payload.ToDomain()
	if err != nil {
		WriteError(w, err)
		return
	}
	event.ID = id
	event.Created = existing.Created
	if event.Created == nil {
		created := domain.Activity{At: domain.NowMs(), By: &creator}
		event.Created = &created
	}

	if err := h.events.Save(r.Context(), event); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id.String())
}

func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireTokenRole(r, domain.RoleScout); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.events.Delete(r.Context(), domain.ID(chi.URLParam(r, "id"))); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
