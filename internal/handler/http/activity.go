package http

import (
	"net/http"
	"strconv"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/handler/http/response"
)

const defaultActivityLimit = 50

type ActivityHandler interface {
	ListActivity(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityRepo activity.Repository
}

func NewActivityHandler(activityRepo activity.Repository) ActivityHandler {
	return &activityHandlerImpl{activityRepo: activityRepo}
}

// ListActivity implements ActivityHandler, newest entries first.
func (h *activityHandlerImpl) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.activityRepo.List(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
