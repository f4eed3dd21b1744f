package http

import (
	"net/http"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type BookmarkHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
}

type bookmarkHandlerImpl struct {
	rosterService employee.RosterService
}

func NewBookmarkHandler(rosterService employee.RosterService) BookmarkHandler {
	return &bookmarkHandlerImpl{rosterService: rosterService}
}

// List implements BookmarkHandler
func (h *bookmarkHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.rosterService.Bookmarks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bookmarks)
}

// Toggle implements BookmarkHandler
func (h *bookmarkHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParsePositiveInt(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Employee ID must be a positive integer", nil)
		return
	}

	result, err := h.rosterService.ToggleBookmark(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Bookmark removed"
	if result.IsBookmarked {
		message = "Bookmark added"
	}
	response.SuccessWithMessage(w, message, result)
}
