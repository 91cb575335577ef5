package todo

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/platform/httpx"
	"github.com/tasklane/tasklane/internal/shared"
)

// Handler wires HTTP endpoints for task CRUD. All routes assume the session
// middleware already placed an identity in the request context.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers task routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.createTask)
	r.Get("/", h.listTasks)
	r.Get("/{taskID}", h.getTask)
	r.Patch("/{taskID}", h.updateTask)
	r.Delete("/{taskID}", h.deleteTask)
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ident := shared.IdentityFromContext(r.Context())
	if ident == nil {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	var req createTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	task, err := h.service.Create(r.Context(), ident.ID, CreateInput{Title: req.Title, Description: req.Description})
	if err != nil {
		h.logger.Error("create task", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, task)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ident := shared.IdentityFromContext(r.Context())
	if ident == nil {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	tasks, err := h.service.List(r.Context(), ident.ID)
	if err != nil {
		h.logger.Error("list tasks", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if tasks == nil {
		tasks = []Task{}
	}
	httpx.JSON(w, http.StatusOK, tasks)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ident := shared.IdentityFromContext(r.Context())
	if ident == nil {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	id, err := taskID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	task, err := h.service.Get(r.Context(), ident.ID, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, task)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ident := shared.IdentityFromContext(r.Context())
	if ident == nil {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	id, err := taskID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req updateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	task, err := h.service.Update(r.Context(), ident.ID, id, UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, task)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ident := shared.IdentityFromContext(r.Context())
	if ident == nil {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}
	id, err := taskID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), ident.ID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}

// taskID parses the route parameter. An unparseable id behaves like a miss.
func taskID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		return uuid.Nil, shared.ErrNotFound
	}
	return id, nil
}
