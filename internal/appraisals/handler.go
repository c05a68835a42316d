package appraisals

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/workflow"
	"github.com/curiolabs/curio/pkg/handlers"
	"github.com/curiolabs/curio/pkg/pagination"
	"github.com/curiolabs/curio/pkg/routes"
)

// Handler provides HTTP endpoints for appraisal operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "appraisals"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for appraisal endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/appraisals",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "", Handler: h.Appraise},
			{Method: "POST", Pattern: "/stream", Handler: h.AppraiseStream},
			{Method: "POST", Pattern: "/upload", Handler: h.AppraiseUpload},
			{Method: "POST", Pattern: "/{id}/additional", Handler: h.AppraiseAdditional},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a paginated list of appraisals with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single appraisal by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	a, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching appraisals.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Appraise runs the identification pipeline on data-URI images submitted as
// JSON. Returns 201 with the stored appraisal on success.
func (h *Handler) Appraise(w http.ResponseWriter, r *http.Request) {
	var cmd AppraiseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.Appraise(r.Context(), cmd, nil)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, a)
}

// AppraiseStream runs the identification pipeline and streams stage
// progress as server-sent events, terminating with a result or error event.
func (h *Handler) AppraiseStream(w http.ResponseWriter, r *http.Request) {
	var cmd AppraiseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.RespondError(
			w, h.logger,
			http.StatusInternalServerError,
			errors.New("streaming unsupported"),
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	send := func(event string, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	a, err := h.sys.Appraise(r.Context(), cmd, func(e workflow.ProgressEvent) {
		send("progress", e)
	})
	if err != nil {
		send("error", handlers.ErrorResponse{Error: err.Error()})
		return
	}

	send("result", a)
}

// AppraiseUpload runs the identification pipeline on multipart file
// uploads. Each file part is named by its image role; an optional
// asking_price form field carries the price in minor currency units.
func (h *Handler) AppraiseUpload(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseUpload(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	a, err := h.sys.Appraise(r.Context(), cmd, nil)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, a)
}

// AppraiseAdditional analyzes one supplementary photo for an existing appraisal.
func (h *Handler) AppraiseAdditional(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd AdditionalCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.AppraiseAdditional(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Delete removes an appraisal by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadMemoryLimit bounds the multipart parse buffer; larger parts spill
// to disk before validation rejects oversize payloads.
const uploadMemoryLimit = 32 << 20

func (h *Handler) parseUpload(r *http.Request) (AppraiseCommand, error) {
	var cmd AppraiseCommand

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		return cmd, err
	}

	if v := r.FormValue("asking_price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			cmd.AskingPrice = &price
		}
	}

	for role, files := range r.MultipartForm.File {
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return cmd, err
			}

			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return cmd, err
			}

			uri, err := encodeUpload(data)
			if err != nil {
				return cmd, err
			}

			cmd.Images = append(cmd.Images, ImageInput{
				Role:    role,
				DataURI: uri,
				Label:   fh.Filename,
			})
		}
	}

	return cmd, nil
}
