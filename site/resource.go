package site

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// resource describes one CRUD collection of the JSON API. In is the create
// payload and P the partial update payload.
type resource[T, In, P any] struct {
	plural   string
	singular string
	notFound string
	deleted  string

	list   func(r *http.Request) ([]T, error)
	get    func(ctx context.Context, id uint) (*T, error)
	create func(ctx context.Context, in In) (*T, error)
	update func(ctx context.Context, id uint, patch P) (*T, error)
	delete func(ctx context.Context, id uint) error
}

// mountResource registers list and get publicly and the write operations
// behind the admin check.
func mountResource[T, In, P any](s *Server, r chi.Router, res resource[T, In, P]) {
	r.Get("/", listHandler(s, res))
	r.Get("/{id}", getHandler(s, res))

	r.Group(func(r chi.Router) {
		r.Use(APIAuthMiddleware)
		r.Post("/", createHandler(s, res))
		r.Put("/{id}", updateHandler(s, res))
		r.Delete("/{id}", deleteHandler(s, res))
	})
}

func urlID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func listHandler[T, In, P any](s *Server, res resource[T, In, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := res.list(r)
		if err != nil {
			s.respondStoreError(w, r, err, res.notFound, "fetch "+res.plural)
			return
		}
		if items == nil {
			items = []T{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func getHandler[T, In, P any](s *Server, res resource[T, In, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			respondError(w, http.StatusNotFound, res.notFound)
			return
		}

		item, err := res.get(r.Context(), id)
		if err != nil {
			s.respondStoreError(w, r, err, res.notFound, "fetch "+res.singular)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func createHandler[T, In, P any](s *Server, res resource[T, In, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeJSON(r, &in); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := s.validate.Struct(in); err != nil {
			respondValidationError(w, err)
			return
		}

		item, err := res.create(r.Context(), in)
		if err != nil {
			s.respondStoreError(w, r, err, res.notFound, "create "+res.singular)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

func updateHandler[T, In, P any](s *Server, res resource[T, In, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			respondError(w, http.StatusNotFound, res.notFound)
			return
		}

		var patch P
		if err := decodeJSON(r, &patch); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := s.validate.Struct(patch); err != nil {
			respondValidationError(w, err)
			return
		}

		item, err := res.update(r.Context(), id, patch)
		if err != nil {
			s.respondStoreError(w, r, err, res.notFound, "update "+res.singular)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func deleteHandler[T, In, P any](s *Server, res resource[T, In, P]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			respondError(w, http.StatusNotFound, res.notFound)
			return
		}

		if err := res.delete(r.Context(), id); err != nil {
			s.respondStoreError(w, r, err, res.notFound, "delete "+res.singular)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": res.deleted})
	}
}
