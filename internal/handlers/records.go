package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/internal/response"
)

// resource serves list/get/create/update/delete for one record kind.
type resource[T models.Record] struct {
	ResponseHandler response.ResponseHandler
	validate        *validator.Validate
	kind            string
	list            func() []T
	get             func(id string) (T, bool)
	add             func(ctx context.Context, rec T) T
	update          func(ctx context.Context, id string, rec T) bool
	remove          func(ctx context.Context, id string) bool
}

func (res *resource[T]) routes(r chi.Router) {
	r.Get("/", res.List)
	r.Post("/", res.Create)
	r.Get("/{id}", res.Get)
	r.Put("/{id}", res.Update)
	r.Delete("/{id}", res.Delete)
}

func (res *resource[T]) List(w http.ResponseWriter, r *http.Request) {
	res.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res.list())
}

func (res *resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := res.get(id)
	if !ok {
		res.ResponseHandler.HandleError(w, r, errs.NewNotFoundError(fmt.Sprintf("%s %q not found", res.kind, id)))
		return
	}
	res.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rec)
}

func (res *resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord[T](w, r, res.validate)
	if err != nil {
		res.ResponseHandler.HandleError(w, r, err)
		return
	}
	res.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, res.add(r.Context(), rec))
}

// Update on an unknown id is not an error, it reports matched=false.
func (res *resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord[T](w, r, res.validate)
	if err != nil {
		res.ResponseHandler.HandleError(w, r, err)
		return
	}
	matched := res.update(r.Context(), chi.URLParam(r, "id"), rec)
	res.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: matched})
}

func (res *resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	matched := res.remove(r.Context(), chi.URLParam(r, "id"))
	res.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MatchResult{Matched: matched})
}
