package controllers

import (
	"net/http"
	"strconv"

	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// parseIDParam reads a chi URL parameter that must be a positive integer id.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if !utils.ValidateNumericID(raw) {
		return 0, exceptions.ErrURLParamIDValidation(nil, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}

// parsePagination reads skip and limit query params with their defaults.
func parsePagination(r *http.Request) (int, int) {
	skip := 0
	limit := constvars.DefaultQueryLimit

	if raw := r.URL.Query().Get(constvars.QueryParamSkip); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get(constvars.QueryParamLimit); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= constvars.MaxQueryLimit {
			limit = v
		}
	}
	return skip, limit
}
