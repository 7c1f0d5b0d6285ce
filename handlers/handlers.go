// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/wavelength/middleware"
	"github.com/danielhkuo/wavelength/models"
	"github.com/danielhkuo/wavelength/store"
)

// storeError maps a store failure onto the error envelope. Anything that
// is not one of the store's known kinds is logged and returned as an
// opaque 500; internal error text never reaches the client.
func storeError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, entity+" id is not valid")
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindNotFound, entity+" not found")
	case errors.Is(err, store.ErrDuplicate):
		middleware.ErrorResponse(w, http.StatusConflict, models.KindConflict, entity+" already exists")
	default:
		slog.Error("storage failure", "entity", entity, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindStorageFailure, "Database error")
	}
}
