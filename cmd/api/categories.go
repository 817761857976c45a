package main

import (
	"net/http"

	"bizlist/internal/directory"
)

// GetCategories godoc
//
//	@Summary		Category facets
//	@Description	Distinct categories across the directory with the "All" sentinel first
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}	string
//	@Failure		500	{object}	error
//	@Router			/categories [get]
func (app *application) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := app.store.Businesses.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, directory.Categories(snapshot)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// SuggestCategories godoc
//
//	@Summary		Category autocomplete
//	@Description	Lowercased distinct categories starting with the given prefix, for the listing form
//	@Tags			Categories
//	@Produce		json
//	@Param			prefix	query	string	false	"Category prefix"
//	@Success		200	{array}	string
//	@Failure		500	{object}	error
//	@Router			/categories/suggestions [get]
func (app *application) suggestCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := app.store.Businesses.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	suggestions := directory.SuggestCategories(snapshot, r.URL.Query().Get("prefix"))

	if err := app.jsonResponse(w, http.StatusOK, suggestions); err != nil {
		app.internalServerError(w, r, err)
	}
}
