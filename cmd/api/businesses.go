package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bizlist/internal/directory"
	"bizlist/internal/params"
	"bizlist/internal/store"

	"github.com/go-chi/chi/v5"
)

// maxBusinessesPerOwner caps self-listing; the directory is for small local
// businesses, not chains.
const maxBusinessesPerOwner = 2

type CreateBusinessPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	About    string `json:"about" validate:"required,max=1000"`
	Address  string `json:"address" validate:"required,max=500"`
	Category string `json:"category" validate:"required,max=100"`
	Website  string `json:"website,omitempty" validate:"omitempty,url,max=255"`
}

type UpdateBusinessPayload struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	About    *string `json:"about,omitempty" validate:"omitempty,max=1000"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url,max=255"`
}

type directoryResponse struct {
	Items      []directory.DisplayBusiness `json:"items"`
	Categories []string                    `json:"categories"`
	Pagination params.Pagination           `json:"pagination"`
}

type businessDetailResponse struct {
	directory.DisplayBusiness
	ShareURL string `json:"share_url,omitempty"`
}

// ListBusinesses godoc
//
//	@Summary		Browse the directory
//	@Description	Projects the full collection through the search filter. Supports q (free text), category, rating (rounded average) and pagination.
//	@Tags			Businesses
//	@Produce		json
//	@Param			q			query		string	false	"Free-text query"
//	@Param			category	query		string	false	"Category facet"
//	@Param			rating		query		int		false	"Rounded average rating (0-5)"
//	@Param			page		query		int		false	"Page"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200	{object}	directoryResponse
//	@Failure		500	{object}	error
//	@Router			/businesses [get]
func (app *application) listBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	app.projectDirectory(w, r)
}

func (app *application) projectDirectory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	snapshot, err := app.store.Businesses.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	source := snapshot
	if ratingStr := q.Get("rating"); ratingStr != "" {
		rating, err := strconv.Atoi(ratingStr)
		if err != nil || rating < 0 || rating > 5 {
			app.badRequestResponse(w, r, errors.New("rating must be an integer between 0 and 5"))
			return
		}
		source = directory.FilterByRoundedRating(snapshot, rating)
	}

	projection := directory.Project(source, directory.Filters{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	})
	// Facets always come from the full collection, even when a rating filter
	// narrowed the projected source.
	projection.Categories = directory.Categories(snapshot)

	resp := directoryResponse{
		Items:      params.Slice(&p, projection.Items),
		Categories: projection.Categories,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// PopularBusinesses godoc
//
//	@Summary		Popular businesses
//	@Description	Businesses with an average rating of at least 4
//	@Tags			Businesses
//	@Produce		json
//	@Success		200	{array}	directory.DisplayBusiness
//	@Failure		500	{object}	error
//	@Router			/businesses/popular [get]
func (app *application) popularBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := app.store.Businesses.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	popular := directory.Popular(snapshot)
	items := make([]directory.DisplayBusiness, 0, len(popular))
	for _, b := range popular {
		items = append(items, directory.Display(b))
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetBusiness godoc
//
//	@Summary		Business detail
//	@Description	One listing with its display address, rating summary and share link
//	@Tags			Businesses
//	@Produce		json
//	@Param			businessID	path		string	true	"Business ID"
//	@Success		200	{object}	businessDetailResponse
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/businesses/{businessID} [get]
func (app *application) getBusinessHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")

	business, err := app.store.Businesses.GetByID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := businessDetailResponse{DisplayBusiness: directory.Display(*business)}
	if code, err := app.shareCodes.Encode(business.ID); err == nil {
		resp.ShareURL = app.shareCodes.ShareURL(app.config.frontendURL, business.Name, code)
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// CreateBusiness godoc
//
//	@Summary		List a business
//	@Description	Creates a listing owned by the authenticated user. Owners are limited to 2 listings.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateBusinessPayload	true	"Business details"
//	@Success		201		{object}	store.Business
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses [post]
func (app *application) createBusinessHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateBusinessPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	count, err := app.store.Businesses.CountByOwner(r.Context(), user.Email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if count >= maxBusinessesPerOwner {
		app.badRequestResponse(w, r, fmt.Errorf("owners are limited to %d businesses", maxBusinessesPerOwner))
		return
	}

	business := &store.Business{
		Name:      payload.Name,
		About:     payload.About,
		Address:   payload.Address,
		Category:  payload.Category,
		Website:   payload.Website,
		UserEmail: user.Email,
		UserID:    user.ID,
		Reviews:   []store.Review{},
	}

	if err := app.store.Businesses.Create(r.Context(), business); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

// UpdateBusiness godoc
//
//	@Summary		Update a listing
//	@Description	Partial update of an owned listing
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string					true	"Business ID"
//	@Param			payload		body		UpdateBusinessPayload	true	"Fields to change"
//	@Success		200	{object}	store.Business
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID} [patch]
func (app *application) updateBusinessHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	var payload UpdateBusinessPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.About != nil {
		updates["about"] = *payload.About
	}
	if payload.Address != nil {
		updates["address"] = *payload.Address
	}
	if payload.Category != nil {
		updates["category"] = *payload.Category
	}
	if payload.Website != nil {
		updates["website"] = *payload.Website
	}
	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	if err := app.store.Businesses.Update(r.Context(), businessID, user.Email, updates); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrNotOwner):
			app.forbiddenResponse(w, r)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	business, err := app.store.Businesses.GetByID(r.Context(), businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteBusiness godoc
//
//	@Summary		Delete a listing
//	@Description	Removes an owned listing
//	@Tags			Businesses
//	@Param			businessID	path	string	true	"Business ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID} [delete]
func (app *application) deleteBusinessHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	if err := app.store.Businesses.Delete(r.Context(), businessID, user.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrNotOwner):
			app.forbiddenResponse(w, r)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyBusinesses godoc
//
//	@Summary		Own listings
//	@Description	Listings owned by the authenticated user
//	@Tags			Businesses
//	@Produce		json
//	@Success		200	{array}	directory.DisplayBusiness
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/mine [get]
func (app *application) myBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businesses, err := app.store.Businesses.ListByOwner(r.Context(), user.Email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	items := make([]directory.DisplayBusiness, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, directory.Display(b))
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ResolveShareCode godoc
//
//	@Summary		Resolve a share link
//	@Description	Decodes a share code and returns the listing it points at
//	@Tags			Businesses
//	@Produce		json
//	@Param			code	path		string	true	"Share code"
//	@Success		200		{object}	directory.DisplayBusiness
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/share/{code} [get]
func (app *application) resolveShareCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	businessID, err := app.shareCodes.Decode(code)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid share code"))
		return
	}

	business, err := app.store.Businesses.GetByID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, directory.Display(*business)); err != nil {
		app.internalServerError(w, r, err)
	}
}
