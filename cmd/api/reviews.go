package main

import (
	"context"
	"errors"
	"net/http"

	"bizlist/internal/directory"
	"bizlist/internal/notifications"
	"bizlist/internal/store"

	"github.com/go-chi/chi/v5"
)

type CreateReviewPayload struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,max=1000"`
	UserName  string `json:"user_name" validate:"required,max=100"`
	UserImage string `json:"user_image,omitempty" validate:"omitempty,url"`
}

type UpdateReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

type reviewsResponse struct {
	Reviews []store.Review          `json:"reviews"`
	Stats   directory.RatingSummary `json:"stats"`
}

// GetReviews godoc
//
//	@Summary		Reviews of a business
//	@Description	The embedded review list plus the aggregate rating summary
//	@Tags			Reviews
//	@Produce		json
//	@Param			businessID	path		string	true	"Business ID"
//	@Success		200	{object}	reviewsResponse
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/businesses/{businessID}/reviews [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
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

	resp := reviewsResponse{
		Reviews: business.Reviews,
		Stats:   directory.AggregateRatings(business.Reviews),
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// CreateReview godoc
//
//	@Summary		Review a business
//	@Description	Appends a review carrying a snapshot of the reviewer's name and avatar. One review per user per business. The owner gets a push notification.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string				true	"Business ID"
//	@Param			payload		body		CreateReviewPayload	true	"Review"
//	@Success		201	{object}	store.Review
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		409	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := store.Review{
		UserID:    user.ID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		UserName:  payload.UserName,
		UserImage: payload.UserImage,
	}

	if err := app.store.Businesses.AddReview(r.Context(), businessID, review); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, errors.New("you have already reviewed this business"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	notifications.CallAsync(func(ctx context.Context) error {
		business, err := app.store.Businesses.GetByID(ctx, businessID)
		if err != nil {
			return err
		}
		tokens, err := app.store.PushTokens.GetByUserID(ctx, business.UserID)
		if err != nil {
			return err
		}
		return notifications.SendNewReviewNotification(
			ctx, app.push, tokens, business.ID, business.Name, payload.UserName, payload.Rating,
		)
	}, "SendingNewReviewNotification")

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// UpdateReview godoc
//
//	@Summary		Edit own review
//	@Description	Rewrites the caller's review and stamps edited_at
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string				true	"Business ID"
//	@Param			payload		body		UpdateReviewPayload	true	"New rating and comment"
//	@Success		204
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/reviews [patch]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	var payload UpdateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Businesses.UpdateReview(r.Context(), businessID, user.ID, payload.Rating, payload.Comment); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteReview godoc
//
//	@Summary		Delete own review
//	@Description	Removes the caller's review from the business
//	@Tags			Reviews
//	@Param			businessID	path	string	true	"Business ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/reviews [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	if err := app.store.Businesses.DeleteReview(r.Context(), businessID, user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
