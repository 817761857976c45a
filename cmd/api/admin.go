package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bizlist/internal/mailer"
	"bizlist/internal/store"

	"github.com/go-chi/chi/v5"
)

type BanUserPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Reason   string `json:"reason" validate:"required,max=500"`
	Duration string `json:"duration" validate:"required,oneof=day week month lifetime"`
	Username string `json:"username,omitempty" validate:"omitempty,max=100"`
}

// banDuration maps the admin panel's duration choices to an expiry. Lifetime
// bans have no expiry.
func banDuration(duration string, now time.Time) *time.Time {
	var until time.Time
	switch duration {
	case "day":
		until = now.Add(24 * time.Hour)
	case "week":
		until = now.Add(7 * 24 * time.Hour)
	case "month":
		until = now.Add(30 * 24 * time.Hour)
	default: // lifetime
		return nil
	}
	return &until
}

// AdminListBusinesses godoc
//
//	@Summary		Moderate the directory
//	@Description	Same projection as the public listing (q, category, rating filters) for the admin panel
//	@Tags			Admin
//	@Produce		json
//	@Param			q			query	string	false	"Free-text query"
//	@Param			category	query	string	false	"Category facet"
//	@Param			rating		query	int		false	"Rounded average rating (0-5)"
//	@Success		200	{object}	directoryResponse
//	@Failure		500	{object}	error
//	@Security		BasicAuth
//	@Router			/admin/businesses [get]
func (app *application) adminListBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	app.projectDirectory(w, r)
}

// AdminDeleteBusiness godoc
//
//	@Summary		Remove any listing
//	@Description	Deletes a listing regardless of ownership, including its hosted image
//	@Tags			Admin
//	@Param			businessID	path	string	true	"Business ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		BasicAuth
//	@Router			/admin/businesses/{businessID} [delete]
func (app *application) adminDeleteBusinessHandler(w http.ResponseWriter, r *http.Request) {
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

	// Empty owner email skips the ownership check.
	if err := app.store.Businesses.Delete(r.Context(), businessID, ""); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if business.ImageURL != "" {
		if err := app.deleteImageFromCloudinary(business.ImageURL); err != nil {
			app.logger.Warnw("failed to delete image of removed business", "business_id", businessID, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBans godoc
//
//	@Summary		List bans
//	@Description	All ban records, newest first
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}	store.BannedUser
//	@Failure		500	{object}	error
//	@Security		BasicAuth
//	@Router			/admin/bans [get]
func (app *application) listBansHandler(w http.ResponseWriter, r *http.Request) {
	bans, err := app.store.Bans.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, bans); err != nil {
		app.internalServerError(w, r, err)
	}
}

// BanUser godoc
//
//	@Summary		Ban a user
//	@Description	Bans a user by email for a day, week, month or lifetime. Re-banning replaces the previous ban. The user is emailed the reason.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		BanUserPayload	true	"Ban details"
//	@Success		201	{object}	store.BannedUser
//	@Failure		400	{object}	error
//	@Failure		500	{object}	error
//	@Security		BasicAuth
//	@Router			/admin/bans [post]
func (app *application) banUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload BanUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ban := &store.BannedUser{
		UserEmail:   payload.Email,
		BannedUntil: banDuration(payload.Duration, time.Now()),
		Reason:      payload.Reason,
	}

	if err := app.store.Bans.Ban(r.Context(), ban); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Ban notice is best effort; the ban itself already holds.
	go func() {
		username := payload.Username
		if username == "" {
			username = payload.Email
		}

		vars := struct {
			Username    string
			Reason      string
			BannedUntil string
		}{
			Username: username,
			Reason:   payload.Reason,
		}
		if ban.BannedUntil != nil {
			vars.BannedUntil = ban.BannedUntil.Format(time.RFC1123)
		}

		if _, err := app.mailer.Send(mailer.BanNoticeTemplate, username, payload.Email, vars); err != nil {
			app.logger.Errorw("error sending ban notice email", "email", payload.Email, "error", err)
		}
	}()

	if err := app.jsonResponse(w, http.StatusCreated, ban); err != nil {
		app.internalServerError(w, r, err)
	}
}

// UnbanUser godoc
//
//	@Summary		Lift a ban
//	@Description	Removes the ban record for an email
//	@Tags			Admin
//	@Param			email	path	string	true	"Banned email"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		BasicAuth
//	@Router			/admin/bans/{email} [delete]
func (app *application) unbanUserHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		app.badRequestResponse(w, r, fmt.Errorf("email is required"))
		return
	}

	if err := app.store.Bans.Unban(r.Context(), email); err != nil {
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
