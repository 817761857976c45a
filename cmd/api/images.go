package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bizlist/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

// UploadBusinessImage godoc
//
//	@Summary		Upload a listing image
//	@Description	Uploads the image to Cloudinary and sets it as the listing's image. Replaces and deletes any previous image.
//	@Tags			Businesses
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			businessID	path		string	true	"Business ID"
//	@Param			image		formData	file	true	"Image file"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/image [post]
func (app *application) uploadBusinessImageHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	business, err := app.requireOwnedBusiness(w, r, businessID, user)
	if err != nil {
		return
	}

	const maxBytes = 10 * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("image file is required"))
		return
	}
	defer file.Close()

	imageURL, err := app.uploadBusinessImageToCloudinary(file, businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Businesses.SetImageURL(r.Context(), businessID, imageURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The old image is an orphan once the pointer moves; removal is best effort.
	if business.ImageURL != "" && business.ImageURL != imageURL {
		if err := app.deleteImageFromCloudinary(business.ImageURL); err != nil {
			app.logger.Warnw("failed to delete previous image", "business_id", businessID, "error", err)
		}
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

// DeleteBusinessImage godoc
//
//	@Summary		Remove a listing image
//	@Description	Deletes the image from Cloudinary and clears it on the listing
//	@Tags			Businesses
//	@Produce		json
//	@Param			businessID	path		string	true	"Business ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/image [delete]
func (app *application) deleteBusinessImageHandler(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	user := getUserFromContext(r)

	business, err := app.requireOwnedBusiness(w, r, businessID, user)
	if err != nil {
		return
	}

	if business.ImageURL == "" {
		app.badRequestResponse(w, r, errors.New("business has no image"))
		return
	}

	if err := app.deleteImageFromCloudinary(business.ImageURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Businesses.SetImageURL(r.Context(), businessID, ""); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "image deleted successfully"})
}

// requireOwnedBusiness loads the business and answers the request itself when
// it is missing or owned by someone else.
func (app *application) requireOwnedBusiness(w http.ResponseWriter, r *http.Request, businessID string, user *authedUser) (*store.Business, error) {
	business, err := app.store.Businesses.GetByID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return nil, err
	}

	if business.UserEmail != user.Email {
		app.forbiddenResponse(w, r)
		return nil, store.ErrNotOwner
	}

	return business, nil
}

func (app *application) uploadBusinessImageToCloudinary(file io.Reader, businessID string) (string, error) {
	resp, err := app.cld.Upload.Upload(
		context.Background(),
		file,
		uploader.UploadParams{Folder: "businesses", PublicID: "business_" + businessID},
	)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}

func (app *application) deleteImageFromCloudinary(imageURL string) error {
	publicID, err := extractPublicIDFromURL(imageURL)
	if err != nil {
		return fmt.Errorf("failed to extract public ID: %w", err)
	}

	_, err = app.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from Cloudinary: %w", err)
	}

	return nil
}

// extractPublicIDFromURL pulls the Cloudinary public ID out of a delivery URL
// (everything after the /upload/ segment, minus the version prefix and file
// extension).
func extractPublicIDFromURL(imageURL string) (string, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	pathParts := strings.Split(parsedURL.Path, "/")
	for i, part := range pathParts {
		if part != "upload" || i+1 >= len(pathParts) {
			continue
		}
		rest := pathParts[i+1:]
		// Skip the version segment (v1234567890) when present.
		if len(rest) > 1 && strings.HasPrefix(rest[0], "v") {
			rest = rest[1:]
		}
		publicID := strings.Join(rest, "/")
		if idx := strings.LastIndex(publicID, "."); idx > 0 {
			publicID = publicID[:idx]
		}
		return publicID, nil
	}

	return "", errors.New("failed to extract public ID from URL")
}
