// Package sharecode builds the short links handed out by the Share action:
// an opaque code that round-trips to a business id, plus a readable slug for
// the link text.
package sharecode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mozillazg/go-unidecode"
	hashids "github.com/speps/go-hashids/v2"
)

type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 10
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

// Encode turns a business id into its share code.
func (c *Codec) Encode(businessID string) (string, error) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return "", fmt.Errorf("invalid business id: %w", err)
	}
	return c.h.EncodeHex(strings.ReplaceAll(id.String(), "-", ""))
}

// Decode resolves a share code back to the business id it encodes.
func (c *Codec) Decode(code string) (string, error) {
	hex, err := c.h.DecodeHex(code)
	if err != nil {
		return "", fmt.Errorf("decode share code: %w", err)
	}
	id, err := uuid.Parse(hex)
	if err != nil {
		return "", fmt.Errorf("decode share code: %w", err)
	}
	return id.String(), nil
}

// ShareURL composes the public link for a listing.
func (c *Codec) ShareURL(baseURL, businessName, code string) string {
	return fmt.Sprintf("%s/b/%s/%s", strings.TrimRight(baseURL, "/"), Slug(businessName), code)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug folds a business name to an ASCII URL slug. Names that fold to
// nothing get a generic slug; the code is what actually identifies the
// listing.
func Slug(name string) string {
	slug := strings.ToLower(unidecode.Unidecode(name))
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "business"
	}
	return slug
}
