package directory

import (
	"net/url"
	"regexp"
	"strings"
)

// Listings store whatever the owner typed into the address field: sometimes
// a plain street address, sometimes a pasted map-service link. NormalizeAddress
// turns either into a human-readable place label.
//
// For non-URL input the trimmed string comes back unchanged. For URLs the
// extraction tries, in order: a place-name query parameter, a /place/ or
// /search/ path segment, the last path segment that looks like a name, and a
// rlimm= token in the fragment. If nothing matches it returns "" and the
// caller picks the fallback display. It never fails on malformed input.
func NormalizeAddress(address string) string {
	trimmed := strings.TrimSpace(address)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return trimmed
	}

	if name := placeFromQuery(u); name != "" {
		return name
	}
	if name := placeFromPath(u); name != "" {
		return name
	}
	if name := placeFromFragment(u); name != "" {
		return name
	}
	return ""
}

var (
	locationWord = regexp.MustCompile(`(?i)location`)
	rlimmToken   = regexp.MustCompile(`rlimm=([^&]+)`)
	numericOnly  = regexp.MustCompile(`^\d+$`)
	coordinate   = regexp.MustCompile(`^@?-?\d+(\.\d+)?,\s*-?\d+(\.\d+)?(,[\dz.]+)?$`)
)

// placeNameParams are the query keys map services use for the searched place,
// in priority order.
var placeNameParams = []string{"q", "query", "search", "destination"}

func placeFromQuery(u *url.URL) string {
	values := u.Query()
	for _, key := range placeNameParams {
		v := values.Get(key)
		if v == "" {
			continue
		}
		// Shared links often wrap the place as "<name> location".
		v = strings.TrimSpace(locationWord.ReplaceAllString(v, ""))
		if v != "" {
			return v
		}
	}
	return ""
}

func placeFromPath(u *url.URL) string {
	segments := pathSegments(u)

	for i, segment := range segments {
		if (segment == "place" || segment == "search") && i+1 < len(segments) {
			if name := cleanSegment(segments[i+1]); name != "" {
				return name
			}
		}
	}

	// Fall back to the last segment that reads like a name: skip ids,
	// coordinates and single characters, scanning from the end.
	for i := len(segments) - 1; i >= 0; i-- {
		name := cleanSegment(segments[i])
		if len(name) < 2 || numericOnly.MatchString(name) || coordinate.MatchString(name) {
			continue
		}
		return name
	}
	return ""
}

func placeFromFragment(u *url.URL) string {
	match := rlimmToken.FindStringSubmatch(u.Fragment)
	if match == nil {
		return ""
	}
	token := match[1]
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}
	return strings.TrimSpace(token)
}

func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.EscapedPath(), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// cleanSegment decodes one path segment into display text.
func cleanSegment(segment string) string {
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}
	segment = strings.ReplaceAll(segment, "+", " ")
	return strings.TrimSpace(segment)
}
