package pkg

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func IntPathVar(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, fmt.Errorf("missing path var [%s]", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path var [%s]: %w", name, err)
	}
	return v, nil
}

func DatePathVar(r *http.Request, name string) (Date, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return Date{}, fmt.Errorf("missing path var [%s]", name)
	}
	return ParseDate(raw)
}

// DateQueryParam returns the zero Date when the param is absent.
func DateQueryParam(r *http.Request, name string) (Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return Date{}, nil
	}
	return ParseDate(raw)
}

// DateRangeQuery reads from/to; a missing to means today, a missing from means
// the last 7 days ending at to.
func DateRangeQuery(r *http.Request) (from Date, to Date, err error) {
	from, err = DateQueryParam(r, "from")
	if err != nil {
		return Date{}, Date{}, err
	}
	to, err = DateQueryParam(r, "to")
	if err != nil {
		return Date{}, Date{}, err
	}
	if to.IsZero() {
		to = Today()
	}
	if from.IsZero() {
		from = to.AddDays(-6)
	}
	return from, to, nil
}

// IsJSONRequest matches the media type only, so parameters like charset are accepted.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == ContentType.JSON
}
