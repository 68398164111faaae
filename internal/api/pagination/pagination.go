// Package pagination implements the page/limit envelope used by list
// endpoints.
package pagination

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size when the client does not pass one.
	DefaultLimit = 6

	maxLimit = 100
)

var ErrInvalidParam = errors.New("invalid pagination parameter")

type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int32 {
	return int32((p.Page - 1) * p.Limit)
}

func (p Params) Limit32() int32 {
	return int32(p.Limit)
}

// Parse reads the page and limit query parameters, applying defaults and
// bounds.
func Parse(r *http.Request) (Params, error) {
	params := Params{Page: 1, Limit: DefaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, errors.Join(ErrInvalidParam, errors.New("page must be a positive integer"))
		}
		params.Page = page
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Params{}, errors.Join(ErrInvalidParam, errors.New("limit must be a positive integer"))
		}
		params.Limit = min(limit, maxLimit)
	}
	return params, nil
}

// Page is the list response envelope.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func pageURL(u *url.URL, page int) *string {
	clone := *u
	query := clone.Query()
	query.Set("page", strconv.Itoa(page))
	clone.RawQuery = query.Encode()
	s := clone.String()
	return &s
}

// NewPage assembles the envelope, deriving next/previous links from the
// request URL.
func NewPage(r *http.Request, count int64, params Params, results any) Page {
	page := Page{
		Count:   count,
		Results: results,
	}
	if int64(params.Page*params.Limit) < count {
		page.Next = pageURL(r.URL, params.Page+1)
	}
	if params.Page > 1 {
		page.Previous = pageURL(r.URL, params.Page-1)
	}
	return page
}
