package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// fetchAllPageSize is the first page size asked for when loading a whole
// collection. Larger collections are refetched in one go using meta.total.
const fetchAllPageSize = 500

// record is what every list element must satisfy
type record interface {
	Validate() error
}

// Page is one decoded list response
type Page[T any] struct {
	Items []T
	Meta  models.Meta
}

// ListParams narrows a list request
type ListParams struct {
	Search   string
	Page     int
	PageSize int
	Filters  map[string]string
}

// values encodes the params; searchParam is the query key the endpoint
// reads free text from
func (p ListParams) values(searchParam string) url.Values {
	v := url.Values{}
	if p.Search != "" && searchParam != "" {
		v.Set(searchParam, p.Search)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	for key, value := range p.Filters {
		if value != "" {
			v.Set(key, value)
		}
	}
	return v
}

// list fetches one page. Records failing validation are dropped and logged
// so one bad row does not blank the whole table.
func list[T record](ctx context.Context, c *Client, path, searchParam string, p ListParams) (Page[T], error) {
	env, err := c.do(ctx, http.MethodGet, path, p.values(searchParam), nil)
	if err != nil {
		return Page[T]{}, err
	}

	var items []T
	if !isNull(env.Data) {
		if err := decodeInto(env, &items); err != nil {
			return Page[T]{}, err
		}
	}

	valid := make([]T, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			c.logger.Warn("dropping invalid record", "path", path, "request_id", env.RequestID, "error", err)
			continue
		}
		valid = append(valid, item)
	}
	return Page[T]{Items: valid, Meta: env.Meta}, nil
}

// listAll fetches a whole collection, refetching once with the reported
// total when the first page came back short
func listAll[T record](ctx context.Context, c *Client, path, searchParam string, p ListParams) (Page[T], error) {
	p.Page = 1
	if p.PageSize <= 0 {
		p.PageSize = fetchAllPageSize
	}

	page, err := list[T](ctx, c, path, searchParam, p)
	if err != nil {
		return page, err
	}
	if page.Meta.Total > p.PageSize {
		p.PageSize = page.Meta.Total
		return list[T](ctx, c, path, searchParam, p)
	}
	return page, nil
}

// one decodes a single record response
func one[T any](env Envelope) (T, error) {
	var out T
	if isNull(env.Data) {
		return out, nil
	}
	err := decodeInto(env, &out)
	return out, err
}

// write validates in locally before sending it, so a bad form never costs
// a round trip, then decodes the record the backend returns
func write[T any](ctx context.Context, c *Client, method, path string, in interface{ Validate() error }) (T, error) {
	var out T
	if err := in.Validate(); err != nil {
		return out, &Error{Kind: KindInvalid, Message: err.Error(), Err: err}
	}
	env, err := c.do(ctx, method, path, nil, in)
	if err != nil {
		return out, err
	}
	return one[T](env)
}
