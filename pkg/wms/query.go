package wms

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// QueryParams builds the query string of retrieval calls.
type QueryParams struct {
	values url.Values
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{values: url.Values{}}
}

// QueryParamsFromMap converts loosely typed filters into query parameters.
// Nil values are dropped and slices become repeated keys.
func QueryParamsFromMap(filters map[string]interface{}) *QueryParams {
	params := NewQueryParams()

	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		value := filters[key]
		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := range rv.Len() {
				params.Add(key, fmt.Sprint(rv.Index(i).Interface()))
			}

			continue
		}

		params.Set(key, fmt.Sprint(value))
	}

	return params
}

// Set replaces the values of key.
func (q *QueryParams) Set(key, value string) *QueryParams {
	q.values.Set(key, value)

	return q
}

// Add appends a value to key.
func (q *QueryParams) Add(key, value string) *QueryParams {
	q.values.Add(key, value)

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	return q.Set("page", strconv.Itoa(page))
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	return q.Set("page_size", strconv.Itoa(size))
}

// ToValues returns the parameters as url.Values.
func (q *QueryParams) ToValues() url.Values {
	if q == nil {
		return nil
	}

	out := make(url.Values, len(q.values))
	for key, values := range q.values {
		out[key] = append([]string(nil), values...)
	}

	return out
}
