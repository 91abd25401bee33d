package handling

import (
	"context"
	"encoding/json"
	"errors"
	"foodmenu_server/lib"
	"foodmenu_server/structs/tables"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "bad request", err: lib.BadRequest("invalid quantity for item #0"), status: http.StatusBadRequest, message: "invalid quantity for item #0"},
		{name: "not found", err: lib.NotFound("Order not found"), status: http.StatusNotFound, message: "Order not found"},
		{name: "conflict", err: lib.Conflict("resource already exists"), status: http.StatusConflict, message: "resource already exists"},
		{name: "invalid token", err: lib.ErrInvalidToken, status: http.StatusUnauthorized, message: "Token expired or invalid"},
		{name: "validation", err: &lib.ValidationError{Errors: []lib.FieldError{{Field: "items[0].title", Message: "is invalid"}}}, status: http.StatusBadRequest, message: "Validation failed"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err, "test", gecho.NewDefaultLogger())

			assert.Equal(t, tc.status, rec.Code)
			if tc.message != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.message, body["message"])
			} else {
				assert.NotContains(t, rec.Body.String(), "boom")
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	testCases := []struct {
		query string
		page  int
		limit int
		fails bool
	}{
		{query: "", page: 1, limit: 10},
		{query: "page=3&limit=25", page: 3, limit: 25},
		{query: "page=2&perPage=5", page: 2, limit: 5},
		{query: "page=0", fails: true},
		{query: "limit=abc", fails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/orders?"+tc.query, nil)
			page, limit, err := ParsePagination(r)
			if tc.fails {
				assert.True(t, lib.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.limit, limit)
		})
	}
}

func TestParseOrderListFilters(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders?status=paid&clientId=9", nil)
	filters, err := ParseOrderListFilters(r)
	require.NoError(t, err)
	require.NotNil(t, filters.Status)
	assert.Equal(t, tables.OrderStatusPaid, *filters.Status)
	assert.Equal(t, int64(9), *filters.ClientId)

	r = httptest.NewRequest(http.MethodGet, "/api/orders?status=shipped", nil)
	_, err = ParseOrderListFilters(r)
	assert.True(t, lib.IsBadRequest(err))
}

func TestParseProductListFilters(t *testing.T) {
	categoryID := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/products?categoryId="+categoryID.String()+"&available=true&search=+burg+", nil)

	filters, err := ParseProductListFilters(r)
	require.NoError(t, err)
	assert.Equal(t, categoryID, *filters.CategoryID)
	assert.True(t, *filters.Available)
	assert.Nil(t, filters.Customizable)
	assert.Equal(t, "burg", filters.Search)

	r = httptest.NewRequest(http.MethodGet, "/api/products?customizable=maybe", nil)
	_, err = ParseProductListFilters(r)
	assert.True(t, lib.IsBadRequest(err))
}

func TestParseUUIDParam(t *testing.T) {
	id := uuid.New()

	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	parsed, err := ParseUUIDParam(withParam(id.String()), "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUIDParam(withParam("not-a-uuid"), "id")
	assert.True(t, lib.IsBadRequest(err))
}
