package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/pkg/apierror"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		want  model.Page
	}{
		{"", model.Page{Number: 1, Limit: 10, Order: model.SortDesc}},
		{"?page=3&limit=25", model.Page{Number: 3, Limit: 25, Order: model.SortDesc}},
		{"?limit=500", model.Page{Number: 1, Limit: 100, Order: model.SortDesc}},
		{"?order=ASC", model.Page{Number: 1, Limit: 10, Order: model.SortAsc}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := parsePage(httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageRejects(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?page=0&limit=ten&order=random", nil)
	_, err := parsePage(r)
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Len(t, apiErr.Details, 3)
}

func TestParsePageRejectsOverflowingPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?page=9223372036854775807&limit=10", nil)
	_, err := parsePage(r)
	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "page", apiErr.Details[0].Field)

	page, err := parsePage(httptest.NewRequest(http.MethodGet, "/x?page="+strconv.Itoa(maxPage)+"&limit=1000", nil))
	require.NoError(t, err)
	assert.Equal(t, maxPage, page.Number)
	assert.GreaterOrEqual(t, page.Offset(), 0)
}

func TestPathID(t *testing.T) {
	withParam := func(v string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("itemId", v)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := pathID(withParam("42"), "itemId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-1", "4.2", "abc", "99999999999999999999"} {
		_, err := pathID(withParam(bad), "itemId")
		assert.Error(t, err, bad)
	}
}
