package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/pkg/apierror"
	"inventory-rest-api/pkg/uid"
)

// Pagination bounds for operation listings.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// maxPage keeps (page-1)*limit within int.
	maxPage = math.MaxInt / maxLimit
)

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, ok := uid.ParseID(chi.URLParam(r, name))
	if !ok {
		return 0, apierror.ValidationError("Invalid path parameter", apierror.FieldError{
			Field:   name,
			Message: "must be a positive integer",
		})
	}
	return id, nil
}

// optionalQueryID parses a positive integer query parameter. An absent
// parameter yields 0.
func optionalQueryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, ok := uid.ParseID(raw)
	if !ok {
		return 0, apierror.ValidationError("Invalid query parameter", apierror.FieldError{
			Field:   name,
			Message: "must be a positive integer",
		})
	}
	return id, nil
}

// parsePage reads page, limit and order from the query string. Absent values
// take their defaults; limit is capped at maxLimit.
func parsePage(r *http.Request) (model.Page, error) {
	q := r.URL.Query()
	page := model.Page{Number: defaultPage, Limit: defaultLimit, Order: model.SortDesc}
	var details []apierror.FieldError

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPage {
			details = append(details, apierror.FieldError{Field: "page", Message: "must be a positive integer no larger than " + strconv.Itoa(maxPage)})
		} else {
			page.Number = n
		}
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			details = append(details, apierror.FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			page.Limit = min(n, maxLimit)
		}
	}

	if raw := q.Get("order"); raw != "" {
		switch model.SortOrder(strings.ToLower(raw)) {
		case model.SortAsc:
			page.Order = model.SortAsc
		case model.SortDesc:
			page.Order = model.SortDesc
		default:
			details = append(details, apierror.FieldError{Field: "order", Message: "must be one of: asc, desc"})
		}
	}

	if len(details) > 0 {
		return model.Page{}, apierror.ValidationError("Invalid pagination parameters", details...)
	}
	return page, nil
}
