package handling

import (
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ParsePagination reads page and limit (perPage is accepted as an alias). Missing values use the defaults.
func ParsePagination(r *http.Request) (page, limit int, err error) {
	query := r.URL.Query()
	page, limit = database.DefaultPage, database.DefaultPageSize

	if raw := query.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			return 0, 0, lib.BadRequest("page must be a positive integer")
		}
	}

	raw := query.Get("limit")
	if raw == "" {
		raw = query.Get("perPage")
	}
	if raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 1 {
			return 0, 0, lib.BadRequest("limit must be a positive integer")
		}
	}

	return page, limit, nil
}

func ParseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, lib.BadRequest("invalid %s", name)
	}
	return id, nil
}

func ParseOrderListFilters(r *http.Request) (structs.OrderListFilters, error) {
	query := r.URL.Query()
	filters := structs.OrderListFilters{}

	if raw := query.Get("status"); raw != "" {
		status := tables.OrderStatus(strings.ToUpper(raw))
		if !status.IsValid() {
			return filters, lib.BadRequest("invalid order status: %s", raw)
		}
		filters.Status = &status
	}

	if raw := query.Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, lib.BadRequest("clientId must be an integer")
		}
		filters.ClientId = &clientID
	}

	return filters, nil
}

func ParseProductListFilters(r *http.Request) (structs.ProductListFilters, error) {
	query := r.URL.Query()
	filters := structs.ProductListFilters{
		Search: strings.TrimSpace(query.Get("search")),
	}

	if raw := query.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, lib.BadRequest("invalid categoryId")
		}
		filters.CategoryID = &id
	}

	var err error
	if filters.Available, err = parseOptionalBool(query.Get("available"), "available"); err != nil {
		return filters, err
	}
	if filters.Customizable, err = parseOptionalBool(query.Get("customizable"), "customizable"); err != nil {
		return filters, err
	}

	return filters, nil
}

func parseOptionalBool(raw, name string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, lib.BadRequest("%s must be true or false", name)
	}
	return &v, nil
}
