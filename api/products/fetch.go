package products

import (
	"foodmenu_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchAllProducts handles GET /api/products with filtering and pagination
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handling.ParsePagination(r)
	if err != nil {
		handling.WriteError(w, err, "parse pagination", prm.logger)
		return
	}

	filters, err := handling.ParseProductListFilters(r)
	if err != nil {
		handling.WriteError(w, err, "parse product filters", prm.logger)
		return
	}

	prm.logger.Debug("Fetching products",
		gecho.Field("page", page),
		gecho.Field("limit", limit),
		gecho.Field("search", filters.Search),
	)

	result, err := prm.productService.ListProducts(r.Context(), filters, page, limit)
	if err != nil {
		handling.WriteError(w, err, "list products", prm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product id", prm.logger)
		return
	}

	product, err := prm.productService.FindProduct(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "find product", prm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(product), gecho.Send())
}

// FetchProductItems lists the item links of a product, which drive its customization rules
func (prm *ProductRoutesManager) FetchProductItems(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product id", prm.logger)
		return
	}

	links, err := prm.productItemService.ListByProduct(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "list product items", prm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(links), gecho.Send())
}
