package orders

import (
	"foodmenu_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListOrders handles GET /api/orders?page=&limit=&status=&clientId=
func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handling.ParsePagination(r)
	if err != nil {
		handling.WriteError(w, err, "parse pagination", orm.logger)
		return
	}

	filters, err := handling.ParseOrderListFilters(r)
	if err != nil {
		handling.WriteError(w, err, "parse order filters", orm.logger)
		return
	}

	result, err := orm.orderService.ListOrders(r.Context(), filters, page, limit)
	if err != nil {
		handling.WriteError(w, err, "list orders", orm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse order id", orm.logger)
		return
	}

	order, err := orm.orderService.FindOrder(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "find order", orm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
