package orders

import (
	"foodmenu_server/api/health"
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse order id", orm.logger)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode status request", orm.logger)
		return
	}

	order, err := orm.orderService.UpdateOrderStatus(r.Context(), id, body.Status)
	if err != nil {
		handling.WriteError(w, err, "update order status", orm.logger)
		return
	}

	health.OrderStatusChanges.WithLabelValues(string(order.Status)).Inc()

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse order id", orm.logger)
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), id); err != nil {
		handling.WriteError(w, err, "delete order", orm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
