package orders

import (
	"foodmenu_server/api/health"
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode order request", orm.logger)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		handling.WriteError(w, err, "create order", orm.logger)
		return
	}

	health.OrdersCreated.Inc()

	gecho.Success(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
