package items

import (
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (irm *ItemRoutesManager) CreateItem(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ItemRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode item request", irm.logger)
		return
	}

	item, err := irm.itemService.CreateItem(r.Context(), body)
	if err != nil {
		handling.WriteError(w, err, "create item", irm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item created"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (irm *ItemRoutesManager) ListItems(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handling.ParsePagination(r)
	if err != nil {
		handling.WriteError(w, err, "parse pagination", irm.logger)
		return
	}

	result, err := irm.itemService.ListItems(r.Context(), page, limit)
	if err != nil {
		handling.WriteError(w, err, "list items", irm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (irm *ItemRoutesManager) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse item id", irm.logger)
		return
	}

	item, err := irm.itemService.FindItem(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "find item", irm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(item), gecho.Send())
}

func (irm *ItemRoutesManager) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse item id", irm.logger)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ItemRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode item request", irm.logger)
		return
	}

	item, err := irm.itemService.UpdateItem(r.Context(), id, body)
	if err != nil {
		handling.WriteError(w, err, "update item", irm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item updated"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (irm *ItemRoutesManager) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse item id", irm.logger)
		return
	}

	if err := irm.itemService.DeleteItem(r.Context(), id); err != nil {
		handling.WriteError(w, err, "delete item", irm.logger)
		return
	}

	gecho.Success(w, gecho.WithMessage("Item deleted"), gecho.Send())
}
