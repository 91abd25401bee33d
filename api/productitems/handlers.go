package productitems

import (
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (pirm *ProductItemRoutesManager) CreateProductItem(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductItemRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode product item request", pirm.logger)
		return
	}

	link, err := pirm.productItemService.CreateProductItem(r.Context(), body)
	if err != nil {
		handling.WriteError(w, err, "create product item", pirm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product item created"),
		gecho.WithData(link),
		gecho.Send(),
	)
}

func (pirm *ProductItemRoutesManager) ListProductItems(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handling.ParsePagination(r)
	if err != nil {
		handling.WriteError(w, err, "parse pagination", pirm.logger)
		return
	}

	result, err := pirm.productItemService.ListProductItems(r.Context(), page, limit)
	if err != nil {
		handling.WriteError(w, err, "list product items", pirm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (pirm *ProductItemRoutesManager) GetProductItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product item id", pirm.logger)
		return
	}

	link, err := pirm.productItemService.FindProductItem(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "find product item", pirm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(link), gecho.Send())
}

func (pirm *ProductItemRoutesManager) UpdateProductItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product item id", pirm.logger)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductItemRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode product item request", pirm.logger)
		return
	}

	link, err := pirm.productItemService.UpdateProductItem(r.Context(), id, body)
	if err != nil {
		handling.WriteError(w, err, "update product item", pirm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product item updated"),
		gecho.WithData(link),
		gecho.Send(),
	)
}

func (pirm *ProductItemRoutesManager) DeleteProductItem(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product item id", pirm.logger)
		return
	}

	if err := pirm.productItemService.DeleteProductItem(r.Context(), id); err != nil {
		handling.WriteError(w, err, "delete product item", pirm.logger)
		return
	}

	gecho.Success(w, gecho.WithMessage("Product item deleted"), gecho.Send())
}
