package products

import (
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode product request", prm.logger)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		handling.WriteError(w, err, "create product", prm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product id", prm.logger)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode product request", prm.logger)
		return
	}

	product, err := prm.productService.UpdateProduct(r.Context(), id, body)
	if err != nil {
		handling.WriteError(w, err, "update product", prm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse product id", prm.logger)
		return
	}

	if err := prm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.WriteError(w, err, "delete product", prm.logger)
		return
	}

	gecho.Success(w, gecho.WithMessage("Product deleted"), gecho.Send())
}
