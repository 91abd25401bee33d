package categories

import (
	"foodmenu_server/handling"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode category request", crm.logger)
		return
	}

	category, err := crm.categoryService.CreateCategory(r.Context(), body)
	if err != nil {
		handling.WriteError(w, err, "create category", crm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handling.ParsePagination(r)
	if err != nil {
		handling.WriteError(w, err, "parse pagination", crm.logger)
		return
	}

	result, err := crm.categoryService.ListCategories(r.Context(), page, limit)
	if err != nil {
		handling.WriteError(w, err, "list categories", crm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (crm *CategoryRoutesManager) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse category id", crm.logger)
		return
	}

	category, err := crm.categoryService.FindCategory(r.Context(), id)
	if err != nil {
		handling.WriteError(w, err, "find category", crm.logger)
		return
	}

	gecho.Success(w, gecho.WithData(category), gecho.Send())
}

func (crm *CategoryRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse category id", crm.logger)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.WriteError(w, err, "decode category request", crm.logger)
		return
	}

	category, err := crm.categoryService.UpdateCategory(r.Context(), id, body)
	if err != nil {
		handling.WriteError(w, err, "update category", crm.logger)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.WriteError(w, err, "parse category id", crm.logger)
		return
	}

	if err := crm.categoryService.DeleteCategory(r.Context(), id); err != nil {
		handling.WriteError(w, err, "delete category", crm.logger)
		return
	}

	gecho.Success(w, gecho.WithMessage("Category deleted"), gecho.Send())
}
