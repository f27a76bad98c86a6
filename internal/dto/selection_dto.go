package dto

import "ux-matching-be/internal/entity"

type ToggleSupplierRequest struct {
	SupplierId string `json:"supplierId" validate:"required"`
}

type SelectionResponse struct {
	SelectedSupplierIds []string `json:"selectedSupplierIds"`
	IsModified          bool     `json:"isModified"`
}

type SuppliersResponse struct {
	Suppliers []entity.Supplier `json:"suppliers"`
}
