package dto

import "github.com/shopspring/decimal"

func init() {
	// Montos como números JSON (100.5) y no como strings ("100.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// APIResponse sobre común de todas las respuestas: {success, data?, message?}.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse cuerpo de error HTTP: {success:false, error, code?, details?}.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError detalle de validación por campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DateRangeQuery filtro por rango de días YYYY-MM-DD inclusivo.
type DateRangeQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
