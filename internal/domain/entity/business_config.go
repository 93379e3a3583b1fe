package entity

import "time"

// BusinessConfig datos del negocio usados en encabezados de comprobantes. Uno por usuario.
type BusinessConfig struct {
	ID           string
	UserID       string
	BusinessName string
	OwnerName    string
	Address      string
	Phone        string
	Email        string
	Website      string
	Logo         string // URL del logo, opcional
	Description  string
	Currency     string // ARS, USD, ...
	Timezone     string // America/Argentina/Buenos_Aires
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
