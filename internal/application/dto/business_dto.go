package dto

import "time"

// CreateBusinessRequest entrada para crear la configuración del negocio.
type CreateBusinessRequest struct {
	BusinessName string `json:"businessName" validate:"required,max=200"`
	OwnerName    string `json:"ownerName" validate:"omitempty,max=200"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	Website      string `json:"website" validate:"omitempty,url"`
	Logo         string `json:"logo" validate:"omitempty,url"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	Currency     string `json:"currency" validate:"omitempty,len=3"`
	Timezone     string `json:"timezone" validate:"omitempty,timezone"`
}

// UpdateBusinessRequest actualización parcial de la configuración del negocio.
type UpdateBusinessRequest struct {
	BusinessName *string `json:"businessName" validate:"omitempty,min=1,max=200"`
	OwnerName    *string `json:"ownerName" validate:"omitempty,max=200"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Logo         *string `json:"logo" validate:"omitempty,url"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	Currency     *string `json:"currency" validate:"omitempty,len=3"`
	Timezone     *string `json:"timezone" validate:"omitempty,timezone"`
}

// BusinessResponse salida de la configuración del negocio.
type BusinessResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	OwnerName    string    `json:"ownerName,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	Description  string    `json:"description,omitempty"`
	Currency     string    `json:"currency"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
