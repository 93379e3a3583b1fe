package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago.
const (
	PaymentMethodCash     = "efectivo"
	PaymentMethodTransfer = "transferencia"
	PaymentMethodQR       = "qr"
	PaymentMethodDebit    = "tarjeta_debito"
	PaymentMethodCredit   = "tarjeta_credito"
)

// Marcas de tarjeta de crédito.
const (
	CardBrandVisa       = "visa"
	CardBrandMastercard = "mastercard"
	CardBrandNaranja    = "naranja"
	CardBrandTuya       = "tuya"
)

// SimplePaymentMethods medios de pago con una única comisión (sin marca ni cuotas).
var SimplePaymentMethods = []string{PaymentMethodCash, PaymentMethodTransfer, PaymentMethodQR, PaymentMethodDebit}

// CardBrands marcas soportadas para tarjeta_credito.
var CardBrands = []string{CardBrandVisa, CardBrandMastercard, CardBrandNaranja, CardBrandTuya}

// InstallmentOptions cuotas soportadas para tarjeta_credito.
var InstallmentOptions = []int{1, 3, 6, 12}

// CommissionConfig comisión configurada por el usuario para un medio de pago.
// CardBrand e Installments solo aplican a tarjeta_credito.
type CommissionConfig struct {
	ID            string
	UserID        string
	PaymentMethod string
	CardBrand     *string
	Installments  *int
	Percentage    decimal.Decimal
	FixedAmount   *decimal.Decimal
	IsActive      bool
	UpdatedAt     time.Time
}

// IsValidPaymentMethod indica si m es un medio de pago conocido.
func IsValidPaymentMethod(m string) bool {
	if m == PaymentMethodCredit {
		return true
	}
	for _, s := range SimplePaymentMethods {
		if s == m {
			return true
		}
	}
	return false
}

// IsValidCardBrand indica si b es una marca de tarjeta conocida.
func IsValidCardBrand(b string) bool {
	for _, s := range CardBrands {
		if s == b {
			return true
		}
	}
	return false
}

// IsValidInstallments indica si n es una cantidad de cuotas soportada.
func IsValidInstallments(n int) bool {
	for _, s := range InstallmentOptions {
		if s == n {
			return true
		}
	}
	return false
}
