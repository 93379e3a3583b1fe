package commission

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// namespace fija para derivar IDs deterministas de las comisiones por defecto.
var namespace = uuid.MustParse("6f1c3f5e-2b1a-4c8e-9d7a-3e5b0c4a9f21")

// Porcentajes por defecto para medios de pago simples.
var simpleDefaults = map[string]string{
	entity.PaymentMethodCash:     "0",
	entity.PaymentMethodTransfer: "0",
	entity.PaymentMethodQR:       "1.2",
	entity.PaymentMethodDebit:    "2.0",
}

// Porcentajes por defecto de tarjeta_credito: marca -> cuotas -> %.
var creditDefaults = map[string]map[int]string{
	entity.CardBrandVisa:       {1: "2.8", 3: "3.2", 6: "3.5", 12: "4.0"},
	entity.CardBrandMastercard: {1: "2.8", 3: "3.2", 6: "3.5", 12: "4.0"},
	entity.CardBrandNaranja:    {1: "3.5", 3: "4.0", 6: "4.5", 12: "5.0"},
	entity.CardBrandTuya:       {1: "3.0", 3: "3.5", 6: "4.0", 12: "4.5"},
}

// DefaultPercentage devuelve el porcentaje de la tabla incorporada.
// Para tarjeta_credito sin marca o cuotas (o con valores desconocidos) no hay default.
func DefaultPercentage(paymentMethod string, cardBrand *string, installments *int) (decimal.Decimal, bool) {
	if paymentMethod == entity.PaymentMethodCredit {
		if cardBrand == nil || installments == nil {
			return decimal.Zero, false
		}
		byInst, ok := creditDefaults[*cardBrand]
		if !ok {
			return decimal.Zero, false
		}
		p, ok := byInst[*installments]
		if !ok {
			return decimal.Zero, false
		}
		return decimal.RequireFromString(p), true
	}
	p, ok := simpleDefaults[paymentMethod]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.RequireFromString(p), true
}

// ConfigID deriva el ID de una fila a partir de su clave natural
// (userId, paymentMethod, cardBrand, installments). Reprovisionar no duplica.
func ConfigID(userID, paymentMethod string, cardBrand *string, installments *int) string {
	brand, inst := "", ""
	if cardBrand != nil {
		brand = *cardBrand
	}
	if installments != nil {
		inst = fmt.Sprintf("%d", *installments)
	}
	key := userID + "|" + paymentMethod + "|" + brand + "|" + inst
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

// Defaults construye las 20 filas por defecto de un usuario:
// 4 medios simples + 4 marcas x 4 cuotas de tarjeta_credito.
func Defaults(userID string, now time.Time) []*entity.CommissionConfig {
	out := make([]*entity.CommissionConfig, 0, len(entity.SimplePaymentMethods)+len(entity.CardBrands)*len(entity.InstallmentOptions))
	for _, m := range entity.SimplePaymentMethods {
		pct, _ := DefaultPercentage(m, nil, nil)
		out = append(out, &entity.CommissionConfig{
			ID:            ConfigID(userID, m, nil, nil),
			UserID:        userID,
			PaymentMethod: m,
			Percentage:    pct,
			IsActive:      true,
			UpdatedAt:     now,
		})
	}
	for _, b := range entity.CardBrands {
		for _, n := range entity.InstallmentOptions {
			brand, inst := b, n
			pct, _ := DefaultPercentage(entity.PaymentMethodCredit, &brand, &inst)
			out = append(out, &entity.CommissionConfig{
				ID:            ConfigID(userID, entity.PaymentMethodCredit, &brand, &inst),
				UserID:        userID,
				PaymentMethod: entity.PaymentMethodCredit,
				CardBrand:     &brand,
				Installments:  &inst,
				Percentage:    pct,
				IsActive:      true,
				UpdatedAt:     now,
			})
		}
	}
	return out
}

var hundred = decimal.NewFromInt(100)

// Compute calcula amount * percentage / 100 + fixedAmount, sin redondear.
func Compute(amount, percentage decimal.Decimal, fixedAmount *decimal.Decimal) decimal.Decimal {
	c := amount.Mul(percentage).Div(hundred)
	if fixedAmount != nil {
		c = c.Add(*fixedAmount)
	}
	return c
}
