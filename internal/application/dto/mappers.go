package dto

import "github.com/jhoicas/caja-api/internal/domain/entity"

// ── Entidad -> respuesta ──

func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		TaxID:       c.TaxID,
		CreditLimit: c.CreditLimit,
		Notes:       c.Notes,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromMovement(m *entity.AccountMovement) *MovementResponse {
	return &MovementResponse{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		Date:         m.Date,
		Description:  m.Description,
		Code:         m.Code,
		Amount:       m.Amount,
		Balance:      m.Balance,
		Type:         m.Type,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromMovements(ms []*entity.AccountMovement) []*MovementResponse {
	out := make([]*MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMovement(m))
	}
	return out
}

func FromCommission(c *entity.CommissionConfig) *CommissionResponse {
	return &CommissionResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		PaymentMethod: c.PaymentMethod,
		CardBrand:     c.CardBrand,
		Installments:  c.Installments,
		Percentage:    c.Percentage,
		FixedAmount:   c.FixedAmount,
		IsActive:      c.IsActive,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromSale(s *entity.Sale) *SaleResponse {
	return &SaleResponse{
		ID:               s.ID,
		Date:             s.Date,
		Description:      s.Description,
		CashAmount:       s.CashAmount,
		DigitalAmount:    s.DigitalAmount,
		CommissionAmount: s.CommissionAmount,
		PaymentMethod:    s.PaymentMethod,
		CardBrand:        s.CardBrand,
		Installments:     s.Installments,
		UserID:           s.UserID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromSales(ss []*entity.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSale(s))
	}
	return out
}

func FromWithdrawal(w *entity.Withdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:          w.ID,
		Amount:      w.Amount,
		Reason:      w.Reason,
		Description: w.Description,
		Date:        w.Date,
		UserID:      w.UserID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func FromWithdrawals(ws []*entity.Withdrawal) []*WithdrawalResponse {
	out := make([]*WithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWithdrawal(w))
	}
	return out
}

func FromBusiness(b *entity.BusinessConfig) *BusinessResponse {
	return &BusinessResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		BusinessName: b.BusinessName,
		OwnerName:    b.OwnerName,
		Address:      b.Address,
		Phone:        b.Phone,
		Email:        b.Email,
		Website:      b.Website,
		Logo:         b.Logo,
		Description:  b.Description,
		Currency:     b.Currency,
		Timezone:     b.Timezone,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
	}
}
