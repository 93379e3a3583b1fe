package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
)

// UseCase casos de uso para clientes con cuenta corriente.
type UseCase struct {
	repo      repository.CustomerRepository
	movements repository.AccountMovementRepository
	clock     *clock.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CustomerRepository, movements repository.AccountMovementRepository, clk *clock.Clock) *UseCase {
	return &UseCase{repo: repo, movements: movements, clock: clk}
}

// Create crea un nuevo cliente. El nombre es obligatorio.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit != nil && in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.clock.Now()
	c := &entity.Customer{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		TaxID:       strings.TrimSpace(in.TaxID),
		CreditLimit: in.CreditLimit,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// List lista los clientes del usuario ordenados por nombre.
// name filtra por subcadena sin distinguir mayúsculas.
func (uc *UseCase) List(ctx context.Context, userID, name string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	term := strings.TrimSpace(name)
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if term != "" && !containsFold(c.Name, term) {
			continue
		}
		out = append(out, dto.FromCustomer(c))
	}
	return out, nil
}

// Search busca por subcadena en nombre, email o teléfono.
func (uc *UseCase) Search(ctx context.Context, userID, q string) ([]dto.CustomerResponse, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0)
	for _, c := range list {
		if containsFold(c.Name, term) || containsFold(c.Email, term) || strings.Contains(c.Phone, term) {
			out = append(out, dto.FromCustomer(c))
		}
	}
	return out, nil
}

// GetByID devuelve ErrNotFound si no existe o pertenece a otro usuario.
func (uc *UseCase) GetByID(ctx context.Context, id, userID string) (*dto.CustomerResponse, error) {
	c, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Update aplica una actualización parcial. El nombre nuevo no se propaga a los movimientos ya registrados.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = name
	}
	if in.CreditLimit != nil {
		if in.CreditLimit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		limit := *in.CreditLimit
		c.CreditLimit = &limit
	}
	setIf(&c.Email, in.Email)
	setIf(&c.Phone, in.Phone)
	setIf(&c.Address, in.Address)
	setIf(&c.TaxID, in.TaxID)
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Delete elimina el cliente. Sus movimientos quedan en el libro.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) error {
	c, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}

// Balances devuelve cada cliente con su saldo actual (el del movimiento más reciente)
// y las fechas de la última venta y el último pago. hasDebt deja solo saldos > 0.
func (uc *UseCase) Balances(ctx context.Context, userID string, hasDebt bool) ([]dto.CustomerBalanceResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	// Una sola lectura del libro, ya ordenada del más reciente al más antiguo.
	ms, err := uc.movements.List(ctx, repository.MovementFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	type summary struct {
		balance             decimal.Decimal
		seen                bool
		lastSale, lastPayed string
	}
	byCustomer := make(map[string]*summary, len(list))
	for _, m := range ms {
		s, ok := byCustomer[m.CustomerID]
		if !ok {
			s = &summary{}
			byCustomer[m.CustomerID] = s
		}
		if !s.seen {
			s.balance, s.seen = m.Balance, true
		}
		if m.Type == entity.MovementTypeSale && s.lastSale == "" {
			s.lastSale = m.Date
		}
		if m.Type == entity.MovementTypePayment && s.lastPayed == "" {
			s.lastPayed = m.Date
		}
	}

	out := make([]dto.CustomerBalanceResponse, 0, len(list))
	for _, c := range list {
		row := dto.CustomerBalanceResponse{Customer: dto.FromCustomer(c), Balance: decimal.Zero}
		if s, ok := byCustomer[c.ID]; ok {
			row.Balance = s.balance
			row.LastSaleDate = s.lastSale
			row.LastPaymentDate = s.lastPayed
		}
		if hasDebt && !row.Balance.IsPositive() {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (uc *UseCase) getOwned(ctx context.Context, id, userID string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func containsFold(s, sub string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
