package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	domledger "github.com/jhoicas/caja-api/internal/domain/ledger"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

const importedDescription = "Movimiento importado"

// UseCase motor del libro de cuenta corriente: movimientos con saldo acumulado por cliente.
type UseCase struct {
	customers repository.CustomerRepository
	movements repository.AccountMovementRepository
	tx        TxRunner
	clock     *clock.Clock
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	customers repository.CustomerRepository,
	movements repository.AccountMovementRepository,
	tx TxRunner,
	clk *clock.Clock,
	log *logger.Logger,
) *UseCase {
	return &UseCase{customers: customers, movements: movements, tx: tx, clock: clk, log: log.Named("ledger")}
}

// ── Alta ──

// Create registra un movimiento con saldo = saldo actual + amount.
// El signo de amount debe corresponder al tipo (sale > 0, payment < 0, adjustment != 0).
// ErrNotFound si el cliente no existe o pertenece a otro usuario.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	description := strings.TrimSpace(in.Description)
	if in.CustomerID == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := domledger.ValidateSign(in.Type, in.Amount); err != nil {
		return nil, err
	}
	date := in.Date
	if date == "" {
		date = uc.clock.Today()
	} else if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.AccountMovement
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		customer, err := customers.GetForUpdate(ctx, in.CustomerID)
		if err != nil {
			return fmt.Errorf("obtener cliente: %w", err)
		}
		if customer == nil || customer.UserID != userID {
			return domain.ErrNotFound
		}

		latest, err := movements.Latest(ctx, userID, customer.ID)
		if err != nil {
			return fmt.Errorf("obtener saldo: %w", err)
		}
		balance := decimal.Zero
		if latest != nil {
			balance = latest.Balance
		}

		now := uc.clock.Now()
		m := &entity.AccountMovement{
			ID:           uuid.New().String(),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Date:         date,
			Description:  description,
			Code:         domledger.NormalizeCode(in.Code),
			Amount:       in.Amount,
			Balance:      balance.Add(in.Amount),
			Type:         in.Type,
			UserID:       userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := movements.Create(ctx, m); err != nil {
			return fmt.Errorf("crear movimiento: %w", err)
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromMovement(created), nil
}

// ── Lectura ──

// List devuelve los movimientos del usuario, del más reciente al más antiguo.
func (uc *UseCase) List(ctx context.Context, userID string, q dto.MovementFilterQuery) ([]*dto.MovementResponse, error) {
	ms, err := uc.movements.List(ctx, repository.MovementFilter{
		UserID:     userID,
		CustomerID: q.CustomerID,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Type:       q.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	return dto.FromMovements(ms), nil
}

// GetByID devuelve (nil, nil) tanto si el movimiento no existe como si es de otro usuario.
func (uc *UseCase) GetByID(ctx context.Context, id, userID string) (*dto.MovementResponse, error) {
	m, err := uc.getOwned(ctx, uc.movements, id, userID)
	if err != nil || m == nil {
		return nil, err
	}
	return dto.FromMovement(m), nil
}

// Balance devuelve el saldo del movimiento más reciente del cliente, o 0 si no tiene movimientos.
func (uc *UseCase) Balance(ctx context.Context, customerID, userID string) (decimal.Decimal, error) {
	latest, err := uc.movements.Latest(ctx, userID, customerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("obtener saldo: %w", err)
	}
	if latest == nil {
		return decimal.Zero, nil
	}
	return latest.Balance, nil
}

// Account devuelve la cuenta corriente completa del cliente con totales.
func (uc *UseCase) Account(ctx context.Context, customerID, userID string) (*dto.CustomerAccountResponse, error) {
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if customer == nil || customer.UserID != userID {
		return nil, domain.ErrNotFound
	}
	ms, err := uc.movements.List(ctx, repository.MovementFilter{UserID: userID, CustomerID: customerID})
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	sales, payments := domledger.Totals(ms)
	return &dto.CustomerAccountResponse{
		Customer:       dto.FromCustomer(customer),
		Movements:      dto.FromMovements(ms),
		CurrentBalance: domledger.CurrentBalance(ms),
		TotalSales:     sales,
		TotalPayments:  payments,
	}, nil
}

// ── Modificación ──

// Update modifica description, code, date y/o amount. Si cambia amount, el saldo de este
// movimiento se ajusta por la diferencia; los movimientos posteriores no se recalculan
// (ver Recalculate). Devuelve (nil, nil) si no existe o es de otro usuario.
func (uc *UseCase) Update(ctx context.Context, id, userID string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Date != nil && !clock.ValidDate(*in.Date) {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.AccountMovement
	err := uc.tx.Run(ctx, func(_ repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		m, err := uc.getOwned(ctx, movements, id, userID)
		if err != nil || m == nil {
			return err
		}
		if in.Amount != nil {
			if err := domledger.ValidateSign(m.Type, *in.Amount); err != nil {
				return err
			}
			m.Balance = m.Balance.Add(in.Amount.Sub(m.Amount))
			m.Amount = *in.Amount
		}
		if in.Description != nil {
			m.Description = strings.TrimSpace(*in.Description)
		}
		if in.Code != nil {
			m.Code = domledger.NormalizeCode(in.Code)
		}
		if in.Date != nil {
			m.Date = *in.Date
		}
		m.UpdatedAt = uc.clock.Now()
		if err := movements.Update(ctx, m); err != nil {
			return fmt.Errorf("actualizar movimiento: %w", err)
		}
		updated = m
		return nil
	})
	if err != nil || updated == nil {
		return nil, err
	}
	return dto.FromMovement(updated), nil
}

// Delete elimina el movimiento sin recalcular los saldos posteriores.
// Devuelve false si no existe o es de otro usuario.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) (bool, error) {
	deleted := false
	err := uc.tx.Run(ctx, func(_ repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		m, err := uc.getOwned(ctx, movements, id, userID)
		if err != nil || m == nil {
			return err
		}
		if err := movements.Delete(ctx, m.ID); err != nil {
			return fmt.Errorf("eliminar movimiento: %w", err)
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// Recalculate reescribe el saldo de cada movimiento del cliente como suma acumulada
// de los montos, del más antiguo al más reciente, en una sola transacción.
func (uc *UseCase) Recalculate(ctx context.Context, customerID, userID string) (*dto.RecalculateResponse, error) {
	out := &dto.RecalculateResponse{CurrentBalance: decimal.Zero}
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		customer, err := customers.GetForUpdate(ctx, customerID)
		if err != nil {
			return fmt.Errorf("obtener cliente: %w", err)
		}
		if customer == nil || customer.UserID != userID {
			return domain.ErrNotFound
		}
		ms, err := movements.List(ctx, repository.MovementFilter{UserID: userID, CustomerID: customerID})
		if err != nil {
			return fmt.Errorf("listar movimientos: %w", err)
		}
		changed := domledger.Recompute(ms)
		now := uc.clock.Now()
		for _, m := range changed {
			m.UpdatedAt = now
			if err := movements.Update(ctx, m); err != nil {
				return fmt.Errorf("actualizar saldo: %w", err)
			}
		}
		out.Updated = len(changed)
		out.CurrentBalance = domledger.CurrentBalance(ms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customerID).Int("updated", out.Updated).Msg("saldos recalculados")
	return out, nil
}

// ── Importación ──

// ImportMovements inserta movimientos ya calculados por la fuente: amount, balance y type
// se guardan tal cual. Se ordenan ascendente por fecha (orden estable) antes de escribir.
func (uc *UseCase) ImportMovements(ctx context.Context, customerID, userID string, items []dto.ImportMovementItem) ([]*dto.MovementResponse, error) {
	if err := validateImportItems(items); err != nil {
		return nil, err
	}
	var created []*entity.AccountMovement
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		customer, err := customers.GetForUpdate(ctx, customerID)
		if err != nil {
			return fmt.Errorf("obtener cliente: %w", err)
		}
		if customer == nil || customer.UserID != userID {
			return domain.ErrNotFound
		}
		created, err = uc.importInto(ctx, movements, customer, userID, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customerID).Int("count", len(created)).Msg("movimientos importados")
	return dto.FromMovements(created), nil
}

// ImportCustomerData resuelve el cliente por nombre (sin distinguir mayúsculas) o lo crea,
// y luego importa las filas de planilla: amount = |precio|, type = sale si precio > 0
// (si no, payment) y balance = saldo sin recalcular.
func (uc *UseCase) ImportCustomerData(ctx context.Context, userID string, in dto.ImportCustomerDataRequest) (*dto.ImportCustomerDataResponse, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	items := make([]dto.ImportMovementItem, 0, len(in.Movements))
	for _, row := range in.Movements {
		description := strings.TrimSpace(row.Descripcion)
		if description == "" {
			description = importedDescription
		}
		typ := entity.MovementTypePayment
		if row.Precio.IsPositive() {
			typ = entity.MovementTypeSale
		}
		items = append(items, dto.ImportMovementItem{
			Date:        row.Fecha,
			Description: description,
			Code:        row.Codigo,
			Amount:      row.Precio.Abs(),
			Balance:     row.Saldo,
			Type:        typ,
		})
	}
	if err := validateImportItems(items); err != nil {
		return nil, err
	}

	var (
		customer *entity.Customer
		created  []*entity.AccountMovement
	)
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, movements repository.AccountMovementRepository) error {
		var err error
		customer, err = uc.findOrCreateByName(ctx, customers, userID, name)
		if err != nil {
			return err
		}
		created, err = uc.importInto(ctx, movements, customer, userID, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customer.ID).Int("count", len(created)).Msg("planilla importada")
	return &dto.ImportCustomerDataResponse{
		Customer:  dto.FromCustomer(customer),
		Movements: dto.FromMovements(created),
	}, nil
}

func (uc *UseCase) importInto(ctx context.Context, movements repository.AccountMovementRepository, customer *entity.Customer, userID string, items []dto.ImportMovementItem) ([]*entity.AccountMovement, error) {
	sorted := make([]dto.ImportMovementItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	now := uc.clock.Now()
	out := make([]*entity.AccountMovement, 0, len(sorted))
	for _, it := range sorted {
		m := &entity.AccountMovement{
			ID:           uuid.New().String(),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Date:         it.Date,
			Description:  strings.TrimSpace(it.Description),
			Code:         domledger.NormalizeCode(it.Code),
			Amount:       it.Amount,
			Balance:      it.Balance,
			Type:         it.Type,
			UserID:       userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := movements.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("importar movimiento: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (uc *UseCase) findOrCreateByName(ctx context.Context, customers repository.CustomerRepository, userID, name string) (*entity.Customer, error) {
	list, err := customers.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	fold := cases.Fold()
	want := fold.String(name)
	for _, c := range list {
		if fold.String(strings.TrimSpace(c.Name)) == want {
			return c, nil
		}
	}

	now := uc.clock.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Notes:     "Cliente importado desde Excel - " + now.Format("02/01/2006"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return c, nil
}

// getOwned devuelve el movimiento solo si pertenece a userID.
func (uc *UseCase) getOwned(ctx context.Context, movements repository.AccountMovementRepository, id, userID string) (*entity.AccountMovement, error) {
	m, err := movements.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener movimiento: %w", err)
	}
	if m == nil || m.UserID != userID {
		return nil, nil
	}
	return m, nil
}

func validateImportItems(items []dto.ImportMovementItem) error {
	for _, it := range items {
		if !clock.ValidDate(it.Date) || strings.TrimSpace(it.Description) == "" || !entity.IsValidMovementType(it.Type) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
