// Package memory implementa los repositorios sobre mapas en proceso.
// Se usa en tests y para levantar la API sin base de datos (STORE_DRIVER=memory).
package memory

import (
	"sync"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	customers   map[string]*entity.Customer
	movements   map[string]*entity.AccountMovement
	movementSeq int64
	commissions map[string]*entity.CommissionConfig
	sales       map[string]*entity.Sale
	withdrawals map[string]*entity.Withdrawal
	business    map[string]*entity.BusinessConfig // por userID
	users       map[string]*entity.User

	// ledgerMu serializa todas las mutaciones del libro (ver LedgerTxRunner).
	ledgerMu sync.Mutex
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		customers:   make(map[string]*entity.Customer),
		movements:   make(map[string]*entity.AccountMovement),
		commissions: make(map[string]*entity.CommissionConfig),
		sales:       make(map[string]*entity.Sale),
		withdrawals: make(map[string]*entity.Withdrawal),
		business:    make(map[string]*entity.BusinessConfig),
		users:       make(map[string]*entity.User),
	}
}

// journal registra operaciones inversas para deshacer una transacción fallida.
type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) {
	if j != nil {
		j.undo = append(j.undo, fn)
	}
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// inRange compara días YYYY-MM-DD (orden lexicográfico = cronológico).
func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

// ── Copias defensivas ──

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	out := *c
	if c.CreditLimit != nil {
		v := *c.CreditLimit
		out.CreditLimit = &v
	}
	return &out
}

func cloneMovement(m *entity.AccountMovement) *entity.AccountMovement {
	out := *m
	out.Code = cloneStr(m.Code)
	return &out
}

func cloneCommission(c *entity.CommissionConfig) *entity.CommissionConfig {
	out := *c
	out.CardBrand = cloneStr(c.CardBrand)
	out.Installments = cloneInt(c.Installments)
	if c.FixedAmount != nil {
		v := *c.FixedAmount
		out.FixedAmount = &v
	}
	return &out
}

func cloneSale(s *entity.Sale) *entity.Sale {
	out := *s
	out.CardBrand = cloneStr(s.CardBrand)
	out.Installments = cloneInt(s.Installments)
	return &out
}
