// Package pdf arma los comprobantes de caja con Maroto v2.
//
// Layout común (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + contacto │ Título + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: detalle de venta / tablas de ventas y retiros /    │
//	│          movimientos de cuenta corriente                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

var _ receipts.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa receipts.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// SaleReceipt ticket de venta: detalle, bruto, comisión y neto.
func (g *MarotoPDFGenerator) SaleReceipt(_ context.Context, sale *dto.SaleResponse, business *dto.BusinessResponse) ([]byte, error) {
	m := newDocument("Comprobante de venta", business)

	m.AddRows(headerRow(business, "COMPROBANTE DE VENTA", formatDate(sale.Date)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(
		fieldRow("Descripción", sale.Description),
		fieldRow("Medio de pago", paymentLabel(sale.PaymentMethod, sale.CardBrand, sale.Installments)),
		fieldRow("N° de operación", sale.ID),
	)

	gross := sale.CashAmount.Add(sale.DigitalAmount)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([]totalLine{
		{label: "Total venta:", value: gross},
		{label: "Comisión:", value: sale.CommissionAmount.Neg()},
		{label: "NETO:", value: gross.Sub(sale.CommissionAmount), grand: true},
	}))

	return generate(m)
}

// DailyClosure cierre de caja: resumen del día y tablas de ventas y retiros.
func (g *MarotoPDFGenerator) DailyClosure(_ context.Context, c *dto.DailyClosure) ([]byte, error) {
	m := newDocument("Cierre de caja", c.Business)

	m.AddRows(headerRow(c.Business, "CIERRE DE CAJA", formatDate(c.Date)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(c.Business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	s := c.Summary
	m.AddRows(sectionTitle("RESUMEN"))
	m.AddRows(totalsRow([]totalLine{
		{label: "Efectivo:", value: s.TotalCash},
		{label: "Digital:", value: s.TotalDigital},
		{label: "Comisiones:", value: s.TotalCommissions.Neg()},
		{label: fmt.Sprintf("Neto (%d ventas):", s.SalesCount), value: s.TotalNet},
		{label: fmt.Sprintf("Retiros (%d):", s.WithdrawalsCount), value: s.TotalWithdrawals.Neg()},
		{label: "SALDO FINAL:", value: s.FinalBalance, grand: true},
	}))

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("VENTAS"))
	m.AddRows(tableHeaderRow([]column{
		{"Descripción", 5, align.Left},
		{"Medio", 3, align.Left},
		{"Importe", 2, align.Right},
		{"Comisión", 2, align.Right},
	}))
	if len(c.Sales) == 0 {
		m.AddRows(emptyRow("Sin ventas registradas"))
	}
	for _, sale := range c.Sales {
		m.AddRows(tableRow([]cell{
			{sale.Description, 5, align.Left, nil},
			{paymentLabel(sale.PaymentMethod, sale.CardBrand, sale.Installments), 3, align.Left, nil},
			{formatMoney(sale.CashAmount.Add(sale.DigitalAmount)), 2, align.Right, nil},
			{formatMoney(sale.CommissionAmount), 2, align.Right, nil},
		}))
	}

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("RETIROS"))
	m.AddRows(tableHeaderRow([]column{
		{"Motivo", 4, align.Left},
		{"Descripción", 6, align.Left},
		{"Importe", 2, align.Right},
	}))
	if len(c.Withdrawals) == 0 {
		m.AddRows(emptyRow("Sin retiros registrados"))
	}
	for _, w := range c.Withdrawals {
		m.AddRows(tableRow([]cell{
			{withdrawalLabel(w.Reason), 4, align.Left, nil},
			{nonEmpty(w.Description, "-"), 6, align.Left, nil},
			{formatMoney(w.Amount), 2, align.Right, nil},
		}))
	}

	return generate(m)
}

// CustomerStatement resumen de cuenta corriente: movimientos del más antiguo al más
// reciente con el saldo guardado en cada uno.
func (g *MarotoPDFGenerator) CustomerStatement(_ context.Context, a *dto.CustomerAccountResponse, business *dto.BusinessResponse) ([]byte, error) {
	m := newDocument("Resumen de cuenta", business)

	m.AddRows(headerRow(business, "RESUMEN DE CUENTA", time.Now().Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(a.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"Fecha", 2, align.Left},
		{"Descripción", 4, align.Left},
		{"Código", 2, align.Left},
		{"Importe", 2, align.Right},
		{"Saldo", 2, align.Right},
	}))
	if len(a.Movements) == 0 {
		m.AddRows(emptyRow("Sin movimientos"))
	}
	for i := len(a.Movements) - 1; i >= 0; i-- {
		mv := a.Movements[i]
		code := "-"
		if mv.Code != nil {
			code = *mv.Code
		}
		var amountColor *props.Color
		if mv.Amount.IsNegative() {
			amountColor = colorRed
		}
		m.AddRows(tableRow([]cell{
			{formatDate(mv.Date), 2, align.Left, nil},
			{mv.Description, 4, align.Left, nil},
			{code, 2, align.Left, nil},
			{formatMoney(mv.Amount), 2, align.Right, amountColor},
			{formatMoney(mv.Balance), 2, align.Right, nil},
		}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([]totalLine{
		{label: "Total ventas:", value: a.TotalSales},
		{label: "Total pagos:", value: a.TotalPayments.Neg()},
		{label: "SALDO ACTUAL:", value: a.CurrentBalance, grand: true},
	}))

	return generate(m)
}

// ── Documento ─────────────────────────────────────────────────────────────────

func newDocument(title string, business *dto.BusinessResponse) core.Maroto {
	author := "caja-api"
	if business != nil && business.BusinessName != "" {
		author = business.BusinessName
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(business *dto.BusinessResponse, title, date string) core.Row {
	name := "Mi negocio"
	owner := ""
	if business != nil {
		name = nonEmpty(business.BusinessName, name)
		owner = business.OwnerName
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(owner, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// contactRow: dirección, teléfono y email del negocio.
func contactRow(business *dto.BusinessResponse) core.Row {
	var address, phone, email string
	if business != nil {
		address, phone, email = business.Address, business.Phone, business.Email
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(address, "-"),
				nonEmpty(phone, "-"),
				nonEmpty(email, "-"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// customerRow: datos del titular de la cuenta.
func customerRow(c dto.CustomerResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CUIT/DNI: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(c.TaxID, "-"),
				nonEmpty(c.Email, "-"),
				nonEmpty(c.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func fieldRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

func emptyRow(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

type cell struct {
	value string
	size  int
	align align.Type
	color *props.Color
}

// tableHeaderRow: cabecera de tabla.
func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func tableRow(cells []cell) core.Row {
	out := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		out = append(out, col.New(c.size).Add(text.New(c.value, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1, Color: c.color,
		})))
	}
	return row.New(7).Add(out...)
}

type totalLine struct {
	label string
	value decimal.Decimal
	grand bool
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(lines []totalLine) core.Row {
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		p := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: float64(i) * 5}
		v := props.Text{Size: 9, Align: align.Right, Top: float64(i) * 5}
		if l.grand {
			p.Size, p.Color = 10, colorPrimary
			v.Size, v.Color, v.Style = 10, colorPrimary, fontstyle.Bold
		}
		labels = append(labels, text.New(l.label, p))
		values = append(values, text.New(formatMoney(l.value), v))
	}
	return row.New(float64(len(lines))*5+4).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate "2006-01-02" → "02/01/2006"; si no parsea, se devuelve tal cual.
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

var paymentLabels = map[string]string{
	entity.PaymentMethodCash:     "Efectivo",
	entity.PaymentMethodTransfer: "Transferencia",
	entity.PaymentMethodQR:       "QR",
	entity.PaymentMethodDebit:    "Tarjeta de débito",
	entity.PaymentMethodCredit:   "Tarjeta de crédito",
}

func paymentLabel(method string, brand *string, installments *int) string {
	label := nonEmpty(paymentLabels[method], method)
	if brand != nil {
		label += " " + titleCase(*brand)
	}
	if installments != nil && *installments > 1 {
		label += fmt.Sprintf(" (%d cuotas)", *installments)
	}
	return label
}

var withdrawalLabels = map[string]string{
	entity.WithdrawalReasonOperating: "Gastos operativos",
	entity.WithdrawalReasonSuppliers: "Pago a proveedores",
	entity.WithdrawalReasonSalaries:  "Salarios",
	entity.WithdrawalReasonServices:  "Servicios",
	entity.WithdrawalReasonTaxes:     "Impuestos",
	entity.WithdrawalReasonPersonal:  "Personal",
	entity.WithdrawalReasonOther:     "Otros",
}

func withdrawalLabel(reason string) string {
	return nonEmpty(withdrawalLabels[reason], reason)
}
