// Package rfm implementa el motor de scoring RFM (Recency/Frequency/Monetary)
// para segmentación de clientes.
//
// El motor es una función pura sobre un snapshot en memoria de clientes y
// facturas: no hace I/O, no guarda estado y es determinista dado el mismo
// instante "now". Es la única implementación del algoritmo; cualquier
// consumidor (API, preview) debe invocarla en lugar de recalcular por su
// cuenta.
//
// Reglas de tolerancia sobre facturas malformadas:
//   - sin client_id: se excluye del agrupamiento.
//   - sin monto: cuenta como monto 0.
//   - sin fecha válida: cuenta para frequency y monetary, pero no actualiza
//     la última actividad (recency).
//
// El ancla de recencia es siempre la fecha de la factura (invoice_date),
// independiente del estado de pago.
package rfm

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RecencyNever es el sentinel de recencia para clientes sin facturas con
// fecha: ordena peor que cualquier valor real de días.
const RecencyNever = 9999

// Segmentos posibles, del mejor al peor.
const (
	SegmentChampion  = "Champion"
	SegmentLoyal     = "Loyal"
	SegmentPotential = "Potential"
	SegmentAtRisk    = "At Risk"
	SegmentLost      = "Lost"
	SegmentOther     = "Other"
)

// Client entrada mínima del motor: el resto del cliente es opaco aquí.
type Client struct {
	ID   string
	Name string
}

// Invoice entrada mínima del motor. Date nil = factura sin fecha válida.
type Invoice struct {
	ClientID string
	Amount   decimal.Decimal
	Date     *time.Time
}

// Row resultado por cliente. El motor devuelve las filas sin ordenar; el
// orden (score desc, monetary desc) es asunto de presentación.
type Row struct {
	ClientID        string
	ClientName      string
	RecencyDays     int
	Frequency       int
	Monetary        decimal.Decimal
	R               int
	F               int
	M               int
	Score           int // R+F+M, rango 3..15
	Segment         string
	LastInvoiceDate *time.Time
}

// Compute calcula una fila RFM por cada cliente de entrada, incluidos los
// clientes sin facturas (recency = RecencyNever, frequency = 0, monetary = 0).
func Compute(clients []Client, invoices []Invoice, now time.Time) []Row {
	if len(clients) == 0 {
		return []Row{}
	}

	byClient := make(map[string][]Invoice, len(clients))
	for _, inv := range invoices {
		if inv.ClientID == "" {
			continue
		}
		byClient[inv.ClientID] = append(byClient[inv.ClientID], inv)
	}

	rows := make([]Row, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, rawRow(c, byClient[c.ID], now))
	}

	// Arrays de valores crudos por métrica, ordenados ascendente, sobre la
	// población completa de clientes.
	recencies := make([]float64, len(rows))
	frequencies := make([]float64, len(rows))
	monetaries := make([]float64, len(rows))
	for i, r := range rows {
		recencies[i] = float64(r.RecencyDays)
		frequencies[i] = float64(r.Frequency)
		monetaries[i] = r.Monetary.InexactFloat64()
	}
	sort.Float64s(recencies)
	sort.Float64s(frequencies)
	sort.Float64s(monetaries)

	for i := range rows {
		r := &rows[i]
		// Recencia invertida: menos días desde la última factura = mejor score.
		r.R = invert(quintile(recencies, float64(r.RecencyDays)))
		r.F = quintile(frequencies, float64(r.Frequency))
		r.M = quintile(monetaries, r.Monetary.InexactFloat64())
		r.Score = r.R + r.F + r.M
		r.Segment = Classify(r.R, r.F, r.M)
	}
	return rows
}

// rawRow calcula las métricas crudas de un cliente a partir de sus facturas.
func rawRow(c Client, invs []Invoice, now time.Time) Row {
	row := Row{
		ClientID:    c.ID,
		ClientName:  c.Name,
		RecencyDays: RecencyNever,
		Monetary:    decimal.Zero,
	}
	var last *time.Time
	for _, inv := range invs {
		row.Frequency++
		row.Monetary = row.Monetary.Add(inv.Amount)
		if inv.Date == nil {
			continue
		}
		if last == nil || inv.Date.After(*last) {
			d := *inv.Date
			last = &d
		}
	}
	if last != nil {
		row.LastInvoiceDate = last
		days := int(math.Floor(now.Sub(*last).Hours() / 24))
		if days < 0 {
			days = 0
		}
		row.RecencyDays = days
	}
	return row
}

// quintile convierte un valor crudo en score 1..5 según su posición
// percentil dentro del array ordenado ascendente de la población:
// posición = índice del primer valor >= v (último índice si no existe),
// percentil = posición/(n-1) (0 si n == 1), score = ceil(percentil*5)
// acotado a [1,5].
func quintile(sorted []float64, v float64) int {
	n := len(sorted)
	if n == 0 {
		return 1
	}
	// sort.SearchFloat64s devuelve el índice del primer valor >= v.
	pos := sort.SearchFloat64s(sorted, v)
	if pos >= n {
		pos = n - 1
	}
	pct := 0.0
	if n > 1 {
		pct = float64(pos) / float64(n-1)
	}
	return clampScore(int(math.Ceil(pct * 5)))
}

// invert voltea un score de recencia: menos días (mejor) debe dar 5.
func invert(score int) int {
	return clampScore(6 - score)
}

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 5 {
		return 5
	}
	return s
}

// Classify asigna el segmento a partir de los scores R, F, M.
// Las reglas se evalúan en orden fijo de prioridad: gana la primera que aplique.
func Classify(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentChampion
	case f >= 4 && m >= 4:
		return SegmentLoyal
	case r >= 4 && f >= 2:
		return SegmentPotential
	case r <= 2 && (f >= 3 || m >= 3):
		return SegmentAtRisk
	case r <= 2 && f <= 2 && m <= 2:
		return SegmentLost
	default:
		return SegmentOther
	}
}
