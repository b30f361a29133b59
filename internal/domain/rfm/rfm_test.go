package rfm

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

// invoiceDaysAgo crea una factura fechada n días antes de testNow.
func invoiceDaysAgo(clientID string, amount float64, daysAgo int) Invoice {
	d := testNow.AddDate(0, 0, -daysAgo)
	return Invoice{ClientID: clientID, Amount: decimal.NewFromFloat(amount), Date: &d}
}

func rowFor(t *testing.T, rows []Row, clientID string) Row {
	t.Helper()
	for _, r := range rows {
		if r.ClientID == clientID {
			return r
		}
	}
	t.Fatalf("no hay fila para el cliente %s", clientID)
	return Row{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario concreto: 3 clientes (A con actividad alta, B antigua, C sin facturas)
// ──────────────────────────────────────────────────────────────────────────────

func threeClientFixture() ([]Client, []Invoice) {
	clients := []Client{
		{ID: "a", Name: "TechCorp Solutions"},
		{ID: "b", Name: "StartupXYZ"},
		{ID: "c", Name: "Sin Actividad SAS"},
	}
	invoices := []Invoice{
		invoiceDaysAgo("a", 1000, 2),
		invoiceDaysAgo("a", 1000, 30),
		invoiceDaysAgo("a", 1000, 90),
		invoiceDaysAgo("a", 1000, 180),
		invoiceDaysAgo("a", 1000, 300),
		invoiceDaysAgo("b", 100, 400),
	}
	return clients, invoices
}

func TestCompute_EscenarioTresClientes(t *testing.T) {
	clients, invoices := threeClientFixture()
	rows := Compute(clients, invoices, testNow)
	require.Len(t, rows, 3, "debe producirse exactamente una fila por cliente")

	a := rowFor(t, rows, "a")
	b := rowFor(t, rows, "b")
	c := rowFor(t, rows, "c")

	// Métricas crudas
	assert.Equal(t, 2, a.RecencyDays)
	assert.Equal(t, 5, a.Frequency)
	assert.True(t, a.Monetary.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, a.LastInvoiceDate)

	assert.Equal(t, 400, b.RecencyDays)
	assert.Equal(t, 1, b.Frequency)
	assert.True(t, b.Monetary.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, RecencyNever, c.RecencyDays)
	assert.Equal(t, 0, c.Frequency)
	assert.True(t, c.Monetary.IsZero())
	assert.Nil(t, c.LastInvoiceDate)

	// Scores aplicando la fórmula literal con n=3:
	// recency ordenado [2, 400, 9999]: A pos 0 → pct 0 → 1 → invertido 5;
	// B pos 1 → pct 0.5 → ceil(2.5)=3 → invertido 3; C pos 2 → 5 → invertido 1.
	assert.Equal(t, 5, a.R)
	assert.Equal(t, 3, b.R)
	assert.Equal(t, 1, c.R)

	// frequency [0, 1, 5]: A 5, B 3, C 1. monetary [0, 100, 5000]: A 5, B 3, C 1.
	assert.Equal(t, 5, a.F)
	assert.Equal(t, 5, a.M)
	assert.Equal(t, 3, b.F)
	assert.Equal(t, 3, b.M)
	assert.Equal(t, 1, c.F)
	assert.Equal(t, 1, c.M)

	assert.Equal(t, 15, a.Score)
	assert.Equal(t, SegmentChampion, a.Segment)
	assert.Equal(t, 9, b.Score)
	assert.Equal(t, SegmentOther, b.Segment)
	assert.Equal(t, 3, c.Score)
	assert.Equal(t, SegmentLost, c.Segment)
}

func TestCompute_ClienteSinFacturas_ScoresMinimos(t *testing.T) {
	clients, invoices := threeClientFixture()
	rows := Compute(clients, invoices, testNow)
	c := rowFor(t, rows, "c")

	// El sentinel de recencia debe mapear al peor score tras la inversión.
	assert.Equal(t, 1, c.R)
	assert.Equal(t, 1, c.F)
	assert.Equal(t, 1, c.M)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes generales
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_ScoresSiempreEnRango(t *testing.T) {
	clients := []Client{
		{ID: "c1", Name: "Uno"}, {ID: "c2", Name: "Dos"}, {ID: "c3", Name: "Tres"},
		{ID: "c4", Name: "Cuatro"}, {ID: "c5", Name: "Cinco"}, {ID: "c6", Name: "Seis"},
	}
	invoices := []Invoice{
		invoiceDaysAgo("c1", 15000, 1),
		invoiceDaysAgo("c1", 200, 5),
		invoiceDaysAgo("c2", 900, 45),
		invoiceDaysAgo("c3", 50, 700),
		invoiceDaysAgo("c4", 9999.99, 12),
		invoiceDaysAgo("c4", 1, 600),
		invoiceDaysAgo("c5", 300, 89),
	}
	rows := Compute(clients, invoices, testNow)
	require.Len(t, rows, len(clients))
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.R, 1)
		assert.LessOrEqual(t, r.R, 5)
		assert.GreaterOrEqual(t, r.F, 1)
		assert.LessOrEqual(t, r.F, 5)
		assert.GreaterOrEqual(t, r.M, 1)
		assert.LessOrEqual(t, r.M, 5)
		assert.GreaterOrEqual(t, r.Score, 3)
		assert.LessOrEqual(t, r.Score, 15)
		assert.NotEmpty(t, r.Segment)
	}
}

func TestCompute_Determinista(t *testing.T) {
	clients, invoices := threeClientFixture()
	first := Compute(clients, invoices, testNow)
	second := Compute(clients, invoices, testNow)
	assert.Equal(t, first, second, "misma entrada y mismo now deben dar salida idéntica")
}

func TestCompute_ReaplicarScoringSobreMetricasCrudas_EsIdempotente(t *testing.T) {
	clients := []Client{
		{ID: "c1", Name: "Uno"}, {ID: "c2", Name: "Dos"}, {ID: "c3", Name: "Tres"},
		{ID: "c4", Name: "Cuatro"}, {ID: "c5", Name: "Cinco"}, {ID: "c6", Name: "Seis"},
		{ID: "c7", Name: "Siete"},
	}
	invoices := []Invoice{
		invoiceDaysAgo("c1", 15000, 1),
		invoiceDaysAgo("c1", 200, 5),
		invoiceDaysAgo("c2", 900, 45),
		invoiceDaysAgo("c2", 900, 45), // empate de recencia con c2
		invoiceDaysAgo("c3", 50, 700),
		invoiceDaysAgo("c4", 9999.99, 12),
		invoiceDaysAgo("c4", 1, 600),
		invoiceDaysAgo("c5", 300, 89),
		invoiceDaysAgo("c6", 300, 89), // empates de frequency y monetary con c5
	}
	rows := Compute(clients, invoices, testNow)
	require.Len(t, rows, len(clients))

	// Reaplicar quintile sobre las métricas crudas que el propio motor
	// expone debe reproducir exactamente los mismos scores.
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

	for _, r := range rows {
		assert.Equal(t, r.R, invert(quintile(recencies, float64(r.RecencyDays))), "R de %s", r.ClientID)
		assert.Equal(t, r.F, quintile(frequencies, float64(r.Frequency)), "F de %s", r.ClientID)
		assert.Equal(t, r.M, quintile(monetaries, r.Monetary.InexactFloat64()), "M de %s", r.ClientID)
		assert.Equal(t, r.R+r.F+r.M, r.Score)
	}
}

func TestCompute_UnSoloCliente_SinDivisionPorCero(t *testing.T) {
	clients := []Client{{ID: "solo", Name: "Único"}}
	invoices := []Invoice{invoiceDaysAgo("solo", 500, 5)}

	rows := Compute(clients, invoices, testNow)
	require.Len(t, rows, 1)

	// Con n=1 el percentil se trata como 0: F y M quedan en 1, R invertido en 5.
	r := rows[0]
	assert.Equal(t, 5, r.R)
	assert.Equal(t, 1, r.F)
	assert.Equal(t, 1, r.M)
	assert.Equal(t, 7, r.Score)
}

func TestCompute_ListaVacia(t *testing.T) {
	rows := Compute(nil, nil, testNow)
	assert.Empty(t, rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tolerancia a facturas malformadas
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_FacturaSinFecha_CuentaParaFrequencyYMonetary(t *testing.T) {
	clients := []Client{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	invoices := []Invoice{
		invoiceDaysAgo("x", 100, 10),
		{ClientID: "x", Amount: decimal.NewFromInt(50)}, // sin fecha
		invoiceDaysAgo("y", 10, 5),
	}

	rows := Compute(clients, invoices, testNow)
	x := rowFor(t, rows, "x")

	assert.Equal(t, 2, x.Frequency, "la factura sin fecha debe contar para frequency")
	assert.True(t, x.Monetary.Equal(decimal.NewFromInt(150)), "y para monetary")
	assert.Equal(t, 10, x.RecencyDays, "pero no debe mover la última actividad")
}

func TestCompute_FacturaSinClientID_SeExcluye(t *testing.T) {
	clients := []Client{{ID: "x", Name: "X"}}
	invoices := []Invoice{
		{ClientID: "", Amount: decimal.NewFromInt(1000), Date: &testNow},
	}

	rows := Compute(clients, invoices, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Frequency)
	assert.True(t, rows[0].Monetary.IsZero())
	assert.Equal(t, RecencyNever, rows[0].RecencyDays)
}

func TestCompute_FacturaFutura_RecencyNoNegativa(t *testing.T) {
	clients := []Client{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	future := testNow.AddDate(0, 0, 3)
	invoices := []Invoice{
		{ClientID: "x", Amount: decimal.NewFromInt(100), Date: &future},
		invoiceDaysAgo("y", 100, 30),
	}

	rows := Compute(clients, invoices, testNow)
	assert.Equal(t, 0, rowFor(t, rows, "x").RecencyDays)
}

// ──────────────────────────────────────────────────────────────────────────────
// Prioridad de segmentos: gana la primera regla que aplique
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_OrdenDePrioridad(t *testing.T) {
	cases := []struct {
		name    string
		r, f, m int
		want    string
	}{
		{"champion gana sobre loyal y potential", 4, 4, 4, SegmentChampion},
		{"loyal gana sobre at risk con R bajo", 2, 4, 4, SegmentLoyal},
		{"potential con F minima", 5, 2, 1, SegmentPotential},
		{"at risk por frequency", 1, 3, 1, SegmentAtRisk},
		{"at risk por monetary", 2, 2, 3, SegmentAtRisk},
		{"lost con todo bajo", 2, 2, 2, SegmentLost},
		{"other en zona media", 3, 3, 3, SegmentOther},
		{"other con R alto y F baja", 5, 1, 5, SegmentOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.r, tc.f, tc.m))
		})
	}
}
