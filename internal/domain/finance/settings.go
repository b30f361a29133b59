// Package finance contiene las métricas derivadas del dashboard (KPIs,
// rentabilidad por cliente, aging de cartera, ingresos por mes) como
// funciones puras sobre snapshots en memoria.
//
// Toda política de negocio parametrizable (overhead, moneda, locale) viaja en
// un Settings explícito: no hay singletons de proceso ni contexto ambiente.
package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Settings parámetros de negocio compartidos por las métricas y el formateo.
type Settings struct {
	OverheadRate decimal.Decimal // fracción de ingresos consumida por overhead (0.25 = 25%)
	Currency     string          // código ISO-4217, ej. "USD"
	Locale       string          // etiqueta BCP-47, ej. "en-US"
}

// DefaultSettings valores por defecto: 25% de overhead, USD, inglés.
func DefaultSettings() Settings {
	return Settings{
		OverheadRate: decimal.NewFromFloat(0.25),
		Currency:     "USD",
		Locale:       "en-US",
	}
}

// ProfitFactor devuelve 1 - OverheadRate: la fracción de ingresos que queda
// como utilidad estimada.
func (s Settings) ProfitFactor() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(s.OverheadRate)
}

// FormatAmount formatea un monto con símbolo de moneda según locale y moneda
// configuradas. Ante códigos inválidos cae a en-US / USD.
func (s Settings) FormatAmount(amount decimal.Decimal) string {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	unit, err := currency.ParseISO(s.Currency)
	if err != nil {
		unit = currency.USD
	}
	v, _ := amount.Round(2).Float64()
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(v)))
}
