package premiumbonds

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of the default prize table.
const DefaultCurrency = "GBP"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted in its currency, e.g. "£1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }

// RateOf returns m as a percentage of base. A zero base gives a zero rate.
func (m Money) RateOf(base Money) Percent {
	if base.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(base.value).Shift(2).InexactFloat64())
}
