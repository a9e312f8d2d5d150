package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed number of fractional digits for all monetary values.
// Every arithmetic result is rounded back to this scale with banker's rounding.
const MoneyScale = 2

// Zero is the additive identity for Money. It is used as the fold seed when
// summing order item subtotals. The zero value of Money equals Zero and is a
// valid amount.
var Zero = Money{amount: decimal.Zero}

// Money is an immutable non-negative decimal amount with a fixed scale.
// Equality is by numeric value, not by representation, so 25 and 25.00 compare
// equal. The aggregate never subtracts, so two non-negative inputs can never
// produce a negative result.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error for negative amounts; the amount is rounded to MoneyScale.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.RoundBank(MoneyScale)}, nil
}

// NewMoneyFromString parses a Money from a decimal string such as "19.99".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts at the fixed scale.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).RoundBank(MoneyScale)}
}

// Multiply returns the amount multiplied by an integer quantity at the fixed scale.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).RoundBank(MoneyScale)}
}

// IsGreaterThanZero reports whether the amount is strictly positive.
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts by numeric value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
