// README: Common money value object used across modules.
package types

import "fmt"

type Money struct {
	Amount   int64
	Currency string
}

// EUR builds a Money in euros. All prices and budgets in this
// application are whole-euro amounts.
func EUR(amount int64) Money {
	return Money{Amount: amount, Currency: "EUR"}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
