package atm

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a single in-memory balance. The balance never goes below zero
// through Withdraw.
type Account struct {
	balance decimal.Decimal
}

func NewAccount(initial decimal.Decimal) *Account {
	return &Account{balance: initial}
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrNonPositiveAmount
	}
	if amount.GreaterThan(a.balance) {
		return a.balance, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}
