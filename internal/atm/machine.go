package atm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Machine drives an Account from a line-oriented console.
type Machine struct {
	account *Account
	in      *bufio.Reader
	out     io.Writer
	log     zerolog.Logger
}

func NewMachine(account *Account, in io.Reader, out io.Writer, log zerolog.Logger) *Machine {
	return &Machine{
		account: account,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
	}
}

func (m *Machine) printMenu() {
	fmt.Fprintln(m.out, "\t\tATM MENU")
	fmt.Fprintln(m.out, strings.Repeat("=", 40))
	fmt.Fprintln(m.out, "1. Make a deposit")
	fmt.Fprintln(m.out, "2. Withdraw money")
	fmt.Fprintln(m.out, "3. Show available balance")
	fmt.Fprintln(m.out, "4. Exit")
	fmt.Fprintln(m.out, strings.Repeat("=", 40))
}

// Run loops until option 4 or end of input. Only a read failure on the
// input stream is returned.
func (m *Machine) Run() error {
	for {
		m.printMenu()
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = m.deposit()
		case "2":
			err = m.withdraw()
		case "3":
			fmt.Fprintf(m.out, "Your available balance is: %s\n", money(m.account.Balance()))
		case "4":
			fmt.Fprintln(m.out, "Thank you for banking with us")
			fmt.Fprintln(m.out, "👋 Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Please choose a valid menu option (1-4)")
		}
		if err != nil && !errors.Is(err, errInvalidAmount) {
			return endOfInput(err)
		}
		fmt.Fprintln(m.out)
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Machine) deposit() error {
	amount, err := m.promptAmount("Amount to deposit: $")
	if err != nil {
		return err
	}
	balance, err := m.account.Deposit(amount)
	if err != nil {
		fmt.Fprintln(m.out, "The deposit amount must be greater than 0")
		return nil
	}
	m.log.Debug().Str("amount", amount.String()).Str("balance", balance.String()).Msg("deposit")
	fmt.Fprintf(m.out, "Your new balance is: %s\n", money(balance))
	return nil
}

func (m *Machine) withdraw() error {
	amount, err := m.promptAmount("How much do you want to withdraw: $")
	if err != nil {
		return err
	}
	balance, err := m.account.Withdraw(amount)
	switch {
	case errors.Is(err, ErrNonPositiveAmount):
		fmt.Fprintln(m.out, "The withdrawal amount must be greater than 0")
	case errors.Is(err, ErrInsufficientFunds):
		fmt.Fprintln(m.out, "You do not have enough funds in your account")
		fmt.Fprintf(m.out, "Current balance: %s\n", money(balance))
	default:
		m.log.Debug().Str("amount", amount.String()).Str("balance", balance.String()).Msg("withdrawal")
		fmt.Fprintf(m.out, "You withdrew: %s\n", money(amount))
		fmt.Fprintf(m.out, "Your new balance is: %s\n", money(balance))
	}
	return nil
}

// prompt returns the next trimmed line of any length, or io.EOF.
func (m *Machine) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var errInvalidAmount = errors.New("invalid amount")

// promptAmount reports unparseable input and returns errInvalidAmount.
func (m *Machine) promptAmount(label string) (decimal.Decimal, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(m.out, "❌ %q is not a valid amount\n", raw)
		return decimal.Zero, errInvalidAmount
	}
	return amount, nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
