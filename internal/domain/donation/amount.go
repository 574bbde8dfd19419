package donation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxFractionDigits is the number of cents digits a custom amount may carry.
// Inputs with more digits are rejected, not truncated.
const MaxFractionDigits = 2

// Amount validation failures. Callers surface them per field; they never
// reach the network.
var (
	ErrAmountRequired    = errors.New("amount is required")
	ErrAmountFormat      = errors.New("amount must be a plain decimal number")
	ErrAmountPrecision   = errors.New("amount must have at most two decimal places")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrUnknownPreset     = errors.New("amount is not one of the preset options")
)

// amountPattern accepts digits with an optional fractional part ("25",
// "25.", "25.5", ".5"). Signs, exponents, separators and spaces are rejected.
var amountPattern = regexp.MustCompile(`^(?:\d+\.?\d*|\.\d+)$`)

var presets = []int64{5, 10, 25, 50, 100}

// Presets returns the fixed menu of amounts offered alongside free-form
// entry, in ascending order.
func Presets() []decimal.Decimal {
	out := make([]decimal.Decimal, len(presets))
	for i, p := range presets {
		out[i] = decimal.NewFromInt(p)
	}
	return out
}

// IsPreset reports whether amount is one of the preset options.
func IsPreset(amount decimal.Decimal) bool {
	for _, p := range presets {
		if amount.Equal(decimal.NewFromInt(p)) {
			return true
		}
	}
	return false
}

// ValidateAmount parses a free-form amount. Surrounding whitespace is
// ignored. The result is strictly positive with at most MaxFractionDigits
// fractional digits.
func ValidateAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrAmountRequired
	}
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrAmountFormat
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > MaxFractionDigits {
		return decimal.Zero, ErrAmountPrecision
	}
	if whole == "" {
		whole = "0"
	}
	if frac != "" {
		whole += "." + frac
	}

	amount, err := decimal.NewFromString(whole)
	if err != nil {
		return decimal.Zero, ErrAmountFormat
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// AmountSelection tracks which of the two entry modes is active. Selecting
// a preset discards any custom text and typing custom text discards the
// preset. The zero value has nothing selected.
type AmountSelection struct {
	preset    decimal.Decimal
	custom    string
	hasPreset bool
}

// SelectPreset switches to preset mode. Values outside Presets are refused
// and leave the selection unchanged.
func (s *AmountSelection) SelectPreset(amount decimal.Decimal) error {
	if !IsPreset(amount) {
		return ErrUnknownPreset
	}
	s.preset = amount
	s.hasPreset = true
	s.custom = ""
	return nil
}

// SetCustom switches to custom mode with the given raw text.
func (s *AmountSelection) SetCustom(raw string) {
	s.custom = raw
	s.hasPreset = false
	s.preset = decimal.Zero
}

// IsPreset reports whether preset mode is active.
func (s *AmountSelection) IsPreset() bool {
	return s.hasPreset
}

// Raw returns the active selection as text: the preset value in preset mode,
// otherwise the custom text as typed.
func (s *AmountSelection) Raw() string {
	if s.hasPreset {
		return s.preset.String()
	}
	return s.custom
}

// Amount resolves the active selection to a validated amount.
func (s *AmountSelection) Amount() (decimal.Decimal, error) {
	if s.hasPreset {
		return s.preset, nil
	}
	return ValidateAmount(s.custom)
}
