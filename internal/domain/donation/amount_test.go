package donation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "integer", raw: "25", want: "25"},
		{name: "surrounding whitespace", raw: "  25 \t", want: "25"},
		{name: "one decimal", raw: "25.5", want: "25.5"},
		{name: "two decimals", raw: "25.99", want: "25.99"},
		{name: "trailing dot", raw: "25.", want: "25"},
		{name: "leading dot", raw: ".50", want: "0.5"},
		{name: "leading zeros", raw: "007", want: "7"},
		{name: "one cent", raw: "0.01", want: "0.01"},
		{name: "large", raw: "1000000", want: "1000000"},
		{name: "empty", raw: "", wantErr: ErrAmountRequired},
		{name: "blank", raw: "   ", wantErr: ErrAmountRequired},
		{name: "text", raw: "ten", wantErr: ErrAmountFormat},
		{name: "negative", raw: "-5", wantErr: ErrAmountFormat},
		{name: "plus sign", raw: "+5", wantErr: ErrAmountFormat},
		{name: "exponent", raw: "1e3", wantErr: ErrAmountFormat},
		{name: "thousands separator", raw: "1,000", wantErr: ErrAmountFormat},
		{name: "currency symbol", raw: "$25", wantErr: ErrAmountFormat},
		{name: "lone dot", raw: ".", wantErr: ErrAmountFormat},
		{name: "two dots", raw: "1.2.3", wantErr: ErrAmountFormat},
		{name: "inner space", raw: "2 5", wantErr: ErrAmountFormat},
		{name: "three decimals rejected", raw: "25.999", wantErr: ErrAmountPrecision},
		{name: "trailing zero third decimal rejected", raw: "25.990", wantErr: ErrAmountPrecision},
		{name: "zero", raw: "0", wantErr: ErrAmountNotPositive},
		{name: "zero with cents", raw: "0.00", wantErr: ErrAmountNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateAmount(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateAmount(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAmount(%q) error = %v", tt.raw, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ValidateAmount(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()

	got := Presets()
	want := []int64{5, 10, 25, 50, 100}

	if len(got) != len(want) {
		t.Fatalf("len(Presets()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !got[i].Equal(decimal.NewFromInt(w)) {
			t.Errorf("Presets()[%d] = %s, want %d", i, got[i], w)
		}
	}

	// The returned slice is a copy.
	got[0] = decimal.NewFromInt(999)
	if !Presets()[0].Equal(decimal.NewFromInt(5)) {
		t.Error("mutating the result of Presets() changed the menu")
	}
}

func TestAmountSelection_ModesAreExclusive(t *testing.T) {
	t.Parallel()

	var sel AmountSelection

	if _, err := sel.Amount(); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("zero selection Amount() error = %v, want ErrAmountRequired", err)
	}

	sel.SetCustom("12.50")
	if sel.IsPreset() {
		t.Fatal("IsPreset() = true after SetCustom")
	}

	if err := sel.SelectPreset(decimal.NewFromInt(25)); err != nil {
		t.Fatalf("SelectPreset(25) error = %v", err)
	}
	if !sel.IsPreset() {
		t.Fatal("IsPreset() = false after SelectPreset")
	}
	if sel.Raw() != "25" {
		t.Errorf("Raw() = %q, want %q (custom text discarded)", sel.Raw(), "25")
	}
	got, err := sel.Amount()
	if err != nil || !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Amount() = %s, %v, want 25, nil", got, err)
	}

	sel.SetCustom("7")
	if sel.IsPreset() {
		t.Fatal("IsPreset() = true after switching back to custom")
	}
	got, err = sel.Amount()
	if err != nil || !got.Equal(decimal.NewFromInt(7)) {
		t.Errorf("Amount() = %s, %v, want 7, nil (preset discarded)", got, err)
	}
}

func TestAmountSelection_RejectsUnknownPreset(t *testing.T) {
	t.Parallel()

	var sel AmountSelection
	sel.SetCustom("3")

	if err := sel.SelectPreset(decimal.NewFromInt(20)); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("SelectPreset(20) error = %v, want ErrUnknownPreset", err)
	}
	if sel.IsPreset() || sel.Raw() != "3" {
		t.Errorf("selection changed after refused preset: preset=%v raw=%q", sel.IsPreset(), sel.Raw())
	}
}

func TestAmountSelection_InvalidCustom(t *testing.T) {
	t.Parallel()

	var sel AmountSelection
	sel.SetCustom("25.999")

	if _, err := sel.Amount(); !errors.Is(err, ErrAmountPrecision) {
		t.Errorf("Amount() error = %v, want ErrAmountPrecision", err)
	}
}
