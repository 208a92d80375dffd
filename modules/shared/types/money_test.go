package types_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCents int64
		wantErr   error
	}{
		{"whole amount", "10", 1000, nil},
		{"two decimals", "12.99", 1299, nil},
		{"one decimal", "5.5", 550, nil},
		{"zero", "0", 0, nil},
		{"negative", "-1.00", 0, types.ErrNegativeAmount},
		{"sub-cent", "1.999", 0, types.ErrSubCentPrecision},
		{"not a number", "abc", 0, types.ErrInvalidAmount},
		{"empty", "", 0, types.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := types.ParseMoney(tt.input)
			if err != tt.wantErr {
				t.Fatalf("ParseMoney(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && m.Cents() != tt.wantCents {
				t.Errorf("ParseMoney(%q) = %d cents, want %d", tt.input, m.Cents(), tt.wantCents)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price := types.MustNewMoney(1000) // 10.00

	total := price.Multiply(2).Add(price.Multiply(3))
	if total.Cents() != 5000 {
		t.Errorf("expected 5000 cents, got %d", total.Cents())
	}
	if total.String() != "50.00" {
		t.Errorf("expected \"50.00\", got %q", total.String())
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := types.MustNewMoney(1299)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"12.99"` {
		t.Errorf("expected \"12.99\", got %s", data)
	}

	var back types.Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equals(m) {
		t.Errorf("round trip mismatch: %v != %v", back, m)
	}

	// Plain JSON numbers are accepted too.
	if err := json.Unmarshal([]byte(`10.50`), &back); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if back.Cents() != 1050 {
		t.Errorf("expected 1050 cents, got %d", back.Cents())
	}
}

func TestNewMoney_Negative(t *testing.T) {
	if _, err := types.NewMoney(-1); err != types.ErrNegativeAmount {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestMoney_CheckedArithmetic(t *testing.T) {
	m := types.MustNewMoney(1299)

	got, err := m.MultiplyChecked(2)
	if err != nil {
		t.Fatalf("MultiplyChecked() error = %v", err)
	}
	if got.Cents() != 2598 {
		t.Errorf("expected 2598 cents, got %d", got.Cents())
	}

	if _, err := m.MultiplyChecked(1 << 62); err != types.ErrAmountOverflow {
		t.Errorf("expected ErrAmountOverflow, got %v", err)
	}
	if _, err := m.MultiplyChecked(0); err != types.ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount for zero factor, got %v", err)
	}

	huge := types.MustNewMoney(math.MaxInt64)
	if _, err := huge.AddChecked(types.MustNewMoney(1)); err != types.ErrAmountOverflow {
		t.Errorf("expected ErrAmountOverflow, got %v", err)
	}
	sum, err := m.AddChecked(types.MustNewMoney(1))
	if err != nil || sum.Cents() != 1300 {
		t.Errorf("AddChecked() = %d, %v", sum.Cents(), err)
	}
}
