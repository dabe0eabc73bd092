package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.35", m.String())

	m2, err := NewMoneyFromString("123.45")
	require.NoError(t, err)
	assert.Equal(t, "123.45", m2.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestNonFiniteBecomesZero(t *testing.T) {
	assert.True(t, NewMoney(math.NaN()).IsZero())
	assert.True(t, NewMoney(math.Inf(1)).IsZero())
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.out, m.Round().String(), "round(%s)", c.in)
	}
}

func TestAfterTax(t *testing.T) {
	assert.Equal(t, "82000.00", NewMoney(100000).AfterTax(0.18).String())
	assert.Equal(t, "100000.00", NewMoney(100000).AfterTax(0).String())
}

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		0:          "$0",
		999:        "$999",
		1000:       "$1,000",
		1234567.4:  "$1,234,567",
		-45000:     "-$45,000",
		100000.6:   "$100,001",
		-0.2:       "$0",
		3300000000: "$3,300,000,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, NewMoney(in).Format(), "Format(%v)", in)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{
		3300000:    "$3.3M",
		1250:       "$1.3K",
		2500000000: "$2.5B",
		750:        "$750",
		-2000000:   "-$2,000,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, NewMoney(in).FormatCompact(), "FormatCompact(%v)", in)
	}
}
