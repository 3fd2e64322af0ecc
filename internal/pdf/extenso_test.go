package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtenso(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "zero reais"},
		{-10, "zero reais"},
		{0.01, "um centavo"},
		{0.5, "cinquenta centavos"},
		{1, "um real"},
		{2, "dois reais"},
		{17, "dezessete reais"},
		{20, "vinte reais"},
		{21, "vinte e um reais"},
		{100, "cem reais"},
		{101, "cento e um reais"},
		{200, "duzentos reais"},
		{345, "trezentos e quarenta e cinco reais"},
		{1000, "mil reais"},
		{1100, "mil e cem reais"},
		{1234.56, "mil, duzentos e trinta e quatro reais e cinquenta e seis centavos"},
		{2000, "dois mil reais"},
		{45012, "quarenta e cinco mil e doze reais"},
		{1000000, "um milhão de reais"},
		{2000000, "dois milhões de reais"},
		{1000000000, "um bilhão de reais"},
		{1500000, "um milhão, quinhentos mil reais"},
		{3.07, "três reais e sete centavos"},
		{1.01, "um real e um centavo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extenso(tt.in), "value %v", tt.in)
	}
}

func TestExtensoRoundsCents(t *testing.T) {
	// 0.1+0.2 style float drift must not leak into the prose
	assert.Equal(t, "trinta centavos", Extenso(0.1+0.2))
	assert.Equal(t, "dez reais", Extenso(9.999))
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{1000000, "R$ 1.000.000,00"},
		{-42.1, "R$ -42,10"},
		{999.99, "R$ 999,99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.in))
	}
}
