package pdf

import (
	"math"
	"strings"
)

// Extenso renders a BRL amount in Portuguese prose for receipts, e.g.
// 1234.56 -> "mil, duzentos e trinta e quatro reais e cinquenta e seis centavos".
// Zero renders as "zero reais". Negative inputs are clamped to zero: a
// receipt never carries a negative amount, and clamping beats emitting
// nonsense prose.
func Extenso(value float64) string {
	if value < 0 {
		value = 0
	}
	// round once, in cents, to avoid 0.1+0.2 style drift
	totalCents := int64(math.Round(value * 100))
	reais := totalCents / 100
	cents := totalCents % 100

	if reais == 0 && cents == 0 {
		return "zero reais"
	}

	var parts []string
	if reais > 0 {
		p := numeroPorExtenso(reais)
		switch {
		case reais == 1:
			p += " real"
		case reais%1_000_000 == 0:
			// "um milhão de reais", "dois bilhões de reais"
			p += " de reais"
		default:
			p += " reais"
		}
		parts = append(parts, p)
	}
	if cents > 0 {
		p := numeroPorExtenso(cents)
		if cents == 1 {
			p += " centavo"
		} else {
			p += " centavos"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " e ")
}

var extensoUnidades = []string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
}

var extensoDezenas = []string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var extensoCentenas = []string{
	"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
	"seiscentos", "setecentos", "oitocentos", "novecentos",
}

type escala struct {
	valor    int64
	singular string
	plural   string
}

// ordered largest first; "mil" has no singular article ("mil", never "um mil")
var extensoEscalas = []escala{
	{1_000_000_000, "um bilhão", "bilhões"},
	{1_000_000, "um milhão", "milhões"},
	{1_000, "mil", "mil"},
}

// numeroPorExtenso spells a non-negative integer up to the billions.
func numeroPorExtenso(n int64) string {
	if n < 0 {
		n = 0
	}
	if n < 1000 {
		return trioPorExtenso(int(n))
	}

	var grupos []string
	resto := n
	for _, e := range extensoEscalas {
		if resto < e.valor {
			continue
		}
		q := resto / e.valor
		resto = resto % e.valor
		switch {
		case q == 1:
			grupos = append(grupos, e.singular)
		default:
			grupos = append(grupos, trioPorExtenso(int(q))+" "+e.plural)
		}
	}
	if resto > 0 {
		grupos = append(grupos, trioPorExtenso(int(resto)))
	}

	// groups join with commas; the final group takes "e" when it reads
	// as a closing fragment (below one hundred, or a round hundred)
	if len(grupos) == 1 {
		return grupos[0]
	}
	last := grupos[len(grupos)-1]
	head := strings.Join(grupos[:len(grupos)-1], ", ")
	if resto > 0 && (resto < 100 || resto%100 == 0) {
		return head + " e " + last
	}
	return head + ", " + last
}

// trioPorExtenso spells 0..999.
func trioPorExtenso(n int) string {
	if n < 20 {
		return extensoUnidades[n]
	}
	if n < 100 {
		d := extensoDezenas[n/10]
		if n%10 == 0 {
			return d
		}
		return d + " e " + extensoUnidades[n%10]
	}
	if n == 100 {
		return "cem"
	}
	c := extensoCentenas[n/100]
	if n%100 == 0 {
		return c
	}
	return c + " e " + trioPorExtenso(n%100)
}
