package pdf

import (
	"fmt"
	"time"
)

// ContractData carries everything the contract layout needs. All joins
// (client, vehicle, proposal) happen before this call: generators make
// no repository or network access.
type ContractData struct {
	ContractNumber string
	CreatedAt      time.Time
	Client         PartyData
	Vehicle        VehicleData
	TotalValue     float64

	// avista | parcelado
	PaymentType string
	// parcelado only
	DownPayment      float64
	Installments     int
	InstallmentValue float64
	DueDay           int
	FirstDueDate     time.Time

	Signatures SignatureData
	Filename   string // basename; generated when empty
}

func (g *DocumentGenerator) GenerateContract(data ContractData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("contrato_%s.pdf", data.ContractNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("Contrato de Compra e Venda " + data.ContractNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "CONTRATO DE COMPRA E VENDA DE VEÍCULO", data.ContractNumber, data.CreatedAt)

	g.partyBlock(pdf, "Comprador", data.Client)
	g.vehicleBlock(pdf, data.Vehicle)
	g.hr(pdf)

	g.sectionTitle(pdf, "Condições de pagamento")
	g.kvLine(pdf, "Valor total", FormatBRL(data.TotalValue))
	if data.PaymentType == "parcelado" {
		g.kvLine(pdf, "Entrada", FormatBRL(data.DownPayment))
		g.kvLine(pdf, "Parcelas", fmt.Sprintf("%d x %s", data.Installments, FormatBRL(data.InstallmentValue)))
		g.kvLine(pdf, "Dia de vencimento", fmt.Sprintf("%d", data.DueDay))
		g.kvLine(pdf, "Primeiro vencimento", data.FirstDueDate.Format("02/01/2006"))
	} else {
		g.kvLine(pdf, "Forma", "À vista")
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Cláusulas")
	clausulas := []string{
		"1. O VENDEDOR transfere ao COMPRADOR, em caráter definitivo, a propriedade do veículo descrito acima, livre de ônus salvo os aqui declarados.",
		"2. O COMPRADOR declara ter vistoriado o veículo e aceitá-lo no estado em que se encontra.",
		"3. O pagamento observará as condições acima; o atraso de parcela sujeita o COMPRADOR aos encargos legais.",
		"4. A transferência de propriedade junto ao órgão de trânsito corre por conta do COMPRADOR no prazo legal.",
		"5. Fica eleito o foro da comarca de " + g.Company.City + " para dirimir quaisquer controvérsias.",
	}
	for _, c := range clausulas {
		g.paragraph(pdf, c)
	}
	g.hr(pdf)

	g.sectionTitle(pdf, "Assinaturas")
	g.signatureBlock(pdf, "Comprador", g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}

// FormatBRL renders "R$ 1.234,56".
func FormatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "R$ -" + string(out) + "," + decPart
	}
	return "R$ " + string(out) + "," + decPart
}
