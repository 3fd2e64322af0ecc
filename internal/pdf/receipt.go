package pdf

import (
	"fmt"
	"time"
)

type ReceiptData struct {
	ReceiptNumber string
	CreatedAt     time.Time
	Payer         PartyData
	Amount        float64
	PaymentMethod string
	Reference     string
	Signatures    SignatureData
	Filename      string
}

func (g *DocumentGenerator) GenerateReceipt(data ReceiptData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("recibo_%s.pdf", data.ReceiptNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("Recibo " + data.ReceiptNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "RECIBO", data.ReceiptNumber, data.CreatedAt)

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, FormatBRL(data.Amount), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// corpo do recibo com o valor por extenso
	g.paragraph(pdf, fmt.Sprintf("Recebemos de %s, CPF %s, a importância de %s (%s), "+
		"referente a %s, pagamento efetuado via %s.",
		data.Payer.Name, data.Payer.CPF, FormatBRL(data.Amount), Extenso(data.Amount),
		data.Reference, data.PaymentMethod))
	g.paragraph(pdf, "Para maior clareza, firmamos o presente recibo, dando plena, geral e irrevogável quitação "+
		"do valor recebido.")
	pdf.Ln(2)
	g.kvLine(pdf, "Local e data", fmt.Sprintf("%s, %s", g.Company.City, data.CreatedAt.Format("02/01/2006")))
	g.hr(pdf)

	g.signatureBlock(pdf, data.Payer.Name, g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}
