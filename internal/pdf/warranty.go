package pdf

import (
	"fmt"
	"time"
)

type WarrantyData struct {
	WarrantyNumber string
	CreatedAt      time.Time
	Client         PartyData
	Vehicle        VehicleData
	CoverageMonths int
	CoverageKM     int
	CoverageTerms  string
	StartDate      time.Time
	Signatures     SignatureData
	Filename       string
}

func (g *DocumentGenerator) GenerateWarranty(data WarrantyData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("garantia_%s.pdf", data.WarrantyNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("Termo de Garantia " + data.WarrantyNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "TERMO DE GARANTIA", data.WarrantyNumber, data.CreatedAt)

	g.partyBlock(pdf, "Beneficiário", data.Client)
	g.vehicleBlock(pdf, data.Vehicle)
	g.hr(pdf)

	g.sectionTitle(pdf, "Cobertura")
	g.kvLine(pdf, "Prazo", fmt.Sprintf("%d meses", data.CoverageMonths))
	if data.CoverageKM > 0 {
		g.kvLine(pdf, "Quilometragem", fmt.Sprintf("%d km, o que ocorrer primeiro", data.CoverageKM))
	}
	g.kvLine(pdf, "Início da vigência", data.StartDate.Format("02/01/2006"))
	pdf.Ln(1)
	if data.CoverageTerms != "" {
		g.paragraph(pdf, data.CoverageTerms)
	}
	g.paragraph(pdf, "A garantia cobre exclusivamente motor e câmbio, excluídos itens de desgaste natural, "+
		"e perde validade em caso de mau uso, sinistro ou manutenção fora das revisões recomendadas.")
	g.hr(pdf)

	g.sectionTitle(pdf, "Assinaturas")
	g.signatureBlock(pdf, "Beneficiário", g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}
