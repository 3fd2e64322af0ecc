package pdf

import (
	"fmt"
	"time"
)

type WithdrawalData struct {
	DeclarationNumber string
	CreatedAt         time.Time
	Client            PartyData
	Vehicle           VehicleData
	Reason            string
	Signatures        SignatureData
	Filename          string
}

func (g *DocumentGenerator) GenerateWithdrawal(data WithdrawalData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("desistencia_%s.pdf", data.DeclarationNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("Declaração de Desistência " + data.DeclarationNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "DECLARAÇÃO DE DESISTÊNCIA", data.DeclarationNumber, data.CreatedAt)

	g.partyBlock(pdf, "Declarante", data.Client)
	g.vehicleBlock(pdf, data.Vehicle)
	g.hr(pdf)

	g.sectionTitle(pdf, "Declaração")
	g.paragraph(pdf, fmt.Sprintf("Declaro, para os devidos fins, que desisto da negociação do veículo %s, "+
		"por livre e espontânea vontade, nada mais tendo a reclamar da vendedora.", data.Vehicle.describe()))
	if data.Reason != "" {
		g.kvLine(pdf, "Motivo", data.Reason)
	}
	g.hr(pdf)

	g.sectionTitle(pdf, "Assinaturas")
	g.signatureBlock(pdf, "Declarante", g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}
