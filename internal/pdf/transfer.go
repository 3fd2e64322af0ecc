package pdf

import (
	"fmt"
	"time"
)

// TransferData feeds the ATPV (autorização de transferência de
// propriedade de veículo) layout.
type TransferData struct {
	AuthorizationNumber string
	CreatedAt           time.Time
	Client              PartyData
	Vehicle             VehicleData
	VehicleValue        float64
	Location            string
	Signatures          SignatureData
	Filename            string
}

func (g *DocumentGenerator) GenerateTransfer(data TransferData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("atpv_%s.pdf", data.AuthorizationNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("ATPV " + data.AuthorizationNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "AUTORIZAÇÃO PARA TRANSFERÊNCIA DE PROPRIEDADE DE VEÍCULO", data.AuthorizationNumber, data.CreatedAt)

	g.partyBlock(pdf, "Comprador", data.Client)
	g.vehicleBlock(pdf, data.Vehicle)
	g.hr(pdf)

	g.sectionTitle(pdf, "Transferência")
	g.kvLine(pdf, "Valor do veículo", FormatBRL(data.VehicleValue))
	g.kvLine(pdf, "Local", data.Location)
	g.kvLine(pdf, "Data", data.CreatedAt.Format("02/01/2006"))
	pdf.Ln(1)
	g.paragraph(pdf, "O proprietário acima autoriza a transferência da propriedade do veículo descrito "+
		"neste documento ao comprador identificado, pelo valor declarado, nos termos da legislação de trânsito vigente.")
	g.hr(pdf)

	g.sectionTitle(pdf, "Assinaturas")
	g.signatureBlock(pdf, "Comprador", g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}
