package pdf

import (
	"fmt"
	"time"
)

type ReservationData struct {
	ReservationNumber string
	CreatedAt         time.Time
	Client            PartyData
	Vehicle           VehicleData
	DepositAmount     float64
	ReservationDate   time.Time
	ValidUntil        time.Time
	Signatures        SignatureData
	Filename          string
}

func (g *DocumentGenerator) GenerateReservation(data ReservationData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("reserva_%s.pdf", data.ReservationNumber)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := g.newDoc("Termo de Reserva " + data.ReservationNumber)

	g.companyHeader(pdf)
	g.titleBand(pdf, "TERMO DE RESERVA DE VEÍCULO", data.ReservationNumber, data.CreatedAt)

	g.partyBlock(pdf, "Cliente", data.Client)
	g.vehicleBlock(pdf, data.Vehicle)
	g.hr(pdf)

	g.sectionTitle(pdf, "Condições da reserva")
	g.kvLine(pdf, "Sinal", FormatBRL(data.DepositAmount))
	g.kvLine(pdf, "Data da reserva", data.ReservationDate.Format("02/01/2006"))
	g.kvLine(pdf, "Válida até", data.ValidUntil.Format("02/01/2006"))
	pdf.Ln(1)
	g.paragraph(pdf, "O veículo acima permanecerá reservado ao cliente até a data de validade indicada. "+
		"Não concretizada a compra dentro do prazo, a reserva poderá ser cancelada e o veículo liberado para venda, "+
		"com devolução do sinal conforme política da loja.")
	g.hr(pdf)

	g.sectionTitle(pdf, "Assinaturas")
	g.signatureBlock(pdf, "Cliente", g.Company.Name, data.Signatures)

	return g.output(pdf, absPath)
}
