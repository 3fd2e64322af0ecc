package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is what the services depend on (easy to mock in tests).
type Generator interface {
	GenerateContract(data ContractData) (string, error)
	GenerateWarranty(data WarrantyData) (string, error)
	GenerateTransfer(data TransferData) (string, error)
	GenerateWithdrawal(data WithdrawalData) (string, error)
	GenerateReservation(data ReservationData) (string, error)
	GenerateReceipt(data ReceiptData) (string, error)
}

// CompanyData is the branding block printed on every document.
type CompanyData struct {
	Name    string
	CNPJ    string
	Address string
	City    string
	Phone   string
	Email   string
}

// PartyData identifies the client on a document.
type PartyData struct {
	Name    string
	CPF     string
	RG      string
	Address string
	Phone   string
}

// VehicleData is the vehicle block shared by all generators.
type VehicleData struct {
	Brand   string
	Model   string
	Year    int
	Color   string
	Plate   string
	Chassis string
	Renavam string
}

func (v VehicleData) describe() string {
	return fmt.Sprintf("%s %s %d, cor %s", v.Brand, v.Model, v.Year, v.Color)
}

// SignatureData holds optional signature image paths. Empty paths just
// leave the plain signature line.
type SignatureData struct {
	ClientImagePath   string
	VendorImagePath   string
	LegalRepImagePath string
	LegalRepName      string
}

// DocumentGenerator renders A4 documents with gofpdf.
type DocumentGenerator struct {
	RootDir  string // file storage root
	FontPath string // TTF with full latin accents, e.g. assets/fonts/DejaVuSans.ttf
	Company  CompanyData
	fontName string
}

func NewDocumentGenerator(rootDir, fontPath string, company CompanyData) *DocumentGenerator {
	return &DocumentGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		Company:  company,
		fontName: "DejaVu",
	}
}

// newDoc sets up page, margins, fonts and the page-number footer.
func (g *DocumentGenerator) newDoc(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAuthor(g.Company.Name, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Pág. %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return pdf
}

func (g *DocumentGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // segurança: sem "../"
	return filepath.Join(g.RootDir, filename), nil
}

func (g *DocumentGenerator) output(pdf *gofpdf.Fpdf, absPath string) (string, error) {
	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Base(absPath)), nil
}

// ===== layout helpers =====

// companyHeader prints the branding block and a rule under it.
func (g *DocumentGenerator) companyHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 7, g.Company.Name, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 9)
	if g.Company.CNPJ != "" {
		pdf.CellFormat(0, 5, "CNPJ: "+g.Company.CNPJ, "", 1, "L", false, 0, "")
	}
	if g.Company.Address != "" {
		pdf.CellFormat(0, 5, g.Company.Address+" - "+g.Company.City, "", 1, "L", false, 0, "")
	}
	if g.Company.Phone != "" || g.Company.Email != "" {
		pdf.CellFormat(0, 5, g.Company.Phone+"  "+g.Company.Email, "", 1, "L", false, 0, "")
	}
	g.hr(pdf)
	pdf.Ln(2)
}

// titleBand prints the centered document title and its number/date line.
func (g *DocumentGenerator) titleBand(pdf *gofpdf.Fpdf, title, number string, date time.Time) {
	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Nº %s  de  %s", number, date.Format("02/01/2006")), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)
}

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(48, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *DocumentGenerator) paragraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, text, "", "J", false)
	pdf.Ln(1)
}

// partyBlock prints the client identification lines.
func (g *DocumentGenerator) partyBlock(pdf *gofpdf.Fpdf, title string, p PartyData) {
	g.sectionTitle(pdf, title)
	g.kvLine(pdf, "Nome", p.Name)
	if p.CPF != "" {
		g.kvLine(pdf, "CPF", p.CPF)
	}
	if p.RG != "" {
		g.kvLine(pdf, "RG", p.RG)
	}
	if p.Address != "" {
		g.kvLine(pdf, "Endereço", p.Address)
	}
	if p.Phone != "" {
		g.kvLine(pdf, "Telefone", p.Phone)
	}
	pdf.Ln(2)
}

func (g *DocumentGenerator) vehicleBlock(pdf *gofpdf.Fpdf, v VehicleData) {
	g.sectionTitle(pdf, "Veículo")
	g.kvLine(pdf, "Marca/Modelo", fmt.Sprintf("%s %s", v.Brand, v.Model))
	g.kvLine(pdf, "Ano", fmt.Sprintf("%d", v.Year))
	if v.Color != "" {
		g.kvLine(pdf, "Cor", v.Color)
	}
	if v.Plate != "" {
		g.kvLine(pdf, "Placa", v.Plate)
	}
	if v.Chassis != "" {
		g.kvLine(pdf, "Chassi", v.Chassis)
	}
	if v.Renavam != "" {
		g.kvLine(pdf, "Renavam", v.Renavam)
	}
	pdf.Ln(2)
}

// signatureBlock draws the two (or three) signature lines, embedding
// signature images above the lines when a readable file is given.
func (g *DocumentGenerator) signatureBlock(pdf *gofpdf.Fpdf, clientLabel, vendorLabel string, sig SignatureData) {
	pdf.Ln(8)
	lineY := pdf.GetY() + 14

	g.signatureAt(pdf, 20, 100, lineY, clientLabel, sig.ClientImagePath)
	g.signatureAt(pdf, 120, 190, lineY, vendorLabel, sig.VendorImagePath)

	if sig.LegalRepName != "" {
		repY := lineY + 24
		g.signatureAt(pdf, 65, 145, repY, "Representante legal: "+sig.LegalRepName, sig.LegalRepImagePath)
	}
}

func (g *DocumentGenerator) signatureAt(pdf *gofpdf.Fpdf, x0, x1, lineY float64, label, imagePath string) {
	if imagePath != "" {
		if _, err := os.Stat(imagePath); err == nil {
			w := (x1 - x0) * 0.6
			pdf.ImageOptions(imagePath, x0+((x1-x0)-w)/2, lineY-13, w, 12, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}
	pdf.SetLineWidth(0.3)
	pdf.Line(x0, lineY, x1, lineY)
	pdf.SetY(lineY + 2)
	pdf.SetX(x0)
	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(x1-x0, 5, label, "", 0, "C", false, 0, "")
}
