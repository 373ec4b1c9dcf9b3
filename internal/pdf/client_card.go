package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so handlers can be tested with a fake.
type Generator interface {
	GenerateClientCard(data CardData) (string, error)
}

// CardGenerator renders printable client record cards.
type CardGenerator struct {
	RootDir  string // storage root, e.g. "./files"
	FontPath string // optional TTF path for full accent coverage
	fontName string
}

type CardData struct {
	ClientID       int
	Name           string
	Identification string
	PhoneNumber    string
	Street         string
	Detail         string
	ZipCode        string
	Notifiable     bool
	Status         bool
	GeneratedAt    time.Time
}

func NewCardGenerator(rootDir, fontPath string) *CardGenerator {
	return &CardGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "Helvetica",
	}
}

// GenerateClientCard writes the PDF under RootDir and returns its path.
func (g *CardGenerator) GenerateClientCard(data CardData) (string, error) {
	absPath, err := g.ensureTarget(fmt.Sprintf("client_card_%d.pdf", data.ClientID))
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Client record #%d", data.ClientID), false)
	pdf.SetAuthor("Golden Leaf", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.setupFont(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "CLIENT RECORD", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("No. GL-%06d   issued %s", data.ClientID, data.GeneratedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	g.sectionTitle(pdf, "Client")
	g.kvLine(pdf, "Name", data.Name)
	g.kvLine(pdf, "Identification", data.Identification)
	g.kvLine(pdf, "Phone number", data.PhoneNumber)
	g.kvLine(pdf, "Notifications", yesNo(data.Notifiable))
	g.kvLine(pdf, "Active", yesNo(data.Status))
	g.hr(pdf)

	g.sectionTitle(pdf, "Address")
	g.kvLine(pdf, "Street", data.Street)
	if data.Detail != "" {
		g.kvLine(pdf, "Detail", data.Detail)
	}
	g.kvLine(pdf, "Zip code", data.ZipCode)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *CardGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // safety
	return filepath.Join(g.RootDir, filename), nil
}

func (g *CardGenerator) setupFont(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		// core font; covers Latin-1 accented names
		g.fontName = "Helvetica"
		return
	}
	g.fontName = "Card"
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *CardGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *CardGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *CardGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
