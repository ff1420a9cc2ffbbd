package idcard

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/onemapafrica/member-hub-api/internal/model"
)

// CR80 card dimensions in millimetres, landscape.
const (
	cardWidth  = 85.6
	cardHeight = 54.0
)

const (
	noticeEN = "THIS CARD IS THE PROPERTY OF ONE MAP AFRICA. IF FOUND, PLEASE RETURN IT TO THE NEAREST ONE MAP AFRICA OFFICE."
	noticeFR = "CETTE CARTE EST LA PROPRIÉTÉ DE ONE MAP AFRICA. SI VOUS LA TROUVEZ, VEUILLEZ LA RETOURNER AU BUREAU ONE MAP AFRICA LE PLUS PROCHE."
)

// RenderInput carries everything the renderer needs, already resolved and
// fetched. The renderer itself never touches the network or the database.
type RenderInput struct {
	Member    *model.Member
	Card      *model.Card
	Photo     *ImageBlob // nil when the member has no photo
	Signature *ImageBlob // nil when no signature is configured
	QRCode    []byte     // PNG bytes decoded from the card's stored data URI
}

// Renderer composes the two-page CR80 ID card PDF.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(in *RenderInput) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cardWidth, Ht: cardHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if err := registerImage(pdf, "qr", &ImageBlob{ContentType: "image/png", Data: in.QRCode}); err != nil {
		return nil, err
	}
	if in.Photo != nil {
		if err := registerImage(pdf, "photo", in.Photo); err != nil {
			return nil, err
		}
	}
	if in.Signature != nil {
		if err := registerImage(pdf, "signature", in.Signature); err != nil {
			return nil, err
		}
	}

	r.renderFront(pdf, tr, in)
	r.renderBack(pdf, tr, in)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderFront(pdf *gofpdf.Fpdf, tr func(string) string, in *RenderInput) {
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(15, 76, 58)
	pdf.Rect(0, 0, cardWidth, 13, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(3, 2.5)
	pdf.CellFormat(cardWidth-6, 5, "ONE MAP AFRICA", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(3, 7.5)
	pdf.CellFormat(cardWidth-6, 3.5, "MEMBER IDENTITY CARD", "", 0, "L", false, 0, "")

	// Photo, or a bordered placeholder when the member has none.
	pdf.SetDrawColor(180, 180, 180)
	if in.Photo != nil {
		pdf.ImageOptions("photo", 4, 16, 18, 23, false, gofpdf.ImageOptions{}, 0, "")
		pdf.Rect(4, 16, 18, 23, "D")
	} else {
		pdf.SetFillColor(235, 235, 235)
		pdf.Rect(4, 16, 18, 23, "FD")
		pdf.SetTextColor(140, 140, 140)
		pdf.SetFont("Helvetica", "", 5)
		pdf.SetXY(4, 26)
		pdf.CellFormat(18, 3, "NO PHOTO", "", 0, "C", false, 0, "")
	}

	// Identity block.
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(25, 16)
	pdf.CellFormat(58, 4.5, tr(in.Member.FullName()), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(25, 21)
	pdf.CellFormat(58, 3.2, tr(roleLine(in.Member)), "", 0, "L", false, 0, "")

	frontField(pdf, tr, 25, 26, "CARD NO", in.Card.CardID)
	frontField(pdf, tr, 25, 32, "MEMBER NO", in.Member.MembershipID)
	frontField(pdf, tr, 25, 38, "ISSUED", in.Card.IssueDate.Format("02 Jan 2006"))
	frontField(pdf, tr, 52, 38, "EXPIRES", in.Card.ExpiryDate.Format("02 Jan 2006"))

	// Verification QR.
	pdf.ImageOptions("qr", cardWidth-19, cardHeight-19.5, 16, 16, false, gofpdf.ImageOptions{}, 0, "")

	// Footer rule.
	pdf.SetDrawColor(15, 76, 58)
	pdf.SetLineWidth(0.6)
	pdf.Line(0, cardHeight-2, cardWidth, cardHeight-2)
	pdf.SetLineWidth(0.2)
}

func (r *Renderer) renderBack(pdf *gofpdf.Fpdf, tr func(string) string, in *RenderInput) {
	pdf.AddPage()

	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 5.5)
	pdf.SetXY(4, 4)
	pdf.MultiCell(cardWidth-8, 2.6, tr(noticeEN), "", "L", false)
	pdf.SetXY(4, pdf.GetY()+1.5)
	pdf.MultiCell(cardWidth-8, 2.6, tr(noticeFR), "", "L", false)

	// Signature over its caption line.
	if in.Signature != nil {
		pdf.ImageOptions("signature", 5, 24, 24, 9, false, gofpdf.ImageOptions{}, 0, "")
	}
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(5, 34, 32, 34)
	pdf.SetFont("Helvetica", "", 4.5)
	pdf.SetTextColor(110, 110, 110)
	pdf.SetXY(5, 34.5)
	pdf.CellFormat(27, 2.5, "AUTHORIZED SIGNATURE", "", 0, "C", false, 0, "")

	pdf.ImageOptions("qr", cardWidth-19, 22, 14, 14, false, gofpdf.ImageOptions{}, 0, "")

	// MRZ-style block.
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(0, cardHeight-11, cardWidth, 11, "F")
	pdf.SetFont("Courier", "", 7)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(3, cardHeight-10)
	pdf.CellFormat(cardWidth-6, 4, mrzLine("OMA<"+in.Card.CardID), "", 0, "L", false, 0, "")
	pdf.SetXY(3, cardHeight-6)
	pdf.CellFormat(cardWidth-6, 4, mrzLine(in.Member.LastName+"<<"+in.Member.FirstName), "", 0, "L", false, 0, "")
}

func frontField(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, label, value string) {
	pdf.SetFont("Helvetica", "", 4.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.SetXY(x, y)
	pdf.CellFormat(30, 2.5, label, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetXY(x, y+2.5)
	pdf.CellFormat(30, 3.2, tr(value), "", 0, "L", false, 0, "")
}

func roleLine(m *model.Member) string {
	role := strings.ToUpper(strings.ReplaceAll(m.Role, "_", " "))
	if m.Country == "" {
		return role
	}
	return strings.ToUpper(m.Country) + " · " + role
}

// mrzLine normalizes text into a machine-readable-zone style line: uppercase
// A-Z, digits and '<' only, padded to a fixed width.
func mrzLine(text string) string {
	const width = 30

	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '<':
			b.WriteRune(r)
		case r == ' ', r == '-':
			b.WriteByte('<')
		}
		if b.Len() >= width {
			break
		}
	}
	return b.String() + strings.Repeat("<", width-b.Len())
}

func registerImage(pdf *gofpdf.Fpdf, name string, blob *ImageBlob) error {
	imageType, err := imageTypeFor(blob.ContentType)
	if err != nil {
		return err
	}

	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(blob.Data))
	if pdf.Err() {
		return fmt.Errorf("register image %s: %w", name, pdf.Error())
	}
	return nil
}

func imageTypeFor(contentType string) (string, error) {
	switch contentType {
	case "image/png":
		return "PNG", nil
	case "image/jpeg", "image/jpg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}
}
