package notification

import (
	"bytes"
	"fmt"

	"go-quote-backend/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	contentWidth = pageWidth - marginLeft - marginRight

	// A4 is 297mm tall; keep the footer zone clear
	pageBreakAt = 272.0

	labelWidth = 45.0
)

// BuildSummaryPDF renders the attachment for the admin notification: a
// header band, the submission date, the fixed-order labeled sections, and a
// "Page X of Y" footer on every page. Sections and rows break to a new page
// when the remaining vertical space is insufficient.
func BuildSummaryPDF(payload domain.QuoteNotification) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 15, marginRight)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Header band
	pdf.SetFillColor(30, 58, 138)
	pdf.Rect(0, 0, pageWidth, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(marginLeft, 8)
	pdf.CellFormat(contentWidth, 10, "Salesupply", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, "Quote Request "+payload.RequestNumber, "", 1, "L", false, 0, "")

	pdf.SetY(40)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, 6, "Submitted on "+payload.SubmittedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Contact Information")
	writePair(pdf, "Name", payload.Name)
	if payload.Company != "" {
		writePair(pdf, "Company", payload.Company)
	}
	writePair(pdf, "Email", payload.Email)
	if payload.Phone != "" {
		writePair(pdf, "Phone", payload.Phone)
	}

	writeSection(pdf, "Project Details")
	writePair(pdf, "Budget", orNotSpecified(payload.BudgetRange))
	writePair(pdf, "Timeline", orNotSpecified(payload.Timeline))
	writePair(pdf, "Services selected", fmt.Sprintf("%d", len(payload.ServiceTitles)))

	writeSection(pdf, "Requested Services")
	for i, title := range payload.ServiceTitles {
		writePair(pdf, fmt.Sprintf("%d.", i+1), title)
	}

	// Only present when the client left a message
	if payload.Message != "" {
		writeSection(pdf, "Additional Information")
		ensureSpace(pdf, 10)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(marginLeft)
		pdf.MultiCell(contentWidth, 6, payload.Message, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSection draws a colored section header bar
func writeSection(pdf *gofpdf.Fpdf, title string) {
	ensureSpace(pdf, 24)
	pdf.Ln(2)
	pdf.SetFillColor(30, 58, 138)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 8, "  "+title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(51, 51, 51)
}

// writePair draws a bold label and a word-wrapped value on one row
func writePair(pdf *gofpdf.Fpdf, label, value string) {
	ensureSpace(pdf, 10)
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentWidth-labelWidth, 6, value, "", "L", false)
}

func ensureSpace(pdf *gofpdf.Fpdf, needed float64) {
	if pdf.GetY()+needed > pageBreakAt {
		pdf.AddPage()
	}
}
