package documents

import (
	"bytes"
	"fmt"
	"time"

	"quotecalc/internal/domain/pricing"
	"quotecalc/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pageWidth  = 210.0
	margin     = 20.0
	lineHeight = 6.0
)

// QuotePDFRenderer renders a quote as a single-page A4 PDF: headline price
// with the confidence range, the itemized breakdown (zero lines omitted),
// job details and a QR code linking back to the hosted quote.
type QuotePDFRenderer struct{}

var _ interfaces.IQuoteDocumentRenderer = (*QuotePDFRenderer)(nil)

func NewQuotePDFRenderer() *QuotePDFRenderer {
	return &QuotePDFRenderer{}
}

func (r *QuotePDFRenderer) RenderQuote(result pricing.QuoteResult, input pricing.QuoteInput, companyName, quoteURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(margin, margin, margin)

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(pageWidth-2*margin, 10, "Service Quote", "", 1, "C", false, 0, "")

	if companyName != "" {
		pdf.SetFont("Arial", "", 12)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(pageWidth-2*margin, 8, companyName, "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth-2*margin, lineHeight, "Date: "+time.Now().Format("01/02/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(pageWidth-2*margin, 8, "Service: "+input.ServiceType, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(pageWidth-2*margin, 8, "Location: "+input.Location, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Headline price
	pdf.SetFont("Arial", "", 18)
	pdf.CellFormat(pageWidth-2*margin, 8, "Estimated Quote", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 24)
	pdf.CellFormat(pageWidth-2*margin, 10, pricing.FormatCurrency(result.CalculatedPrice), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	rangeLine := fmt.Sprintf("Range: %s - %s", pricing.FormatCurrency(result.PriceRange.Min), pricing.FormatCurrency(result.PriceRange.Max))
	pdf.CellFormat(pageWidth-2*margin, lineHeight, rangeLine, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Breakdown
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(pageWidth-2*margin, 8, "Price Breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	b := result.Breakdown
	breakdownLine(pdf, "Base Price:", pricing.FormatCurrency(b.BasePrice))
	if b.MarketAdjustment != 0 {
		breakdownLine(pdf, fmt.Sprintf("Market Demand (%s):", input.MarketDemand), signedCurrency(b.MarketAdjustment))
	}
	if b.ComplexityAdjustment != 0 {
		breakdownLine(pdf, fmt.Sprintf("Complexity (%s):", input.Complexity), signedCurrency(b.ComplexityAdjustment))
	}
	if b.EmergencyPremium > 0 {
		pdf.SetFont("Arial", "B", 10)
		breakdownLine(pdf, "Emergency Premium:", signedCurrency(b.EmergencyPremium))
		pdf.SetFont("Arial", "", 10)
	}
	if b.TravelCost > 0 {
		breakdownLine(pdf, "Travel Cost:", signedCurrency(b.TravelCost))
	}
	if b.SeasonalAdjustment != 0 {
		breakdownLine(pdf, fmt.Sprintf("Seasonal (%s):", input.SeasonalFactor), signedCurrency(b.SeasonalAdjustment))
	}
	if b.ExperienceAdjustment != 0 {
		breakdownLine(pdf, fmt.Sprintf("Experience (%s):", input.ExperienceLevel), signedCurrency(b.ExperienceAdjustment))
	}
	if b.EquipmentCost > 0 {
		breakdownLine(pdf, fmt.Sprintf("Equipment (%s):", input.EquipmentRequirements), signedCurrency(b.EquipmentCost))
	}
	if input.MaterialsCost > 0 {
		breakdownLine(pdf, "Materials:", signedCurrency(input.MaterialsCost))
	}
	if b.CompetitorAdjustment != 0 {
		breakdownLine(pdf, "Competitor Adjustment:", signedCurrency(b.CompetitorAdjustment))
	}

	// Total
	pdf.Ln(2)
	x := pdf.GetX()
	y := pdf.GetY()
	pdf.Line(x, y, pageWidth-margin, y)
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	breakdownLine(pdf, "Total:", pricing.FormatCurrency(b.FinalPrice))
	pdf.Ln(4)

	// Job details
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(pageWidth-2*margin, 8, "Job Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	detailLine(pdf, "Complexity: "+string(input.Complexity))
	detailLine(pdf, "Market Demand: "+string(input.MarketDemand))
	detailLine(pdf, "Seasonal Factor: "+string(input.SeasonalFactor))
	detailLine(pdf, "Experience Level: "+string(input.ExperienceLevel))
	detailLine(pdf, "Equipment Requirements: "+string(input.EquipmentRequirements))
	if input.IsEmergency {
		pdf.SetFont("Arial", "B", 10)
		detailLine(pdf, "Emergency Service: Yes")
		pdf.SetFont("Arial", "", 10)
	}
	if input.TimeOfDay != "" {
		detailLine(pdf, "Time of Day: "+input.TimeOfDay)
	}
	if input.CompetitorPricing > 0 {
		detailLine(pdf, "Competitor Pricing: "+pricing.FormatCurrency(input.CompetitorPricing))
	}

	pdf.Ln(3)
	detailLine(pdf, fmt.Sprintf("Quote valid for %d days", result.ValidityDays))

	// QR code back to the hosted quote
	if quoteURL != "" {
		png, err := qrcode.Encode(quoteURL, qrcode.Medium, 256)
		if err != nil {
			return nil, err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("quote-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("quote-qr", pageWidth-margin-30, 257, 30, 30, false, opts, 0, "")
	}

	// Footer
	pdf.SetY(-15)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(pageWidth-2*margin, 5, "This quote is an estimate and may vary based on final job requirements.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func breakdownLine(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.CellFormat((pageWidth-2*margin)/2, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat((pageWidth-2*margin)/2, lineHeight, amount, "", 1, "R", false, 0, "")
}

func detailLine(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(pageWidth-2*margin, lineHeight, text, "", 1, "L", false, 0, "")
}

func signedCurrency(v float64) string {
	if v > 0 {
		return "+" + pricing.FormatCurrency(v)
	}
	return "-" + pricing.FormatCurrency(-v)
}
