package interfaces

import "quotecalc/internal/domain/pricing"

// IQuoteDocumentRenderer renders a computed quote to a downloadable
// document (PDF). QuoteURL, when non-empty, is embedded as a QR code.

type IQuoteDocumentRenderer interface {
	RenderQuote(result pricing.QuoteResult, input pricing.QuoteInput, companyName, quoteURL string) ([]byte, error)
}
