package request

// CheckoutRequest is the payload accepted by the checkout endpoint. BackURL
// is where the billing provider redirects after the hosted flow completes.
type CheckoutRequest struct {
	Tier    string `json:"tier" binding:"required"`
	BackURL string `json:"back_url"`
}
