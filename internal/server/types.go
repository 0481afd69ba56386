package server

import (
	"github.com/crylonblue/blitzrechnung/internal/model"
)

// RenderRequest is the request body for the render endpoint. The
// snapshots may be omitted when they are embedded in the invoice
// record.
type RenderRequest struct {
	Invoice        *model.RawInvoice    `json:"invoice"`
	SellerSnapshot *model.PartySnapshot `json:"seller_snapshot,omitempty"`
	BuyerSnapshot  *model.PartySnapshot `json:"buyer_snapshot,omitempty"`
	Company        *model.Company       `json:"company,omitempty"`
	LogoURL        string               `json:"logo_url,omitempty"`
}

// RenderResponse is the response for the render endpoint
type RenderResponse struct {
	Invoice *model.RenderableInvoice `json:"invoice"`
}

// CompletenessRequest is the request body for the completeness
// endpoint
type CompletenessRequest struct {
	Company *model.Company `json:"company"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
