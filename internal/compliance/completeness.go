// Package compliance implements the invoice compliance and mapping
// layer: company completeness checks, line item normalization with
// VAT derivation, party resolution, and the mapping of raw invoice
// records into the canonical renderable form consumed by the PDF and
// XRechnung/ZUGFeRD renderers.
package compliance

import (
	"strings"

	"github.com/crylonblue/blitzrechnung/internal/model"
)

// Missing-field labels are user-facing and German, matching the
// dashboard copy.
const (
	labelCompanyData = "Firmendaten"
	labelCompanyName = "Firmenname"
	labelAddress     = "Adresse"
	labelTaxIdent    = "Steuernummer oder USt-IdNr."
	labelIBAN        = "IBAN"
)

var addressFieldLabels = []struct {
	label string
	value func(*model.Address) string
}{
	{"Straße", func(a *model.Address) string { return a.Street }},
	{"Hausnummer", func(a *model.Address) string { return a.StreetNumber }},
	{"PLZ", func(a *model.Address) string { return a.Zip }},
	{"Stadt", func(a *model.Address) string { return a.City }},
	{"Land", func(a *model.Address) string { return a.Country }},
}

// CompletenessResult lists the legal master-data fields a company is
// still missing. An invoice must not be issued with the company as
// seller while Complete is false; callers check this before mapping
// with a self seller.
type CompletenessResult struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields"`
}

// CheckCompleteness inspects a company's master data and reports the
// missing legal fields in a fixed order: name, address sub-fields
// (one combined entry), tax identifier, IBAN. Pure function, same
// input always yields the same list.
func CheckCompleteness(company *model.Company) CompletenessResult {
	if company == nil {
		return CompletenessResult{
			Complete:      false,
			MissingFields: []string{labelCompanyData},
		}
	}

	missing := []string{}

	if strings.TrimSpace(company.Name) == "" {
		missing = append(missing, labelCompanyName)
	}

	if company.Address == nil {
		missing = append(missing, labelAddress)
	} else {
		var absent []string
		for _, f := range addressFieldLabels {
			if strings.TrimSpace(f.value(company.Address)) == "" {
				absent = append(absent, f.label)
			}
		}
		if len(absent) > 0 {
			missing = append(missing, labelAddress+" ("+strings.Join(absent, ", ")+")")
		}
	}

	// One of the two identifiers suffices; only both absent is a
	// violation.
	if strings.TrimSpace(company.TaxID) == "" && strings.TrimSpace(company.VATID) == "" {
		missing = append(missing, labelTaxIdent)
	}

	if company.BankDetails == nil || strings.TrimSpace(company.BankDetails.IBAN) == "" {
		missing = append(missing, labelIBAN)
	}

	return CompletenessResult{
		Complete:      len(missing) == 0,
		MissingFields: missing,
	}
}
