package compliance

import (
	"strings"

	"github.com/crylonblue/blitzrechnung/internal/model"
)

// PartySourceKind discriminates the party source variants
type PartySourceKind int

const (
	// SourceNone means no party data exists for this side
	SourceNone PartySourceKind = iota
	// SourceSelf means the issuing company's own master data is used
	SourceSelf
	// SourceExternal means a frozen contact snapshot is used
	SourceExternal
)

// PartySource is a tagged union over {self company, external
// snapshot, none}. Modeling the source this way removes the
// ambiguous "isSelf flag plus nullable snapshot" state: a source is
// constructed as exactly one variant.
type PartySource struct {
	kind     PartySourceKind
	company  *model.Company
	snapshot *model.PartySnapshot
}

// SelfParty sources the party from the issuing company's master data
func SelfParty(company *model.Company) PartySource {
	return PartySource{kind: SourceSelf, company: company}
}

// ExternalParty sources the party from a frozen snapshot
func ExternalParty(snapshot *model.PartySnapshot) PartySource {
	if snapshot == nil {
		return NoParty()
	}
	return PartySource{kind: SourceExternal, snapshot: snapshot}
}

// NoParty marks a side with no party data at all
func NoParty() PartySource {
	return PartySource{kind: SourceNone}
}

// PartySourceFor builds the source from the raw invoice flags.
// The isSelf flag always wins over a supplied snapshot; that
// precedence is a resolution rule, not an error.
func PartySourceFor(isSelf bool, snapshot *model.PartySnapshot, company *model.Company) PartySource {
	if isSelf {
		return SelfParty(company)
	}
	return ExternalParty(snapshot)
}

// Kind returns the source variant
func (s PartySource) Kind() PartySourceKind {
	return s.kind
}

// Resolve projects the source into the uniform renderable party
// shape. The self path exposes only name, address, and VAT id;
// company-level tax id and contact person are not carried. The
// external path projects the snapshot's full field set. A None source
// resolves to the no-recipient sentinel, distinguishable from a party
// that merely has an empty name.
func (s PartySource) Resolve() model.RenderableParty {
	switch s.kind {
	case SourceSelf:
		if s.company == nil {
			return EmptySellerParty()
		}
		party := model.RenderableParty{
			Name:  s.company.Name,
			VATID: s.company.VATID,
		}
		if s.company.Address != nil {
			party.Address = *s.company.Address
		}
		return party

	case SourceExternal:
		party := model.RenderableParty{
			Name:      s.snapshot.Name,
			Address:   s.snapshot.Address,
			VATID:     s.snapshot.VATID,
			TaxNumber: s.snapshot.TaxID,
		}
		if s.snapshot.Contact != nil {
			contact := *s.snapshot.Contact
			party.Contact = &contact
		}
		if !s.snapshot.BankDetails.Empty() {
			bd := *s.snapshot.BankDetails
			party.BankDetails = &bd
		}
		if strings.TrimSpace(s.snapshot.Email) != "" {
			party.AdditionalInfo = []string{s.snapshot.Email}
		}
		return party

	default:
		return model.RenderableParty{NoRecipient: true}
	}
}

// EmptySellerParty is the structurally complete placeholder emitted
// when no seller data is resolvable, so renderers never null-check.
func EmptySellerParty() model.RenderableParty {
	return model.RenderableParty{
		Address: model.Address{Country: "DE"},
	}
}
