package domain

// OfferCreationState is the stage reached by an offer creation request.
type OfferCreationState int

const (
	OfferCreationReceived OfferCreationState = iota
	OfferCreationAccountResolved
	OfferCreationFeeResolved
	OfferCreationConstraintsProjected
	OfferCreationPayloadAssembled
	OfferCreationPublished
	OfferCreationAssemblyFailed
	OfferCreationPublicationFailed
)

var offerCreationStateToString = map[OfferCreationState]string{
	OfferCreationReceived:             "Received",
	OfferCreationAccountResolved:      "AccountResolved",
	OfferCreationFeeResolved:          "FeeResolved",
	OfferCreationConstraintsProjected: "ConstraintsProjected",
	OfferCreationPayloadAssembled:     "PayloadAssembled",
	OfferCreationPublished:            "Published",
	OfferCreationAssemblyFailed:       "AssemblyFailed",
	OfferCreationPublicationFailed:    "PublicationFailed",
}

func (s OfferCreationState) String() string {
	if str, ok := offerCreationStateToString[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal returns whether no further transition is possible.
func (s OfferCreationState) IsTerminal() bool {
	return s == OfferCreationPublished ||
		s == OfferCreationAssemblyFailed ||
		s == OfferCreationPublicationFailed
}
