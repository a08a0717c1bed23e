package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// FurtherIdentificationType enumerates the registers an additional party
// identifier can come from.
type FurtherIdentificationType int

const (
	FurtherIdentificationARA FurtherIdentificationType = iota
	FurtherIdentificationBBGGZ
	FurtherIdentificationConsolidator
	FurtherIdentificationContract
	FurtherIdentificationDVR
	FurtherIdentificationEORI
	FurtherIdentificationERSB
	FurtherIdentificationFN
	FurtherIdentificationFR
	FurtherIdentificationHG
	FurtherIdentificationPayer
	FurtherIdentificationFASTNR
	FurtherIdentificationVID
	FurtherIdentificationVN
)

// Code returns the schema code for the identification type.
func (t FurtherIdentificationType) Code() string {
	switch t {
	case FurtherIdentificationARA:
		return "ARA"
	case FurtherIdentificationBBGGZ:
		return "BBG_GZ"
	case FurtherIdentificationConsolidator:
		return "Consolidator"
	case FurtherIdentificationContract:
		return "Contract"
	case FurtherIdentificationDVR:
		return "DVR"
	case FurtherIdentificationEORI:
		return "EORI"
	case FurtherIdentificationERSB:
		return "ERSB"
	case FurtherIdentificationFN:
		return "FN"
	case FurtherIdentificationFR:
		return "FR"
	case FurtherIdentificationHG:
		return "HG"
	case FurtherIdentificationPayer:
		return "Payer"
	case FurtherIdentificationFASTNR:
		return "FASTNR"
	case FurtherIdentificationVID:
		return "VID"
	case FurtherIdentificationVN:
		return "VN"
	}
	return ""
}

// ParseFurtherIdentificationType maps a schema code back to its type.
func ParseFurtherIdentificationType(code string) (FurtherIdentificationType, error) {
	for t := FurtherIdentificationARA; t <= FurtherIdentificationVN; t++ {
		if t.Code() == code {
			return t, nil
		}
	}
	return 0, NewValidationError("FurtherIdentificationType", code, "enum", "unknown identification type")
}

// FurtherIdentification is an additional party identifier such as a company
// register number.
type FurtherIdentification struct {
	ID   string
	Type FurtherIdentificationType
}

// AsXML renders the identification with its type attribute.
func (f FurtherIdentification) AsXML() *xmltree.Element {
	return xmltree.New("FurtherIdentification").
		WithAttr("IdentificationType", f.Type.Code()).
		WithText(f.ID)
}
