package model

// FactionSymbol identifies one of the in-game factions
type FactionSymbol string

const (
	FactionCosmic   FactionSymbol = "COSMIC"
	FactionVoid     FactionSymbol = "VOID"
	FactionGalactic FactionSymbol = "GALACTIC"
	FactionQuantum  FactionSymbol = "QUANTUM"
	FactionDominion FactionSymbol = "DOMINION"
	FactionAstro    FactionSymbol = "ASTRO"
	FactionCorsairs FactionSymbol = "CORSAIRS"
	FactionObsidian FactionSymbol = "OBSIDIAN"
	FactionAegis    FactionSymbol = "AEGIS"
	FactionUnited   FactionSymbol = "UNITED"
	FactionSolitary FactionSymbol = "SOLITARY"
	FactionCobalt   FactionSymbol = "COBALT"
	FactionOmega    FactionSymbol = "OMEGA"
	FactionEcho     FactionSymbol = "ECHO"
	FactionLords    FactionSymbol = "LORDS"
	FactionCult     FactionSymbol = "CULT"
	FactionAncients FactionSymbol = "ANCIENTS"
	FactionShadow   FactionSymbol = "SHADOW"
	FactionEthereal FactionSymbol = "ETHEREAL"
)

var factionSymbols = newEnumSet(
	FactionCosmic, FactionVoid, FactionGalactic, FactionQuantum, FactionDominion,
	FactionAstro, FactionCorsairs, FactionObsidian, FactionAegis, FactionUnited,
	FactionSolitary, FactionCobalt, FactionOmega, FactionEcho, FactionLords,
	FactionCult, FactionAncients, FactionShadow, FactionEthereal,
)

func (f *FactionSymbol) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, factionSymbols, "FactionSymbol")
}

// IsValid reports whether f is a known faction
func (f FactionSymbol) IsValid() bool { return factionSymbols.contains(f) }

// ParseFactionSymbol parses a faction name such as "cosmic" or "COSMIC"
func ParseFactionSymbol(s string) (FactionSymbol, error) {
	return parseEnum(s, factionSymbols, "FactionSymbol")
}

// Faction is the public description of a faction
type Faction struct {
	Symbol       FactionSymbol  `json:"symbol" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description"`
	Headquarters string         `json:"headquarters"`
	Traits       []FactionTrait `json:"traits" validate:"dive"`
	IsRecruiting bool           `json:"isRecruiting"`
}

// FactionTrait is a descriptive trait of a faction. Trait symbols are kept
// as plain strings; the server adds them more often than any other enum.
type FactionTrait struct {
	Symbol      string `json:"symbol" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
