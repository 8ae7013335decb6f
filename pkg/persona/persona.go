package persona

// Persona is the label tuple derived from a wallet score.
type Persona struct {
	Archetype  string `json:"ethArchetype"`
	MumbaiMode string `json:"mumbaiMode"`
	GasStyle   string `json:"gasStyle"`
}

// MapPersona looks up the persona for a score. The five bands are contiguous
// with inclusive upper bounds, so 25 is still an Explorer and 86 is a Maxi.
func MapPersona(score int) Persona {
	switch {
	case score <= 25:
		return Persona{Archetype: "Explorer", MumbaiMode: "Tourist", GasStyle: "Casual"}
	case score <= 45:
		return Persona{Archetype: "Curious", MumbaiMode: "Share Auto", GasStyle: "Hustler"}
	case score <= 65:
		return Persona{Archetype: "Builder", MumbaiMode: "Fast Local", GasStyle: "Ninja"}
	case score <= 85:
		return Persona{Archetype: "OG", MumbaiMode: "First-Class Local", GasStyle: "Wizard"}
	default:
		return Persona{Archetype: "Maxi", MumbaiMode: "City Never Sleeps", GasStyle: "Gas God"}
	}
}
