package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPersona_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  Persona
	}{
		{0, Persona{"Explorer", "Tourist", "Casual"}},
		{25, Persona{"Explorer", "Tourist", "Casual"}}, // boundary maps low
		{26, Persona{"Curious", "Share Auto", "Hustler"}},
		{45, Persona{"Curious", "Share Auto", "Hustler"}},
		{46, Persona{"Builder", "Fast Local", "Ninja"}},
		{65, Persona{"Builder", "Fast Local", "Ninja"}},
		{66, Persona{"OG", "First-Class Local", "Wizard"}},
		{85, Persona{"OG", "First-Class Local", "Wizard"}},
		{86, Persona{"Maxi", "City Never Sleeps", "Gas God"}},
		{100, Persona{"Maxi", "City Never Sleeps", "Gas God"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapPersona(tc.score), "score %d", tc.score)
	}
}

func TestMapPersona_PartitionHasNoGaps(t *testing.T) {
	// every score in [0,100] maps to exactly one of the five archetypes
	seen := map[string]bool{}
	for score := 0; score <= 100; score++ {
		p := MapPersona(score)
		assert.NotEmpty(t, p.Archetype)
		assert.NotEmpty(t, p.MumbaiMode)
		assert.NotEmpty(t, p.GasStyle)
		seen[p.Archetype] = true
	}
	assert.Len(t, seen, 5)
}
