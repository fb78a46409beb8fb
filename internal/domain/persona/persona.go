package persona

import (
	"strings"

	"companion-api/internal/domain/relationship"
)

// Personality selects which prompt template family applies.
type Personality string

const (
	PersonalitySweet   Personality = "sweet"
	PersonalityPlayful Personality = "playful"
	PersonalitySexy    Personality = "sexy"
	PersonalityGoth    Personality = "goth"
)

// Personalities lists every known personality key.
func Personalities() []Personality {
	return []Personality{PersonalitySweet, PersonalityPlayful, PersonalitySexy, PersonalityGoth}
}

// Gender picks the relationship noun substituted into the templates.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Term returns the relationship noun for the gender, defaulting to
// "girlfriend" for unknown values.
func (g Gender) Term() string {
	if g == GenderMale {
		return "boyfriend"
	}
	return "girlfriend"
}

// partnerToken is the placeholder in template text that gets replaced with
// the gendered relationship noun.
const partnerToken = "girlfriend/boyfriend"

// restrictedSuffix is appended to every resolved prompt in restricted mode,
// regardless of which template branch was selected.
const restrictedSuffix = " Keep every reply family-appropriate: no explicit, sexual, or graphic content of any kind."

// Config holds the user-tunable persona settings.
type Config struct {
	Personality Personality `json:"personality"`
	Gender      Gender      `json:"gender"`
	// Restricted selects the tamer template branch and appends the
	// safety suffix.
	Restricted bool `json:"restricted"`
}

// template carries both content-mode branches of one (personality, tier)
// cell. Unrestricted may be empty, in which case the restricted text serves
// both modes.
type template struct {
	restricted   string
	unrestricted string
}

func (t template) pick(restrictedMode bool) string {
	if !restrictedMode && t.unrestricted != "" {
		return t.unrestricted
	}
	return t.restricted
}

// ResolvePrompt returns the system-prompt text for the given persona
// settings and relationship tier. The lookup is total: unknown personalities
// or tiers fall back to the sweet/stranger template instead of failing.
func ResolvePrompt(p Personality, tier relationship.Tier, gender Gender, restricted bool) string {
	tiers, ok := table[p]
	if !ok {
		tiers = table[PersonalitySweet]
	}
	tmpl, ok := tiers[tier]
	if !ok {
		tmpl = table[PersonalitySweet][relationship.TierStranger]
	}

	text := strings.ReplaceAll(tmpl.pick(restricted), partnerToken, gender.Term())
	if restricted {
		text += restrictedSuffix
	}
	return text
}
