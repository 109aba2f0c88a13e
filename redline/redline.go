// Package redline checks character cards for completeness and drift risk.
//
// The checks are advisory: a card that fails every one of them still saves.
// They exist to keep authored characters consistent enough that later prose
// does not drift out of character.
package redline

import (
	"strings"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Field labels reported for missing required fields.
const (
	LabelCharacterName = "character name"
	LabelWorkName      = "work name"
	LabelCoreTags      = "core tags"
	LabelFullName      = "full name"
	LabelPublicPersona = "public persona"
	LabelCoreDrive     = "core drive"
)

// Advisory messages for recommended-but-optional fields.
const (
	WarnCharacterRedLine = "recommend filling character red line."
	WarnOOCRedLine       = "recommend filling OOC red line."
	WarnDebutChapterNode = "recommend filling debut chapter node."
)

// Result reports which required fields are empty and which recommended
// fields are absent.
type Result struct {
	IsValid         bool
	MissingRequired []string
	Warnings        []string
}

// Check runs the red line rule set over a card. It is a pure function of
// its input; the card is never mutated.
func Check(c *types.Character) Result {
	var missing, warnings []string

	if blank(c.Metadata.CharacterName) {
		missing = append(missing, LabelCharacterName)
	}
	if blank(c.Metadata.WorkName) {
		missing = append(missing, LabelWorkName)
	}
	if len(c.CorePosition.CoreTags) == 0 {
		missing = append(missing, LabelCoreTags)
	}
	if blank(c.Identity.Names.FullName) {
		missing = append(missing, LabelFullName)
	}
	if blank(c.Psychology.CorePersonality.PublicPersona) {
		missing = append(missing, LabelPublicPersona)
	}
	if blank(c.MotivationArc.CoreDrive) {
		missing = append(missing, LabelCoreDrive)
	}

	if len(c.CorePosition.CharacterRedLine) == 0 {
		warnings = append(warnings, WarnCharacterRedLine)
	}
	if len(c.Psychology.OOCRedLine) == 0 {
		warnings = append(warnings, WarnOOCRedLine)
	}
	if blank(c.PlotBinding.DebutChapterNode) {
		warnings = append(warnings, WarnDebutChapterNode)
	}

	return Result{
		IsValid:         len(missing) == 0,
		MissingRequired: missing,
		Warnings:        warnings,
	}
}

// Summarize flattens a check into display-ready lines: one combined
// missing-required line first, then each warning on its own line.
func Summarize(c *types.Character) []string {
	result := Check(c)

	var messages []string
	if len(result.MissingRequired) > 0 {
		messages = append(messages,
			"missing required fields: "+strings.Join(result.MissingRequired, ", "))
	}
	messages = append(messages, result.Warnings...)
	return messages
}

// Drift risk scoring weights. These are fixed editorial constants, not
// values derived from data; changing them changes reported scores for
// existing cards.
const (
	riskNoOOCRedLine     = 30
	riskNoPublicPersona  = 20
	riskNoCatchphrases   = 15
	riskHighNeuroticism  = 10
	neuroticismThreshold = 80
	riskThreshold        = 50
)

// Risk is the advisory drift assessment for a card.
type Risk struct {
	AtRisk  bool
	Reasons []string
	Score   int
}

// AssessDriftRisk accumulates a score from independent signals that make a
// character likely to read inconsistently in later writing. The score is a
// linear sum; AtRisk flips when it exceeds the threshold.
func AssessDriftRisk(c *types.Character) Risk {
	var reasons []string
	score := 0

	if len(c.Psychology.OOCRedLine) == 0 {
		reasons = append(reasons, "no OOC red line set; drift cannot be judged")
		score += riskNoOOCRedLine
	}
	if c.Psychology.CorePersonality.PublicPersona == "" {
		reasons = append(reasons, "no public persona set")
		score += riskNoPublicPersona
	}
	if len(c.BehaviorPattern.SpeechStyle.Catchphrases) == 0 {
		reasons = append(reasons, "no catchphrases set; speech style may drift")
		score += riskNoCatchphrases
	}
	if c.Psychology.PersonalityModel.Ocean.Neuroticism > neuroticismThreshold {
		reasons = append(reasons, "neuroticism is high; watch emotional volatility in scenes")
		score += riskHighNeuroticism
	}

	return Risk{
		AtRisk:  score > riskThreshold,
		Reasons: reasons,
		Score:   score,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
