// Package nweos implements the character card lifecycle: the default card
// constructor, JSON serialization with a structural gate, the folder-backed
// store keyed by card identifier, and the import/export contract.
package nweos

import (
	"time"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos/ids"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Canonical values stamped into the standard branch of new cards.
// "nweos-v1" appeared in older files and stays recognized on read, but
// every producer in this codebase writes SchemaTag.
const (
	SchemaTag       = "nweos"
	SchemaTagLegacy = "nweos-v1"
	SchemaVersion   = "1.0.0"
	SchemaFormat    = "character-card"
)

// Personality axes and volatility default to the middle of the 0-100 scale;
// the speech sliders to the middle of 0-10.
const (
	traitMidpoint  = 50
	sliderMidpoint = 5
)

// RecognizedSchema reports whether tag marks a readable character card.
func RecognizedSchema(tag string) bool {
	return tag == SchemaTag || tag == SchemaTagLegacy
}

// Seed carries the optional values pre-filled into a new card's metadata.
// None of them affect the generated identifier.
type Seed struct {
	Name   string
	Author string
	Work   string
	Track  string
}

// SeedFromConfig builds a Seed from the configured defaults.
func SeedFromConfig(cfg types.Config) Seed {
	return Seed{
		Author: cfg.DefaultAuthor,
		Work:   cfg.DefaultWork,
		Track:  cfg.DefaultTrack,
	}
}

// New returns a card with every branch populated with empty leaves, a fresh
// identifier and matching creation/update timestamps.
func New(seed Seed) *types.Character {
	now := Timestamp()
	return &types.Character{
		Standard: types.Standard{
			Version: SchemaVersion,
			Schema:  SchemaTag,
			Format:  SchemaFormat,
		},
		Metadata: types.Metadata{
			CharacterID:      ids.New(),
			CharacterName:    seed.Name,
			WorkName:         seed.Work,
			NovelTrack:       seed.Track,
			CharacterVersion: "1.0",
			Author:           seed.Author,
			CreatedAt:        now,
			LastUpdated:      now,
		},
		CorePosition: types.CorePosition{
			CoreTags:           []string{},
			TrackAdaptTags:     []string{},
			CoreShinePoints:    []string{},
			CoreAngstPoints:    []string{},
			ReaderMemoryPoints: []string{},
			CharacterRedLine:   []string{},
		},
		Identity: types.Identity{
			Names: types.IdentityNames{
				Nickname: []string{},
			},
		},
		Appearance: types.Appearance{
			IconicFeatures: []string{},
		},
		Abilities: types.Abilities{
			BasicAbilities:   []types.BasicAbility{},
			CoreSkills:       []types.CoreSkill{},
			GoldFingerSystem: []types.GoldFingerSystem{},
			FatalFlaw:        []string{},
		},
		Psychology: types.Psychology{
			CorePersonality: types.CorePersonality{
				CoreTraits:     []string{},
				ContrastDesign: []types.ContrastDesign{},
			},
			PersonalityModel: types.PersonalityModel{
				Ocean: types.OceanModel{
					Openness:          traitMidpoint,
					Conscientiousness: traitMidpoint,
					Extraversion:      traitMidpoint,
					Agreeableness:     traitMidpoint,
					Neuroticism:       traitMidpoint,
				},
			},
			MoralPrinciple: types.MoralPrinciple{
				CoreValues: []string{},
				BottomLine: []string{},
			},
			EmotionalProfile: types.EmotionalProfile{
				EmotionalVolatility: traitMidpoint,
				JoyTriggers:         []string{},
				AngerTriggers:       []string{},
				BreakdownTriggers:   []string{},
				SoftTriggers:        []string{},
			},
			OOCRedLine: []string{},
		},
		BehaviorPattern: types.BehaviorPattern{
			SpeechStyle: types.SpeechStyle{
				FormalityLevel: sliderMidpoint,
				VerbosityLevel: sliderMidpoint,
				Catchphrases:   []string{},
				ForbiddenWords: []string{},
			},
			ActionHabits: types.ActionHabits{
				IconicTics: []string{},
			},
		},
		BackgroundHistory: types.BackgroundHistory{
			KeyLifeEvents: []types.KeyLifeEvent{},
		},
		PreferencesLifestyle: types.PreferencesLifestyle{
			Hobbies:   []string{},
			Aversions: []string{},
		},
		MotivationArc: types.MotivationArc{
			Goals: types.Goals{
				ShortTerm:  []string{},
				MediumTerm: []string{},
			},
			CoreFears: types.CoreFears{
				Rational:   []string{},
				Irrational: []string{},
			},
			CharacterArcPath: types.CharacterArcPath{
				GrowthNodes: []string{},
			},
		},
		PlotBinding: types.PlotBinding{
			CoreHighlightNodes:             []string{},
			PersonalityTransformationNodes: []string{},
			ForeshadowingRecycleNodes:      []string{},
		},
		RelationshipNetwork: types.RelationshipNetwork{
			CoreRelationships:      []types.CoreRelationship{},
			SecondaryRelationships: []types.SecondaryRelationship{},
			HostileRelationships:   []types.HostileRelationship{},
			NeutralAcquaintances:   []types.NeutralAcquaintance{},
		},
		TrackExtension: types.TrackExtension{},
	}
}

// Timestamp returns the current time in the format card metadata uses.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
