// Package testutil provides shared fixtures for character card tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// SampleCharacter returns a fully authored card that passes every red line
// check: all six required fields set, both red lines filled, and one genre
// extension populated. Tests that need an incomplete card start from
// nweos.New instead.
func SampleCharacter() *types.Character {
	c := nweos.New(nweos.Seed{
		Name:   "Lin Yao",
		Author: "River Pen",
		Work:   "Ashes of the Vermilion Court",
		Track:  "guyan_gongdou",
	})

	c.Metadata.CharacterPosition = "female lead"
	c.CorePosition.CoreTags = []string{"vengeful strategist", "hidden heir"}
	c.CorePosition.CharacterRedLine = []string{"never betrays her maid", "never begs"}
	c.CorePosition.CoreShinePoints = []string{"reads the court three moves ahead"}

	c.Identity.Names.FullName = "Lin Yao"
	c.Identity.Names.Nickname = []string{"Ah-Yao"}
	c.Identity.BasicInfo.Gender = "female"
	age := 19
	c.Identity.BasicInfo.Age = &age
	c.Identity.IdentitySystem.PublicIdentity = "disgraced minister's daughter"
	c.Identity.IdentitySystem.Camp = "eastern palace"

	height := 165
	c.Appearance.BasicAppearance.HeightCM = &height
	c.Appearance.BasicAppearance.Eyes = "phoenix eyes, rarely fully open"
	c.Appearance.IconicFeatures = []string{"silver hairpin shaped like a crane"}

	c.Abilities.CoreSkills = []types.CoreSkill{{
		Name:        "Court memory",
		Description: "recalls every slight and every favor, verbatim",
		Strength:    "perfect leverage in negotiations",
		Weakness:    "cannot let grudges fade",
	}}
	c.Abilities.FatalFlaw = []string{"trusts her brother against all evidence"}

	c.Psychology.CorePersonality.PublicPersona = "meek, forgettable, eager to please"
	c.Psychology.CorePersonality.PrivatePersona = "cold planner counting debts"
	c.Psychology.CorePersonality.CoreTraits = []string{"patient", "unforgiving"}
	c.Psychology.PersonalityModel.Ocean.Neuroticism = 35
	c.Psychology.MoralPrinciple.Alignment = "lawful neutral"
	c.Psychology.OOCRedLine = []string{"never raises her voice in public"}

	c.BehaviorPattern.SpeechStyle.Tone = "soft, formal, edged"
	c.BehaviorPattern.SpeechStyle.FormalityLevel = 8
	c.BehaviorPattern.SpeechStyle.Catchphrases = []string{"as you say, my lady"}
	c.BehaviorPattern.ActionHabits.CrisisFirstReaction = "goes still and counts exits"
	c.BehaviorPattern.ActionHabits.DecisionMakingStyle = "slow to commit, impossible to reverse"

	c.BackgroundHistory.OriginStory = "smuggled out of a burning estate at age six"
	c.BackgroundHistory.KeyLifeEvents = []types.KeyLifeEvent{{
		Year:                "Year 3 of Chengping",
		Event:               "family estate burned in a framed treason case",
		ImpactOnPersonality: "learned that loyalty is bought, then verified",
	}}

	c.PreferencesLifestyle.Hobbies = []string{"copying sutras", "pruning plum trees"}
	c.PreferencesLifestyle.Favorites.Season = "late winter"

	c.MotivationArc.CoreDrive = "clear her father's name"
	c.MotivationArc.Goals.LongTermUltimate = "see the chancellor kneel in open court"
	c.MotivationArc.CharacterArcPath.OpeningState = "invisible servant girl"
	c.MotivationArc.CharacterArcPath.FinalState = "power behind the throne"

	c.PlotBinding.DebutChapterNode = "ch.2 palace intake ceremony"
	c.PlotBinding.CoreHighlightNodes = []string{"ch.41 banquet accusation"}

	c.RelationshipNetwork.CoreRelationships = []types.CoreRelationship{{
		CharacterName:               "Shen Wuyan",
		RelationshipPosition:        "reluctant ally, later husband",
		CoreBond:                    "mutual blackmail that curdles into trust",
		RelationshipDevelopmentLine: "adversaries, co-conspirators, partners",
		IconicSceneNodes:            []types.IconicSceneNode{{Chapter: "ch.17", Description: "burning the ledger together"}},
	}}

	c.TrackExtension.GuyanGongdou = &types.GuyanGongdou{
		DynastyYear: "Chengping 21",
		NobleTitle:  "none, by design",
		CourtCamp:   "eastern palace",
	}

	return c
}

// TempStore returns a store rooted inside a fresh temp directory.
func TempStore(t *testing.T) *nweos.Store {
	t.Helper()

	cfg := types.NewConfig()
	cfg.FolderPath = filepath.Join(t.TempDir(), "characters")

	store, err := nweos.NewStore(cfg)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}
