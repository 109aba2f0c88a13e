package formats

import (
	"fmt"
	"strings"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Markdown renders a human-readable profile summary: identity, appearance,
// abilities, psychology, behavior, background, motivation and core
// relationships, in that order. Empty scalar fields render as "unset" in
// the always-present sections and are omitted elsewhere.
var Markdown = &CardFormat{
	Name:      "markdown",
	Extension: ".md",
	Render:    renderMarkdown,
}

func init() {
	mustRegister(Markdown)
}

const unset = "unset"

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return s
}

func renderMarkdown(c *types.Character) ([]byte, error) {
	var b strings.Builder

	meta := c.Metadata
	fmt.Fprintf(&b, "# %s\n\n", orUnset(meta.CharacterName))
	fmt.Fprintf(&b, "**Work**: %s | **Author**: %s\n", orUnset(meta.WorkName), meta.Author)
	fmt.Fprintf(&b, "**Created**: %s | **Last updated**: %s\n\n", meta.CreatedAt, meta.LastUpdated)

	writeIdentity(&b, c)
	writeAppearance(&b, c)
	writeAbilities(&b, c)
	writePsychology(&b, c)
	writeBehavior(&b, c)
	writeBackground(&b, c)
	writeMotivation(&b, c)
	writeRelationships(&b, c)

	if meta.Notes != "" {
		fmt.Fprintf(&b, "## Notes\n\n%s\n", meta.Notes)
	}

	return []byte(b.String()), nil
}

func writeIdentity(b *strings.Builder, c *types.Character) {
	b.WriteString("## Identity\n\n")
	names := c.Identity.Names
	fmt.Fprintf(b, "- **Full name**: %s\n", orUnset(names.FullName))
	if len(names.Nickname) > 0 {
		fmt.Fprintf(b, "- **Nicknames**: %s\n", strings.Join(names.Nickname, ", "))
	}
	info := c.Identity.BasicInfo
	fmt.Fprintf(b, "- **Gender**: %s\n", orUnset(info.Gender))
	if info.Age != nil {
		fmt.Fprintf(b, "- **Age**: %d\n", *info.Age)
	}
	system := c.Identity.IdentitySystem
	fmt.Fprintf(b, "- **Public identity**: %s\n", orUnset(system.PublicIdentity))
	fmt.Fprintf(b, "- **Camp**: %s\n\n", orUnset(system.Camp))
}

func writeAppearance(b *strings.Builder, c *types.Character) {
	b.WriteString("## Appearance\n\n")
	basic := c.Appearance.BasicAppearance
	if basic.FaceShape != "" {
		fmt.Fprintf(b, "- **Face**: %s\n", basic.FaceShape)
	}
	if basic.Eyes != "" {
		fmt.Fprintf(b, "- **Eyes**: %s\n", basic.Eyes)
	}
	if basic.Hair != "" {
		fmt.Fprintf(b, "- **Hair**: %s\n", basic.Hair)
	}
	if basic.HeightCM != nil {
		fmt.Fprintf(b, "- **Height**: %dcm\n", *basic.HeightCM)
	}
	if basic.WeightKG != nil {
		fmt.Fprintf(b, "- **Weight**: %gkg\n", *basic.WeightKG)
	}
	if len(c.Appearance.IconicFeatures) > 0 {
		fmt.Fprintf(b, "- **Iconic features**: %s\n", strings.Join(c.Appearance.IconicFeatures, ", "))
	}
	b.WriteString("\n")
}

func writeAbilities(b *strings.Builder, c *types.Character) {
	b.WriteString("## Abilities\n\n")
	if len(c.Abilities.CoreSkills) > 0 {
		b.WriteString("### Core skills\n")
		for _, skill := range c.Abilities.CoreSkills {
			fmt.Fprintf(b, "- **%s**: %s\n", skill.Name, skill.Description)
		}
	}
	if len(c.Abilities.FatalFlaw) > 0 {
		b.WriteString("\n### Fatal flaws\n")
		for _, flaw := range c.Abilities.FatalFlaw {
			fmt.Fprintf(b, "- %s\n", flaw)
		}
	}
	b.WriteString("\n")
}

func writePsychology(b *strings.Builder, c *types.Character) {
	core := c.Psychology.CorePersonality
	b.WriteString("## Psychology\n\n")
	fmt.Fprintf(b, "### Public persona\n%s\n\n", orUnset(core.PublicPersona))
	fmt.Fprintf(b, "### Private persona\n%s\n\n", orUnset(core.PrivatePersona))
	if len(core.CoreTraits) > 0 {
		fmt.Fprintf(b, "### Core traits\n%s\n\n", strings.Join(core.CoreTraits, ", "))
	}
}

func writeBehavior(b *strings.Builder, c *types.Character) {
	b.WriteString("## Behavior\n\n")
	speech := c.BehaviorPattern.SpeechStyle
	b.WriteString("### Speech style\n")
	fmt.Fprintf(b, "- **Formality**: %d/10\n", speech.FormalityLevel)
	fmt.Fprintf(b, "- **Tone**: %s\n", orUnset(speech.Tone))
	if len(speech.Catchphrases) > 0 {
		fmt.Fprintf(b, "- **Catchphrases**: %s\n", strings.Join(speech.Catchphrases, ", "))
	}
	habits := c.BehaviorPattern.ActionHabits
	b.WriteString("\n### Action habits\n")
	if len(habits.IconicTics) > 0 {
		fmt.Fprintf(b, "- **Iconic tics**: %s\n", strings.Join(habits.IconicTics, ", "))
	}
	fmt.Fprintf(b, "- **Crisis reaction**: %s\n", orUnset(habits.CrisisFirstReaction))
	fmt.Fprintf(b, "- **Decision style**: %s\n\n", orUnset(habits.DecisionMakingStyle))
}

func writeBackground(b *strings.Builder, c *types.Character) {
	bg := c.BackgroundHistory
	if bg.OriginStory != "" {
		fmt.Fprintf(b, "## Background\n\n%s\n\n", bg.OriginStory)
	}
	if len(bg.KeyLifeEvents) > 0 {
		b.WriteString("### Key life events\n")
		for _, event := range bg.KeyLifeEvents {
			fmt.Fprintf(b, "- **%s**: %s\n", event.Year, event.Event)
		}
		b.WriteString("\n")
	}
}

func writeMotivation(b *strings.Builder, c *types.Character) {
	arc := c.MotivationArc
	b.WriteString("## Motivation arc\n\n")
	fmt.Fprintf(b, "### Core drive\n%s\n\n", orUnset(arc.CoreDrive))
	fmt.Fprintf(b, "### Ultimate goal\n%s\n\n", orUnset(arc.Goals.LongTermUltimate))
	b.WriteString("### Character arc\n")
	fmt.Fprintf(b, "- **Opening state**: %s\n", orUnset(arc.CharacterArcPath.OpeningState))
	fmt.Fprintf(b, "- **Final state**: %s\n\n", orUnset(arc.CharacterArcPath.FinalState))
}

func writeRelationships(b *strings.Builder, c *types.Character) {
	core := c.RelationshipNetwork.CoreRelationships
	if len(core) == 0 {
		return
	}
	b.WriteString("## Core relationships\n\n")
	for _, rel := range core {
		fmt.Fprintf(b, "- **%s** (%s): %s\n", rel.CharacterName, rel.RelationshipPosition, rel.CoreBond)
	}
	b.WriteString("\n")
}
