// Package types defines the character card document model shared by the
// store, the red line checker and the export formats.
package types

// Standard identifies the file format a character card was written in.
type Standard struct {
	Version string `json:"version"`
	Schema  string `json:"schema"`
	Format  string `json:"format"`
}

// Metadata carries the identity and descriptive fields of a character card.
// CharacterID is the primary key; it is stamped once at creation and never
// derived from content. CharacterName and WorkName only influence the
// derived filename.
type Metadata struct {
	CharacterID       string `json:"character_id"`
	CharacterName     string `json:"character_name"`
	WorkName          string `json:"work_name"`
	NovelTrack        string `json:"novel_track"`
	CharacterPosition string `json:"character_position"`
	CharacterVersion  string `json:"character_version"`
	Author            string `json:"author"`
	CreatedAt         string `json:"created_at"`
	LastUpdated       string `json:"last_updated"`
	Notes             string `json:"notes,omitempty"`
}

// CorePosition holds the authorial positioning of the character.
type CorePosition struct {
	CoreTags           []string `json:"core_tags"`
	TrackAdaptTags     []string `json:"track_adapt_tags"`
	CoreShinePoints    []string `json:"core_shine_points"`
	CoreAngstPoints    []string `json:"core_angst_points"`
	ReaderMemoryPoints []string `json:"reader_memory_points"`
	CharacterRedLine   []string `json:"character_red_line"`
}

// IdentityNames collects every name the character goes by.
type IdentityNames struct {
	FullName     string   `json:"full_name"`
	CourtesyName string   `json:"courtesy_name,omitempty"`
	Nickname     []string `json:"nickname"`
	CodeName     string   `json:"code_name,omitempty"`
	Title        string   `json:"title,omitempty"`
}

// IdentityBasicInfo holds demographic facts. Age fields are pointers so
// "not recorded" stays distinct from zero.
type IdentityBasicInfo struct {
	Age              *int   `json:"age,omitempty"`
	AgePerceived     *int   `json:"age_perceived,omitempty"`
	Gender           string `json:"gender"`
	Birthday         string `json:"birthday,omitempty"`
	Birthplace       string `json:"birthplace,omitempty"`
	CurrentResidence string `json:"current_residence,omitempty"`
}

// IdentitySystem describes the character's social standing.
type IdentitySystem struct {
	PublicIdentity string `json:"public_identity"`
	HiddenIdentity string `json:"hidden_identity,omitempty"`
	Camp           string `json:"camp"`
	FamilyClan     string `json:"family_clan,omitempty"`
	StatusRank     string `json:"status_rank,omitempty"`
}

// Identity bundles names, demographics and social identity.
type Identity struct {
	Names          IdentityNames     `json:"names"`
	BasicInfo      IdentityBasicInfo `json:"basic_info"`
	IdentitySystem IdentitySystem    `json:"identity_system"`
}

// BasicAppearance holds the physical description.
type BasicAppearance struct {
	FaceShape string   `json:"face_shape,omitempty"`
	Skin      string   `json:"skin,omitempty"`
	Eyes      string   `json:"eyes,omitempty"`
	Hair      string   `json:"hair,omitempty"`
	BodyShape string   `json:"body_shape,omitempty"`
	HeightCM  *int     `json:"height_cm,omitempty"`
	WeightKG  *float64 `json:"weight_kg,omitempty"`
}

// SceneStyle records how the character dresses per scene kind.
type SceneStyle struct {
	Daily                 string `json:"daily,omitempty"`
	Formal                string `json:"formal,omitempty"`
	FightCrisis           string `json:"fight_crisis,omitempty"`
	EmotionalOutOfControl string `json:"emotional_out_of_control,omitempty"`
}

// Appearance is the full look of the character.
type Appearance struct {
	BasicAppearance       BasicAppearance `json:"basic_appearance"`
	IconicFeatures        []string        `json:"iconic_features"`
	SceneStyle            SceneStyle      `json:"scene_style"`
	AppearancePlotBinding string          `json:"appearance_plot_binding,omitempty"`
}

// BasicAbility is a mundane learned skill.
type BasicAbility struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	PlotPurpose string `json:"plot_purpose"`
	Priority    int    `json:"priority"`
}

// CoreSkill is a plot-bearing signature ability.
type CoreSkill struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Strength       string `json:"strength"`
	Weakness       string `json:"weakness"`
	GrowthLine     string `json:"growth_line,omitempty"`
	HighlightScene string `json:"highlight_scene,omitempty"`
}

// GoldFingerSystem is a protagonist cheat with its trigger and limits.
type GoldFingerSystem struct {
	Name             string `json:"name"`
	TriggerCondition string `json:"trigger_condition"`
	LimitRestriction string `json:"limit_restriction"`
	GrowthRule       string `json:"growth_rule,omitempty"`
	CoreUsage        string `json:"core_usage"`
}

// Abilities aggregates everything the character can do.
type Abilities struct {
	BasicAbilities   []BasicAbility     `json:"basic_abilities"`
	CoreSkills       []CoreSkill        `json:"core_skills"`
	GoldFingerSystem []GoldFingerSystem `json:"gold_finger_system"`
	FatalFlaw        []string           `json:"fatal_flaw"`
}

// ContrastDesign contrasts a trait as shown publicly versus privately.
type ContrastDesign struct {
	Trait       string `json:"trait"`
	PublicSide  string `json:"public_side"`
	PrivateSide string `json:"private_side"`
}

// OceanModel holds the five-factor personality axes on a 0-100 scale.
// The midpoint 50 means "unremarkable on this axis".
type OceanModel struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// PersonalityModel combines the OCEAN axes with informal typings.
type PersonalityModel struct {
	Ocean       OceanModel `json:"ocean"`
	MBTI        string     `json:"mbti,omitempty"`
	Temperament string     `json:"temperament,omitempty"`
}

// MoralPrinciple pins down what the character will and will not do.
type MoralPrinciple struct {
	Alignment        string   `json:"alignment"`
	CoreValues       []string `json:"core_values"`
	BottomLine       []string `json:"bottom_line"`
	ConflictHandling string   `json:"conflict_handling"`
}

// EmotionalProfile records mood baseline and what moves it.
// EmotionalVolatility uses the 0-100 scale, midpoint 50.
type EmotionalProfile struct {
	BaseMood            string   `json:"base_mood"`
	EmotionalVolatility int      `json:"emotional_volatility"`
	JoyTriggers         []string `json:"joy_triggers"`
	AngerTriggers       []string `json:"anger_triggers"`
	BreakdownTriggers   []string `json:"breakdown_triggers"`
	SoftTriggers        []string `json:"soft_triggers"`
}

// CorePersonality is the public/private persona split.
type CorePersonality struct {
	PublicPersona  string           `json:"public_persona"`
	PrivatePersona string           `json:"private_persona"`
	CoreTraits     []string         `json:"core_traits"`
	ContrastDesign []ContrastDesign `json:"contrast_design"`
}

// Psychology is the inner life of the character. OOCRedLine lists behaviors
// that would read as out of character; presence is advisory only.
type Psychology struct {
	CorePersonality       CorePersonality  `json:"core_personality"`
	PersonalityModel      PersonalityModel `json:"personality_model"`
	MoralPrinciple        MoralPrinciple   `json:"moral_principle"`
	EmotionalProfile      EmotionalProfile `json:"emotional_profile"`
	PsychologicalTrauma   string           `json:"psychological_trauma,omitempty"`
	Obsession             string           `json:"obsession,omitempty"`
	PersonalityGrowthLine string           `json:"personality_growth_line,omitempty"`
	OOCRedLine            []string         `json:"ooc_red_line"`
}

// SpeechStyle describes how the character talks. Formality and verbosity
// are 0-10 sliders with midpoint 5.
type SpeechStyle struct {
	FormalityLevel    int               `json:"formality_level"`
	VerbosityLevel    int               `json:"verbosity_level"`
	VocabularyHabit   string            `json:"vocabulary_habit"`
	Tone              string            `json:"tone"`
	Catchphrases      []string          `json:"catchphrases"`
	ForbiddenWords    []string          `json:"forbidden_words"`
	SceneSpeechChange map[string]string `json:"scene_speech_change,omitempty"`
}

// ActionHabits describes how the character moves and decides.
type ActionHabits struct {
	IconicTics          []string `json:"iconic_tics"`
	CrisisFirstReaction string   `json:"crisis_first_reaction"`
	DecisionMakingStyle string   `json:"decision_making_style"`
	InteractionHabit    string   `json:"interaction_habit,omitempty"`
}

// BehaviorPattern pairs speech with action habits.
type BehaviorPattern struct {
	SpeechStyle  SpeechStyle  `json:"speech_style"`
	ActionHabits ActionHabits `json:"action_habits"`
}

// KeyLifeEvent is one formative event in the character's past.
type KeyLifeEvent struct {
	Year                string `json:"year"`
	Event               string `json:"event"`
	ImpactOnPersonality string `json:"impact_on_personality"`
	PlotForeshadowing   string `json:"plot_foreshadowing,omitempty"`
}

// BackgroundHistory is the character's past.
type BackgroundHistory struct {
	OriginStory         string         `json:"origin_story,omitempty"`
	EducationExperience string         `json:"education_experience,omitempty"`
	CareerExperience    string         `json:"career_experience,omitempty"`
	HiddenSecret        string         `json:"hidden_secret,omitempty"`
	FamilyBackground    string         `json:"family_background,omitempty"`
	KeyLifeEvents       []KeyLifeEvent `json:"key_life_events"`
}

// Favorites are the small concrete preferences that make scenes specific.
type Favorites struct {
	Food   string `json:"food,omitempty"`
	Color  string `json:"color,omitempty"`
	Thing  string `json:"thing,omitempty"`
	Season string `json:"season,omitempty"`
	Scene  string `json:"scene,omitempty"`
}

// PreferencesLifestyle covers tastes and daily habits.
type PreferencesLifestyle struct {
	Hobbies               []string  `json:"hobbies"`
	Favorites             Favorites `json:"favorites"`
	Aversions             []string  `json:"aversions"`
	PreferencePlotBinding string    `json:"preference_plot_binding,omitempty"`
	LifestyleHabit        string    `json:"lifestyle_habit,omitempty"`
}

// Goals tiers the character's objectives by horizon.
type Goals struct {
	ShortTerm        []string `json:"short_term"`
	MediumTerm       []string `json:"medium_term"`
	LongTermUltimate string   `json:"long_term_ultimate"`
}

// CoreFears separates grounded from irrational fears.
type CoreFears struct {
	Rational   []string `json:"rational"`
	Irrational []string `json:"irrational"`
}

// CharacterArcPath traces the planned transformation across the work.
type CharacterArcPath struct {
	OpeningState            string   `json:"opening_state"`
	GrowthNodes             []string `json:"growth_nodes"`
	HighlightMoment         string   `json:"highlight_moment"`
	FinalState              string   `json:"final_state"`
	CharacterTransformation string   `json:"character_transformation"`
}

// MotivationArc is why the character acts and where that takes them.
type MotivationArc struct {
	CoreDrive        string           `json:"core_drive"`
	Goals            Goals            `json:"goals"`
	CoreFears        CoreFears        `json:"core_fears"`
	CharacterArcPath CharacterArcPath `json:"character_arc_path"`
}

// PlotBinding anchors the character to chapter nodes of the work.
type PlotBinding struct {
	DebutChapterNode               string   `json:"debut_chapter_node"`
	CoreHighlightNodes             []string `json:"core_highlight_nodes"`
	PersonalityTransformationNodes []string `json:"personality_transformation_nodes"`
	ForeshadowingRecycleNodes      []string `json:"foreshadowing_recycle_nodes"`
	MainLineBinding                string   `json:"main_line_binding,omitempty"`
	EndingSetting                  string   `json:"ending_setting,omitempty"`
	ExtraContent                   string   `json:"extra_content,omitempty"`
}

// IconicSceneNode points at a memorable scene shared with another character.
type IconicSceneNode struct {
	Chapter     string `json:"chapter,omitempty"`
	Description string `json:"description"`
}

// CoreRelationship is a load-bearing bond. CharacterName references the
// other party informally; no referential integrity is enforced.
type CoreRelationship struct {
	CharacterName               string            `json:"character_name"`
	RelationshipPosition        string            `json:"relationship_position"`
	CoreBond                    string            `json:"core_bond"`
	RelationshipDevelopmentLine string            `json:"relationship_development_line"`
	CoreConflict                string            `json:"core_conflict,omitempty"`
	IconicSceneNodes            []IconicSceneNode `json:"iconic_scene_nodes"`
}

// SecondaryRelationship is a supporting bond.
type SecondaryRelationship struct {
	CharacterName        string `json:"character_name"`
	RelationshipPosition string `json:"relationship_position"`
	CoreBond             string `json:"core_bond"`
}

// HostileRelationship is an adversarial bond.
type HostileRelationship struct {
	CharacterName        string `json:"character_name"`
	RelationshipPosition string `json:"relationship_position"`
	Reason               string `json:"reason"`
}

// NeutralAcquaintance is a bond without stakes.
type NeutralAcquaintance struct {
	CharacterName        string `json:"character_name"`
	RelationshipPosition string `json:"relationship_position"`
	Note                 string `json:"note,omitempty"`
}

// RelationshipNetwork groups every relationship by weight.
type RelationshipNetwork struct {
	CoreRelationships      []CoreRelationship      `json:"core_relationships"`
	SecondaryRelationships []SecondaryRelationship `json:"secondary_relationships"`
	HostileRelationships   []HostileRelationship   `json:"hostile_relationships"`
	NeutralAcquaintances   []NeutralAcquaintance   `json:"neutral_acquaintances"`
}

// XuanhuanXianxia extends a card for cultivation-fantasy tracks.
type XuanhuanXianxia struct {
	CultivationLevel              string `json:"cultivation_level,omitempty"`
	SpiritRootMartialSoul         string `json:"spirit_root_martial_soul,omitempty"`
	CultivationMethodMagicTreasure string `json:"cultivation_method_magic_treasure,omitempty"`
	Sect                          string `json:"sect,omitempty"`
	Lifespan                      string `json:"lifespan,omitempty"`
}

// GuyanGongdou extends a card for historical court-intrigue tracks.
type GuyanGongdou struct {
	DynastyYear   string `json:"dynasty_year,omitempty"`
	NobleTitle    string `json:"noble_title,omitempty"`
	FamilyPower   string `json:"family_power,omitempty"`
	MansionPalace string `json:"mansion_palace,omitempty"`
	CourtCamp     string `json:"court_camp,omitempty"`
}

// XianyanDushi extends a card for modern urban tracks.
type XianyanDushi struct {
	CareerPosition  string `json:"career_position,omitempty"`
	CompanyIndustry string `json:"company_industry,omitempty"`
	Assets          string `json:"assets,omitempty"`
	SocialResources string `json:"social_resources,omitempty"`
}

// KehuanMoshi extends a card for sci-fi and apocalypse tracks.
type KehuanMoshi struct {
	AbilityLevel     string `json:"ability_level,omitempty"`
	CyberneticReform string `json:"cybernetic_reform,omitempty"`
	CampBase         string `json:"camp_base,omitempty"`
	SurvivalAbility  string `json:"survival_ability,omitempty"`
}

// XuanyiXingzhen extends a card for mystery and detective tracks.
type XuanyiXingzhen struct {
	IdentityAuthority    string `json:"identity_authority,omitempty"`
	CaseSolvingAbility   string `json:"case_solving_ability,omitempty"`
	CoreSecret           string `json:"core_secret,omitempty"`
	PsychologicalProfile string `json:"psychological_profile,omitempty"`
}

// TrackExtension is the bag of genre-specific sub-records. Each variant is
// independently optional; nil means "not applicable to this track", not
// "unset". By convention at most one variant is populated.
type TrackExtension struct {
	XuanhuanXianxia *XuanhuanXianxia `json:"xuanhuan_xianxia,omitempty"`
	GuyanGongdou    *GuyanGongdou    `json:"guyan_gongdou,omitempty"`
	XianyanDushi    *XianyanDushi    `json:"xianyan_dushi,omitempty"`
	KehuanMoshi     *KehuanMoshi     `json:"kehuan_moshi,omitempty"`
	XuanyiXingzhen  *XuanyiXingzhen  `json:"xuanyi_xingzhen,omitempty"`
}

// Active reports which genre variant is populated. When several are set it
// returns the first in declaration order.
func (t TrackExtension) Active() (string, bool) {
	switch {
	case t.XuanhuanXianxia != nil:
		return "xuanhuan_xianxia", true
	case t.GuyanGongdou != nil:
		return "guyan_gongdou", true
	case t.XianyanDushi != nil:
		return "xianyan_dushi", true
	case t.KehuanMoshi != nil:
		return "kehuan_moshi", true
	case t.XuanyiXingzhen != nil:
		return "xuanyi_xingzhen", true
	}
	return "", false
}

// Character is one character profile card, the unit of storage and editing.
// Every branch is always present; optionality lives in the leaves.
type Character struct {
	Standard             Standard             `json:"standard"`
	Metadata             Metadata             `json:"metadata"`
	CorePosition         CorePosition         `json:"core_position"`
	Identity             Identity             `json:"identity"`
	Appearance           Appearance           `json:"appearance"`
	Abilities            Abilities            `json:"abilities"`
	Psychology           Psychology           `json:"psychology"`
	BehaviorPattern      BehaviorPattern      `json:"behavior_pattern"`
	BackgroundHistory    BackgroundHistory    `json:"background_history"`
	PreferencesLifestyle PreferencesLifestyle `json:"preferences_lifestyle"`
	MotivationArc        MotivationArc        `json:"motivation_arc"`
	PlotBinding          PlotBinding          `json:"plot_binding"`
	RelationshipNetwork  RelationshipNetwork  `json:"relationship_network"`
	TrackExtension       TrackExtension       `json:"track_extension"`
}
