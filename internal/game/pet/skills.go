package pet

import "fmt"

// SkillDef is the static definition of a pet training skill. Skills grant
// flat stat bonuses on top of observed stats and unlock in three stages as
// the pet levels.
type SkillDef struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Stage       int     `yaml:"stage" json:"stage"`
	UnlockLevel int     `yaml:"unlock_level" json:"unlockLevel"`
	TargetStat  StatKey `yaml:"target_stat" json:"targetStat"`
	MinValue    int     `yaml:"min_value" json:"minValue"`
	MaxValue    int     `yaml:"max_value" json:"maxValue"`
}

// SelectedSkill is one skill pick with its rolled bonus value.
type SelectedSkill struct {
	SkillID string `json:"skillId"`
	Value   int    `json:"value"`
}

func stageSkills(stage, unlockLevel, maxValue int, prefix, namePrefix string) []SkillDef {
	return []SkillDef{
		{ID: prefix + "_energy", Name: namePrefix + " Energy", Stage: stage, UnlockLevel: unlockLevel, TargetStat: StatHP, MinValue: 1, MaxValue: maxValue},
		{ID: prefix + "_loyalty", Name: namePrefix + " Loyalty", Stage: stage, UnlockLevel: unlockLevel, TargetStat: StatLoyalty, MinValue: 1, MaxValue: maxValue},
		{ID: prefix + "_focus", Name: namePrefix + " Focus", Stage: stage, UnlockLevel: unlockLevel, TargetStat: StatAggressiveness, MinValue: 1, MaxValue: maxValue},
		{ID: prefix + "_toughness", Name: namePrefix + " Toughness", Stage: stage, UnlockLevel: unlockLevel, TargetStat: StatEndurance, MinValue: 1, MaxValue: maxValue},
		{ID: prefix + "_speed", Name: namePrefix + " Swiftness", Stage: stage, UnlockLevel: unlockLevel, TargetStat: StatSpeed, MinValue: 1, MaxValue: maxValue},
	}
}

// Skills is the full training-skill table: one skill per stat per stage,
// stages unlocking at levels 5, 10, and 15.
var Skills = func() []SkillDef {
	var all []SkillDef
	all = append(all, stageSkills(1, 5, 3, "novice", "Novice")...)
	all = append(all, stageSkills(2, 10, 4, "beginner", "Beginner")...)
	all = append(all, stageSkills(3, 15, 5, "improved", "Improved")...)
	return all
}()

// AvailableSkills returns every skill unlocked at or below level.
func AvailableSkills(level int) []SkillDef {
	var out []SkillDef
	for _, s := range Skills {
		if level >= s.UnlockLevel {
			out = append(out, s)
		}
	}
	return out
}

// SkillByID returns the skill definition for id.
func SkillByID(id string) (SkillDef, bool) {
	for _, s := range Skills {
		if s.ID == id {
			return s, true
		}
	}
	return SkillDef{}, false
}

// SkillBonus sums the per-stat bonuses of a skill selection. Unknown skill
// ids contribute nothing; use ValidateSkillSelection to surface them.
func SkillBonus(selected []SelectedSkill) StatSet {
	var bonus StatSet
	for _, sel := range selected {
		skill, ok := SkillByID(sel.SkillID)
		if !ok {
			continue
		}
		bonus = bonus.WithValue(skill.TargetStat, bonus.Value(skill.TargetStat)+float64(sel.Value))
	}
	return bonus
}

// ValidateSkillSelection checks a skill selection against the pet's level
// and each skill's value range, returning one message per violation.
func ValidateSkillSelection(selected []SelectedSkill, petLevel int) []string {
	var errs []string
	for _, sel := range selected {
		skill, ok := SkillByID(sel.SkillID)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown skill id %q", sel.SkillID))
			continue
		}
		if petLevel < skill.UnlockLevel {
			errs = append(errs, fmt.Sprintf("skill %s unlocks at level %d", skill.Name, skill.UnlockLevel))
			continue
		}
		if sel.Value < skill.MinValue || sel.Value > skill.MaxValue {
			errs = append(errs, fmt.Sprintf("skill %s value must be between %d and %d, got %d", skill.Name, skill.MinValue, skill.MaxValue, sel.Value))
		}
	}
	return errs
}
