package models

import "fmt"

// The profile attributes are closed sets. Anything outside them is rejected at
// bind time instead of being silently dropped into a prompt.

type AgeGroup string

const (
	AgeGroupTwenties AgeGroup = "20s"
	AgeGroupThirties AgeGroup = "30-40s"
	AgeGroupFifties  AgeGroup = "50s+"
	AgeGroupFamily   AgeGroup = "family_with_kids"
)

var ageGroupLabels = map[AgeGroup]string{
	AgeGroupTwenties: "20s",
	AgeGroupThirties: "30s-40s",
	AgeGroupFifties:  "50s and above",
	AgeGroupFamily:   "family with kids",
}

func ParseAgeGroup(value string) (AgeGroup, error) {
	g := AgeGroup(value)
	if _, ok := ageGroupLabels[g]; !ok {
		return "", fmt.Errorf("invalid age group: %q", value)
	}
	return g, nil
}

func (g AgeGroup) PromptLabel() string { return ageGroupLabels[g] }

type BudgetLevel string

const (
	BudgetLevelBudget   BudgetLevel = "budget"
	BudgetLevelMidRange BudgetLevel = "mid-range"
	BudgetLevelLuxury   BudgetLevel = "luxury"
)

var budgetLevelLabels = map[BudgetLevel]string{
	BudgetLevelBudget:   "budget-conscious",
	BudgetLevelMidRange: "mid-range",
	BudgetLevelLuxury:   "luxury",
}

func ParseBudgetLevel(value string) (BudgetLevel, error) {
	b := BudgetLevel(value)
	if _, ok := budgetLevelLabels[b]; !ok {
		return "", fmt.Errorf("invalid budget level: %q", value)
	}
	return b, nil
}

func (b BudgetLevel) PromptLabel() string { return budgetLevelLabels[b] }

type ActivityLevel string

const (
	ActivityLevelActive   ActivityLevel = "active"
	ActivityLevelModerate ActivityLevel = "moderate"
	ActivityLevelRelaxed  ActivityLevel = "relaxed"
)

var activityLevelLabels = map[ActivityLevel]string{
	ActivityLevelActive:   "active",
	ActivityLevelModerate: "moderate",
	ActivityLevelRelaxed:  "relaxed",
}

func ParseActivityLevel(value string) (ActivityLevel, error) {
	a := ActivityLevel(value)
	if _, ok := activityLevelLabels[a]; !ok {
		return "", fmt.Errorf("invalid activity level: %q", value)
	}
	return a, nil
}

func (a ActivityLevel) PromptLabel() string { return activityLevelLabels[a] }

type Interest string

const (
	InterestHistory    Interest = "history"
	InterestFinance    Interest = "finance"
	InterestTechnology Interest = "technology"
	InterestScience    Interest = "science"
	InterestArt        Interest = "art"
	InterestSports     Interest = "sports"
	InterestMusic      Interest = "music"
	InterestTravel     Interest = "travel"
	InterestFood       Interest = "food"
	InterestNature     Interest = "nature"
)

var interestLabels = map[Interest]string{
	InterestHistory:    "history",
	InterestFinance:    "finance",
	InterestTechnology: "technology",
	InterestScience:    "science",
	InterestArt:        "art",
	InterestSports:     "sports",
	InterestMusic:      "music",
	InterestTravel:     "travel",
	InterestFood:       "food",
	InterestNature:     "nature",
}

func ParseInterest(value string) (Interest, error) {
	i := Interest(value)
	if _, ok := interestLabels[i]; !ok {
		return "", fmt.Errorf("invalid interest: %q", value)
	}
	return i, nil
}

func (i Interest) PromptLabel() string { return interestLabels[i] }

type Language string

const (
	LanguageJapanese Language = "japanese"
	LanguageEnglish  Language = "english"
	LanguageChinese  Language = "chinese"
	LanguageKorean   Language = "korean"
	LanguageSpanish  Language = "spanish"
	LanguageFrench   Language = "french"
	LanguageGerman   Language = "german"
	LanguageThai     Language = "thai"
)

// DefaultLanguage is the language prompts are written in when the caller does
// not ask for another one.
const DefaultLanguage = LanguageJapanese

var languageLabels = map[Language]string{
	LanguageJapanese: "Japanese",
	LanguageEnglish:  "English",
	LanguageChinese:  "Chinese",
	LanguageKorean:   "Korean",
	LanguageSpanish:  "Spanish",
	LanguageFrench:   "French",
	LanguageGerman:   "German",
	LanguageThai:     "Thai",
}

func ParseLanguage(value string) (Language, error) {
	l := Language(value)
	if _, ok := languageLabels[l]; !ok {
		return "", fmt.Errorf("invalid language: %q", value)
	}
	return l, nil
}

func (l Language) PromptLabel() string { return languageLabels[l] }

// UserProfile carries the optional visitor attributes injected into the
// retrieval query. Only Language affects control flow (output language
// instruction); everything else is advisory prompt text.
type UserProfile struct {
	AgeGroup      AgeGroup      `json:"age_group,omitempty"`
	BudgetLevel   BudgetLevel   `json:"budget_level,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
	Interests     []Interest    `json:"interests,omitempty"`
	Language      Language      `json:"language,omitempty"`
}

// IsEmpty reports whether no advisory attribute is set. Language alone does
// not make a profile non-empty.
func (p UserProfile) IsEmpty() bool {
	return p.AgeGroup == "" && p.BudgetLevel == "" && p.ActivityLevel == "" && len(p.Interests) == 0
}

// EffectiveLanguage returns the requested language or the default.
func (p UserProfile) EffectiveLanguage() Language {
	if p.Language == "" {
		return DefaultLanguage
	}
	return p.Language
}
