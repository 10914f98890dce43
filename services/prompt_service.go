package services

import (
	"ArGuide/models"
	"fmt"
	"strings"
)

// Section markers the retrieval query instructs the model to emit. The answer
// parser locates these exact strings, so prompt and parser must agree.
const (
	FacilityNameMarker = "【施設名】"
	GuideMarker        = "【ガイド】"
)

// DefaultCaptionPrompt is used when the caller supplies no custom instruction.
const DefaultCaptionPrompt = "画像中のランドマークについて、3行程度で具体的に説明してください。"

// PromptService assembles the caption prompt and the retrieval query.
type PromptService struct{}

func NewPromptService() *PromptService {
	return &PromptService{}
}

// BuildCaptionPrompt prefixes the base caption instruction with the current
// address and, when available, a numbered list of nearby spot names.
func (s *PromptService) BuildCaptionPrompt(address string, nearbySpots []models.RankedSpot, basePrompt string) string {
	if basePrompt == "" {
		basePrompt = DefaultCaptionPrompt
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("あなたは現在「%s」にいます。\n", address))

	if len(nearbySpots) > 0 {
		prompt.WriteString("周辺には以下のスポットがあります:\n")
		for i, spot := range nearbySpots {
			prompt.WriteString(fmt.Sprintf("%d. %s\n", i+1, spot.Name))
		}
	}

	prompt.WriteString("\n")
	prompt.WriteString(basePrompt)
	return prompt.String()
}

// BuildRetrievalQuery assembles the RAG query: location, caption, the
// visitor profile when present, and the structured-output instruction the
// answer parser depends on.
func (s *PromptService) BuildRetrievalQuery(caption, address string, profile models.UserProfile) string {
	var query strings.Builder

	query.WriteString(fmt.Sprintf("現在地: %s\n", address))
	query.WriteString(fmt.Sprintf("写真の説明: %s\n", caption))

	if !profile.IsEmpty() {
		query.WriteString("\n訪問者プロフィール:\n")
		if profile.AgeGroup != "" {
			query.WriteString(fmt.Sprintf("- 年齢層: %s\n", profile.AgeGroup.PromptLabel()))
		}
		if profile.BudgetLevel != "" {
			query.WriteString(fmt.Sprintf("- 予算: %s\n", profile.BudgetLevel.PromptLabel()))
		}
		if profile.ActivityLevel != "" {
			query.WriteString(fmt.Sprintf("- 活動量: %s\n", profile.ActivityLevel.PromptLabel()))
		}
		if len(profile.Interests) > 0 {
			labels := make([]string, 0, len(profile.Interests))
			for _, interest := range profile.Interests {
				labels = append(labels, interest.PromptLabel())
			}
			query.WriteString(fmt.Sprintf("- 興味: %s\n", strings.Join(labels, ", ")))
		}
	}

	query.WriteString("\n上記の写真に写っている施設を特定し、訪問者向けの案内文を作成してください。\n")
	query.WriteString("回答は必ず次の2つのセクションに分けてください。\n")
	query.WriteString(fmt.Sprintf("%s に続けて施設の名称のみを書いてください。特定できない場合は「不明」と書いてください。\n", FacilityNameMarker))
	query.WriteString(fmt.Sprintf("%s に続けて案内文を書いてください。\n", GuideMarker))

	if language := profile.EffectiveLanguage(); language != models.DefaultLanguage {
		query.WriteString(fmt.Sprintf("\nPlease answer in %s.\n", language.PromptLabel()))
	}

	return query.String()
}
