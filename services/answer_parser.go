package services

import (
	"ArGuide/models"
	"strings"
)

// UnknownFacilityName is the last-resort facility name when the RAG answer
// identifies nothing and the caller supplied no address.
const UnknownFacilityName = "Unknown Facility"

// unknownIndicators lists, per output language, the phrases a model uses when
// it cannot identify the facility. Matching is case-insensitive substring
// matching: models rarely emit the marker section with an exactly predictable
// phrase, so partial matches anywhere in the extracted name trigger fallback.
// Keeping the table language-keyed keeps additions reviewable for
// cross-language collisions.
var unknownIndicators = map[models.Language][]string{
	models.LanguageJapanese: {"不明", "わかりません", "分かりません", "特定できません", "該当なし"},
	models.LanguageEnglish:  {"unknown", "unspecified", "not identified", "unidentified", "cannot identify", "n/a"},
	models.LanguageChinese:  {"未知", "无法识别", "無法識別"},
	models.LanguageKorean:   {"알 수 없음", "알수없음", "미상"},
	models.LanguageSpanish:  {"desconocido", "desconocida", "no identificado"},
	models.LanguageFrench:   {"inconnu", "inconnue", "non identifié"},
	models.LanguageGerman:   {"unbekannt", "nicht identifiziert"},
	models.LanguageThai:     {"ไม่ทราบ", "ไม่สามารถระบุ"},
}

// isUnknownFacility reports whether the extracted facility name reads as an
// "I could not identify this" answer in any supported language.
func isUnknownFacility(name string) bool {
	lowered := strings.ToLower(name)
	for _, indicators := range unknownIndicators {
		for _, indicator := range indicators {
			if strings.Contains(lowered, strings.ToLower(indicator)) {
				return true
			}
		}
	}
	return false
}

func fallbackFacilityName(address string) string {
	if address == "" {
		return UnknownFacilityName
	}
	return address
}

// ParseRAGAnswer extracts the facility name and guide text from a raw
// retrieval answer using the section markers the retrieval query asked for.
// The model does not always comply, so every marker arrangement degrades to
// something usable:
//
//   - both markers, known name      -> (name, guide)
//   - both markers, unknown name    -> (address, guide)
//   - guide marker only             -> (address, guide)
//   - no markers                    -> (address, whole raw answer)
func ParseRAGAnswer(rawAnswer, fallbackAddress string) (string, string) {
	facilityName := ""
	nameIdx := strings.Index(rawAnswer, FacilityNameMarker)
	guideIdx := strings.Index(rawAnswer, GuideMarker)

	if nameIdx >= 0 {
		nameStart := nameIdx + len(FacilityNameMarker)
		nameEnd := len(rawAnswer)
		if guideIdx > nameIdx {
			nameEnd = guideIdx
		}
		facilityName = strings.TrimSpace(rawAnswer[nameStart:nameEnd])
	}

	guideText := ""
	if guideIdx >= 0 {
		guideStart := guideIdx + len(GuideMarker)
		guideEnd := len(rawAnswer)
		if nameIdx > guideIdx {
			guideEnd = nameIdx
		}
		guideText = strings.TrimSpace(rawAnswer[guideStart:guideEnd])
	}

	if guideText == "" && facilityName == "" {
		return fallbackFacilityName(fallbackAddress), strings.TrimSpace(rawAnswer)
	}
	if guideText == "" {
		guideText = strings.TrimSpace(rawAnswer)
	}
	if facilityName == "" || isUnknownFacility(facilityName) {
		return fallbackFacilityName(fallbackAddress), guideText
	}
	return facilityName, guideText
}
