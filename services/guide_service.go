package services

import (
	"ArGuide/models"
	"context"
	"log"
	"time"
)

// Retrieval parameters for the facility lookup query.
const (
	ragTopK      = 3
	ragThreshold = 0.3
)

// GuideService sequences the request pipeline: nearby-spot lookup, caption
// generation, retrieval synthesis, answer parsing. SpotService and
// HistoryService are optional capabilities; nil means absent and the pipeline
// degrades accordingly (no nearby-spot context, no saved history).
type GuideService struct {
	SpotService    *SpotService
	PromptService  *PromptService
	VLMService     *VLMService
	RAGService     *RAGService
	HistoryService *HistoryService
	TopK           int
}

func NewGuideService(spotService *SpotService, vlmService *VLMService, ragService *RAGService, historyService *HistoryService, topK int) *GuideService {
	if topK <= 0 {
		topK = 5
	}
	return &GuideService{
		SpotService:    spotService,
		PromptService:  NewPromptService(),
		VLMService:     vlmService,
		RAGService:     ragService,
		HistoryService: historyService,
		TopK:           topK,
	}
}

func failedResult(message string) models.GuideResult {
	return models.GuideResult{
		Success:      false,
		ErrorMessage: message,
	}
}

// GenerateGuide runs one request through the pipeline.
//
// Captioning is the one step with no substitute: its failure (and missing
// configuration) are the only failures surfaced to the caller. Retrieval is
// best-effort: any failure there falls back to the raw caption as the
// description and the address as the name.
func (s *GuideService) GenerateGuide(ctx context.Context, req models.InferenceRequest) models.GuideResult {
	if s.VLMService == nil || s.VLMService.BaseURL == "" {
		return failedResult("VLM endpoint is not configured")
	}
	if s.RAGService == nil || s.RAGService.Token == "" {
		return failedResult("RAG API token is not configured")
	}

	var nearby []models.RankedSpot
	if s.SpotService != nil {
		nearby = s.SpotService.Nearest(req.Location.Latitude, req.Location.Longitude, s.TopK)
	}

	captionPrompt := s.PromptService.BuildCaptionPrompt(req.Address, nearby, req.CustomText)

	caption, err := s.VLMService.GenerateCaption(ctx, req.Image, req.ImageName, captionPrompt, req.Params)
	if err != nil {
		log.Println("Error generating caption:", err)
		return failedResult(err.Error())
	}

	// An explicit instruction from the caller means they want the caption
	// itself, not a facility guide.
	if req.CustomText != "" {
		result := models.GuideResult{
			Name:                fallbackFacilityName(req.Address),
			FacilityDescription: caption,
			Success:             true,
		}
		s.saveHistory(ctx, req, result)
		return result
	}

	query := s.PromptService.BuildRetrievalQuery(caption, req.Address, req.Profile)

	result := models.GuideResult{Success: true}
	answer := s.RAGService.Query(ctx, query, ragTopK, ragThreshold)
	if answer != nil && answer.Answer != "" {
		result.Name, result.FacilityDescription = ParseRAGAnswer(answer.Answer, req.Address)
	} else {
		result.Name = fallbackFacilityName(req.Address)
		result.FacilityDescription = caption
	}

	s.saveHistory(ctx, req, result)
	return result
}

// saveHistory records a successful result, best-effort.
func (s *GuideService) saveHistory(ctx context.Context, req models.InferenceRequest, result models.GuideResult) {
	if s.HistoryService == nil {
		return
	}
	entry := models.HistoryEntry{
		Name:        result.Name,
		Description: result.FacilityDescription,
		Address:     req.Address,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}
	if err := s.HistoryService.SaveHistory(ctx, entry); err != nil {
		log.Println("Error saving history entry:", err)
	}
}
