package services

import (
	"ArGuide/models"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// Sakura AI Engine model selection for document chat.
const (
	ragEmbeddingModel = "multilingual-e5-large"
	ragChatModel      = "gpt-oss-120b"
)

// RAGService queries the retrieval-synthesis endpoint. Retrieval is expected
// to be fast, so the timeout is short. Every failure mode returns nil: the
// orchestrator treats a missing answer as a signal to fall back, never as an
// error to surface.
type RAGService struct {
	APIURL string
	Token  string
	Client *http.Client
}

func NewRAGService(apiURL, token string) *RAGService {
	return &RAGService{
		APIURL: apiURL,
		Token:  token,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type ragRequest struct {
	Model     string  `json:"model"`
	ChatModel string  `json:"chat_model"`
	Query     string  `json:"query"`
	TopK      int     `json:"top_k"`
	Threshold float64 `json:"threshold"`
}

// Query runs one retrieval-synthesis call and returns its answer, or nil on
// any transport failure, non-2xx status, timeout, or unparseable body.
func (s *RAGService) Query(ctx context.Context, query string, topK int, threshold float64) *models.RAGAnswer {
	payload := ragRequest{
		Model:     ragEmbeddingModel,
		ChatModel: ragChatModel,
		Query:     query,
		TopK:      topK,
		Threshold: threshold,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Println("Error marshaling RAG request:", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Println("Error creating RAG request:", err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Println("Error calling RAG endpoint:", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("RAG request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil
	}

	var answer models.RAGAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		log.Println("Error parsing RAG response:", err)
		return nil
	}

	return &answer
}
