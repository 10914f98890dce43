package services

import (
	"ArGuide/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// VLMService calls the vision-language inference endpoint. Image inference is
// slow, so the client timeout is long. There is no retry; a failed call
// fails the whole request.
type VLMService struct {
	BaseURL string
	Client  *http.Client
}

func NewVLMService(baseURL string) *VLMService {
	return &VLMService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 300 * time.Second},
	}
}

// GenerateCaption sends the image and prompt to the inference endpoint and
// returns the generated caption.
func (s *VLMService) GenerateCaption(ctx context.Context, image []byte, imageName, prompt string, params models.GenerationParams) (string, error) {
	if imageName == "" {
		imageName = "image.jpg"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", imageName)
	if err != nil {
		return "", fmt.Errorf("error building multipart body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("error writing image data: %w", err)
	}

	fields := map[string]string{
		"text":               prompt,
		"temperature":        strconv.FormatFloat(params.Temperature, 'f', -1, 64),
		"top_p":              strconv.FormatFloat(params.TopP, 'f', -1, 64),
		"max_new_tokens":     strconv.Itoa(params.MaxNewTokens),
		"repetition_penalty": strconv.FormatFloat(params.RepetitionPenalty, 'f', -1, 64),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", fmt.Errorf("error writing form field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("error closing multipart body: %w", err)
	}

	url := strings.TrimSuffix(s.BaseURL, "/") + "/inference"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("error creating inference request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("inference request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result models.VLMResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("error parsing inference response: %w", err)
	}
	if !result.Success {
		return "", fmt.Errorf("inference failed: %s", result.ErrorMessage)
	}

	return result.GeneratedText, nil
}
