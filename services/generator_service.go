package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mmcloughlin/geohash"
	openai "github.com/sashabaranov/go-openai"
)

// GeneratorService builds a tourist spots database for a region: Google
// Places text search for candidates, Wikipedia / official-site source
// collection, then an LLM description written from the collected facts only.
// It is an offline batch tool; the request pipeline only ever reads its
// output file.
type GeneratorService struct {
	PlacesAPIKey string
	ScrapService *ScrapService
	OpenAIClient *openai.Client
	Client       *http.Client
}

func NewGeneratorService(placesAPIKey, openAIKey string) *GeneratorService {
	return &GeneratorService{
		PlacesAPIKey: placesAPIKey,
		ScrapService: NewScrapService(),
		OpenAIClient: openai.NewClient(openAIKey),
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

const placesSearchURL = "https://places.googleapis.com/v1/places:searchText"

// GeneratedSpot is one entry of the output database file, in the exact shape
// the spot index loader reads back.
type GeneratedSpot struct {
	No          int     `json:"no"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Geohash     string  `json:"geohash"`

	websiteURL string
}

type spotDatabase struct {
	TouristSpots []GeneratedSpot `json:"tourist_spots"`
}

// FindSpots searches the region's tourist spots through the Places text
// search API. The API caps a single response at 20 results.
func (s *GeneratorService) FindSpots(ctx context.Context, region string, maxSpots int) ([]GeneratedSpot, error) {
	if maxSpots <= 0 || maxSpots > 20 {
		maxSpots = 20
	}

	payload := map[string]interface{}{
		"textQuery":      fmt.Sprintf("%s 観光スポット", region),
		"languageCode":   "ja",
		"maxResultCount": maxSpots,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, placesSearchURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating Places request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.PlacesAPIKey)
	req.Header.Set("X-Goog-FieldMask", "places.displayName,places.formattedAddress,places.location,places.websiteUri")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Places API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Places []struct {
			DisplayName struct {
				Text string `json:"text"`
			} `json:"displayName"`
			FormattedAddress string `json:"formattedAddress"`
			Location         struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"location"`
			WebsiteURI string `json:"websiteUri"`
		} `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing Places response: %w", err)
	}

	spots := make([]GeneratedSpot, 0, len(result.Places))
	for i, place := range result.Places {
		spots = append(spots, GeneratedSpot{
			No:         i + 1,
			Name:       place.DisplayName.Text,
			Latitude:   place.Location.Latitude,
			Longitude:  place.Location.Longitude,
			Address:    place.FormattedAddress,
			Geohash:    geohash.Encode(place.Location.Latitude, place.Location.Longitude),
			websiteURL: place.WebsiteURI,
		})
	}
	return spots, nil
}

// collectSources gathers whatever background text is available for a spot.
// Both sources are optional; a spot with no sources still gets a description
// from name and address alone.
func (s *GeneratorService) collectSources(ctx context.Context, spot GeneratedSpot) (history, features string) {
	extract, err := s.ScrapService.FetchWikipediaExtract(ctx, spot.Name)
	if err != nil {
		log.Printf("No Wikipedia extract for %s: %v\n", spot.Name, err)
	} else {
		history = extract
	}

	if spot.websiteURL != "" {
		text, err := s.ScrapService.FetchWebsiteText(ctx, spot.websiteURL)
		if err != nil {
			log.Printf("No official-site text for %s: %v\n", spot.Name, err)
		} else {
			features = text
		}
	}
	return history, features
}

const descriptionModel = openai.GPT4o

// GenerateDescription writes the spot's description from the collected data
// only, capped at 1000 characters.
func (s *GeneratorService) GenerateDescription(ctx context.Context, spot GeneratedSpot, history, features string) (string, error) {
	if history == "" {
		history = "データなし"
	}
	if features == "" {
		features = "データなし"
	}

	prompt := fmt.Sprintf(`あなたは観光情報の専門ライターです。以下の事実データのみを使用して、%sの説明文を950-1000字で作成してください。

【絶対厳守】
- 上限1000字。超過禁止。
- 提供されたデータにない情報は一切追加しない。
- 推測表現（〜と思われる、〜かもしれない）は使用禁止。

【使用可能なデータ】
名称: %s
住所: %s
位置: 緯度%f, 経度%f

歴史・背景:
%s

特徴:
%s

【出力】
説明文のみを出力してください。前置きや補足は不要です。`,
		spot.Name, spot.Name, spot.Address, spot.Latitude, spot.Longitude, history, features)

	resp, err := s.OpenAIClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: descriptionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error generating description for %s: %w", spot.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no description generated for %s", spot.Name)
	}

	description := resp.Choices[0].Message.Content
	if runes := []rune(description); len(runes) > 1000 {
		log.Printf("Description for %s exceeds 1000 chars (%d), trimming\n", spot.Name, len(runes))
		description = string(runes[:1000])
	}
	return description, nil
}

// GenerateDatabase runs the full pipeline for a region.
func (s *GeneratorService) GenerateDatabase(ctx context.Context, region string, maxSpots int) ([]GeneratedSpot, error) {
	spots, err := s.FindSpots(ctx, region, maxSpots)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d spots for %s\n", len(spots), region)

	for i := range spots {
		log.Printf("Collecting data for %s (%d/%d)\n", spots[i].Name, i+1, len(spots))
		history, features := s.collectSources(ctx, spots[i])

		description, err := s.GenerateDescription(ctx, spots[i], history, features)
		if err != nil {
			log.Println("Error generating description:", err)
			continue
		}
		spots[i].Description = description
	}
	return spots, nil
}

// WriteDatabase writes the generated spots as a file the spot index loader
// accepts.
func WriteDatabase(path string, spots []GeneratedSpot) error {
	data, err := json.MarshalIndent(spotDatabase{TouristSpots: spots}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
