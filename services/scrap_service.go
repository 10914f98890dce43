package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// ScrapService collects source material about a spot for the description
// generator: Wikipedia extracts over plain HTTP, official-site text through a
// headless browser (official sites are frequently script-rendered).
type ScrapService struct {
	Client *http.Client
}

func NewScrapService() *ScrapService {
	return &ScrapService{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

const wikipediaBaseURL = "https://ja.wikipedia.org/wiki/"

// maxSourceParagraphs caps how much text a single source contributes.
const maxSourceParagraphs = 6

// FetchWikipediaExtract returns the lead paragraphs of the Japanese Wikipedia
// article for the given title, or an error when the article does not exist.
func (s *ScrapService) FetchWikipediaExtract(ctx context.Context, title string) (string, error) {
	pageURL := wikipediaBaseURL + url.PathEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating Wikipedia request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching Wikipedia page %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Wikipedia request for %s failed with status %d", title, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error parsing Wikipedia page: %w", err)
	}

	var paragraphs []string
	doc.Find("#mw-content-text .mw-parser-output > p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxSourceParagraphs
	})

	if len(paragraphs) == 0 {
		return "", fmt.Errorf("no extract found for %s", title)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// FetchWebsiteText loads an official site in a headless browser and returns
// its visible paragraph text.
func (s *ScrapService) FetchWebsiteText(parent context.Context, pageURL string) (string, error) {
	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	var pageHTML string
	log.Printf("Navigating to official site: %s\n", pageURL)
	err := chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(2*time.Second),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.OuterHTML("body", &pageHTML),
	)
	if err != nil {
		return "", fmt.Errorf("error loading page %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("error parsing page HTML: %w", err)
	}
	doc.Find("script, style, nav, header, footer").Remove()

	var paragraphs []string
	doc.Find("p, h1, h2, h3").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= 20 {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxSourceParagraphs
	})

	if len(paragraphs) == 0 {
		return "", fmt.Errorf("no usable text found at %s", pageURL)
	}
	return strings.Join(paragraphs, "\n"), nil
}
