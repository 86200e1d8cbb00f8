// Package vibes classifies restaurants into a closed set of mood labels
// using the Gemini generateContent endpoint. The whole batch goes out in a
// single prompt, and every failure mode degrades to the unenriched input —
// enrichment can never fail a request.
package vibes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/vibedine/api-go/types"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Low temperature keeps the classification consistent between runs.
const temperature = 0.1

var promptTemplate = template.Must(template.New("vibes").Parse(`You are a restaurant vibe classifier for an Indian dining discovery app.

For each restaurant below, assign one or more vibes from this exact list: {{.VibeList}}.

Guidelines:
- "Date Night": Romantic, intimate, fine dining, upscale ambiance, candle-lit, scenic views
- "Party": Bars, nightlife, clubs, loud music, social drinking, lively atmosphere
- "Chill": Casual cafes, brunch spots, relaxed vibes, coffee shops, laid-back
- "Work": Cafes with WiFi, quiet spaces, co-working friendly, coffee shops
- A restaurant can have multiple vibes (e.g. a trendy bar could be both "Party" and "Date Night")
- Every restaurant must have at least one vibe

Restaurants:
{{.Restaurants}}

Respond ONLY with a valid JSON object mapping restaurant IDs to arrays of vibes.
Example: {"ChIJ123": ["Date Night", "Chill"], "ChIJ456": ["Party"]}
Do not include any other text, markdown, or code fences.`))

// restaurantSummary is the compact projection of a record sent to the model.
type restaurantSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	PriceLevel  string   `json:"priceLevel"`
	Description string   `json:"description"`
}

// Gemini generateContent wire shapes.
type generateRequest struct {
	Contents         []requestContent  `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Enricher wraps the Gemini REST API.
type Enricher struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewEnricher(apiKey, model string) *Enricher {
	return &Enricher{
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enrich attaches vibe labels to every restaurant in the batch. The input
// slice is returned unchanged when the credential is missing, the batch is
// empty, or anything in the call or response parsing fails.
func (e *Enricher) Enrich(ctx context.Context, restaurants []types.Restaurant) []types.Restaurant {
	if e.APIKey == "" {
		log.Printf("[vibes] GEMINI_API_KEY not set - skipping vibe enrichment")
		return restaurants
	}
	if len(restaurants) == 0 {
		return restaurants
	}

	prompt, err := buildPrompt(restaurants)
	if err != nil {
		log.Printf("[vibes] failed to build prompt: %v", err)
		return restaurants
	}

	text, err := e.generate(ctx, prompt)
	if err != nil {
		log.Printf("[vibes] Gemini enrichment failed: %v", err)
		return restaurants
	}

	vibeMap, err := parseVibeMap(text)
	if err != nil {
		log.Printf("[vibes] unusable Gemini response: %v", err)
		return restaurants
	}

	enriched := make([]types.Restaurant, len(restaurants))
	for i, r := range restaurants {
		r.Vibes = filterVibes(vibeMap[r.ID])
		enriched[i] = r
	}
	return enriched
}

func buildPrompt(restaurants []types.Restaurant) (string, error) {
	summaries := make([]restaurantSummary, len(restaurants))
	for i, r := range restaurants {
		description := r.Description
		if description == "" {
			description = "No description"
		}
		summaries[i] = restaurantSummary{
			ID:          r.ID,
			Name:        r.Name,
			Tags:        r.Tags,
			PriceLevel:  r.PriceLevel,
			Description: description,
		}
	}

	batch, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}

	labels := make([]string, len(types.Vibes))
	for i, v := range types.Vibes {
		labels[i] = string(v)
	}

	var buf bytes.Buffer
	err = promptTemplate.Execute(&buf, map[string]string{
		"VibeList":    strings.Join(labels, ", "),
		"Restaurants": string(batch),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Enricher) generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents:         []requestContent{{Parts: []requestPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: temperature},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", e.BaseURL, e.Model, e.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error: status %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("JSON decode error: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}

	var text strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// parseVibeMap validates the model's response against the expected schema:
// a single JSON object of place id → label list, optionally wrapped in a
// markdown code fence.
func parseVibeMap(text string) (map[string][]string, error) {
	clean := stripCodeFences(text)
	if clean == "" {
		return nil, errors.New("empty text")
	}

	var vibeMap map[string][]string
	if err := json.Unmarshal([]byte(clean), &vibeMap); err != nil {
		return nil, err
	}
	return vibeMap, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// filterVibes intersects the model's proposed labels with the allowed set.
// A record whose labels are all rejected keeps an empty list; no default
// vibe is forced.
func filterVibes(proposed []string) []types.Vibe {
	valid := make([]types.Vibe, 0, len(proposed))
	for _, label := range proposed {
		if types.ValidVibe(label) {
			valid = append(valid, types.Vibe(label))
		}
	}
	return valid
}
