package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/errs"
	"github.com/mpaterson/souschef/internal/model"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// AIService is the optional generative-AI collaborator. Its output is
// advisory only: nothing it produces constrains the recipe search query.
// Without an API key every call reports errs.ErrUnavailable.
type AIService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewAIService creates the service. An empty apiKey leaves it disabled
// rather than failing startup; the assistant works fine without it.
func NewAIService(apiKey, apiURL string, logger *zap.Logger) *AIService {
	if apiURL == "" {
		apiURL = defaultGeminiURL
	}
	return &AIService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Enabled reports whether an API key is configured.
func (s *AIService) Enabled() bool {
	return s.apiKey != ""
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// RecipeAnalysis is the advisory analysis of a recipe request.
type RecipeAnalysis struct {
	SuggestedCuisine       string   `json:"suggestedCuisine"`
	DietaryInfo            []string `json:"dietaryInfo"`
	CookingDifficulty      string   `json:"cookingDifficulty"`
	EstimatedTime          int      `json:"estimatedTime"`
	SuggestedModifications []string `json:"suggestedModifications,omitempty"`
}

// AnalyzeRecipeRequest asks the model for cuisine, dietary and difficulty
// hints for the user's request in the context of their pantry.
func (s *AIService) AnalyzeRecipeRequest(ctx context.Context, prompt string, ingredients, dietaryPreferences []string) (*RecipeAnalysis, error) {
	if !s.Enabled() {
		return nil, errs.ErrUnavailable
	}

	p := fmt.Sprintf(`As a culinary AI assistant, analyze this recipe request:
User Request: %q
Available Ingredients: %s
Dietary Preferences: %s

Respond only with JSON with fields:
- suggestedCuisine (string)
- dietaryInfo (array of dietary considerations)
- cookingDifficulty (easy/medium/hard)
- estimatedTime (minutes, number)
- suggestedModifications (array of possible modifications based on ingredients)`,
		prompt, strings.Join(ingredients, ", "), strings.Join(dietaryPreferences, ", "))

	text, err := s.generate(ctx, p)
	if err != nil {
		return nil, err
	}

	var analysis RecipeAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &analysis); err != nil {
		return nil, fmt.Errorf("%w: parse analysis: %v", errs.ErrUpstream, err)
	}
	return &analysis, nil
}

// EnhanceInstructions rewrites a recipe's steps for the given skill level.
// The original steps are returned untouched on any failure so the caller can
// degrade gracefully.
func (s *AIService) EnhanceInstructions(ctx context.Context, detail model.RecipeDetail, skillLevel string) ([]string, error) {
	if !s.Enabled() {
		return nil, errs.ErrUnavailable
	}

	steps, err := json.Marshal(detail.Instructions)
	if err != nil {
		return nil, fmt.Errorf("marshal instructions: %w", err)
	}

	p := fmt.Sprintf(`As a culinary instructor, enhance these recipe instructions for a %s cook:
Recipe: %s
Original Instructions: %s

Provide detailed, step-by-step instructions with cooking tips and explanations.
Respond only with a JSON array of strings, each string being one step.`,
		skillLevel, detail.Title, steps)

	text, err := s.generate(ctx, p)
	if err != nil {
		return nil, err
	}

	var enhanced []string
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &enhanced); err != nil {
		return nil, fmt.Errorf("%w: parse instructions: %v", errs.ErrUpstream, err)
	}
	return enhanced, nil
}

// generate posts one prompt and returns the first candidate's text.
func (s *AIService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Warn("gemini request failed", zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return "", fmt.Errorf("%w: status %d", errs.ErrUpstream, resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decode: %v", errs.ErrUpstream, err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", errs.ErrUpstream)
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFence removes a ```json ... ``` wrapper the model sometimes adds.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
