// Package gemini asks a hosted Gemini model for a beauty analysis of a portrait.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/models"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

// ErrAnalysisFailed wraps every failure of Analyze. Callers should not need
// to tell causes apart.
var ErrAnalysisFailed = errors.New("analysis failed")

const prompt = "Analyze this person's facial features and provide professional beauty recommendations. " +
	"Return the analysis in JSON format focusing on face shape, skin tone, eye color, and specific product " +
	"recommendations from a high-end makeover line (Lipstick, Foundation, Eyeshadow). Be encouraging and professional."

type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error)
}

// ContentGenerator is the part of genai.Models the client uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type client struct {
	generator ContentGenerator
	model     string
	breaker   *gobreaker.CircuitBreaker[*models.AnalysisResult]
	validator *validator.Validate
}

func NewClient(ctx context.Context, cfg config.Gemini, breakerCfg config.Breaker) (Analyzer, error) {

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	genaiClient, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	return NewAnalyzer(genaiClient.Models, cfg.Model, breakerCfg), nil
}

func NewAnalyzer(generator ContentGenerator, model string, breakerCfg config.Breaker) Analyzer {
	maxFailures := breakerCfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}

	breaker := gobreaker.NewCircuitBreaker[*models.AnalysisResult](gobreaker.Settings{
		Name:    "gemini",
		Timeout: breakerCfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &client{
		generator: generator,
		model:     model,
		breaker:   breaker,
		validator: validator.New(),
	}
}

func (c *client) Analyze(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error) {

	result, err := c.breaker.Execute(func() (*models.AnalysisResult, error) {
		return c.analyze(ctx, image, mimeType)
	})
	if err != nil {
		if errors.Is(err, ErrAnalysisFailed) {
			return nil, err
		}

		// breaker rejected the call
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return result, nil
}

func (c *client) analyze(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error) {

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := c.generator.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %w", ErrAnalysisFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrAnalysisFailed)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrAnalysisFailed, err)
	}

	if err := c.validator.Struct(&result); err != nil {
		return nil, fmt.Errorf("%w: incomplete response: %w", ErrAnalysisFailed, err)
	}

	return &result, nil
}

func analysisSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"faceShape":   str(),
			"skinTone":    str(),
			"eyeColor":    str(),
			"styleAdvice": str(),
			"recommendations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"productName":     str(),
						"reason":          str(),
						"shadeSuggestion": str(),
					},
					Required: []string{"productName", "reason", "shadeSuggestion"},
				},
			},
		},
		Required: []string{"faceShape", "skinTone", "eyeColor", "recommendations", "styleAdvice"},
	}
}
