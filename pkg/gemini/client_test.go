package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const validAnalysis = `{
	"faceShape": "Oval",
	"skinTone": "Warm medium",
	"eyeColor": "Hazel",
	"styleAdvice": "Lean into soft rose and bronze tones.",
	"recommendations": [
		{"productName": "Nahida Bloom Lipstick", "reason": "Balances warm undertones", "shadeSuggestion": "Petal Mauve"}
	]
}`

type fakeGenerator struct {
	text     string
	err      error
	calls    atomic.Int32
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls.Add(1)
	f.model = model
	f.contents = contents
	f.config = config

	if f.err != nil {
		return nil, f.err
	}

	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

var breakerCfg = config.Breaker{MaxFailures: 3, OpenTimeout: time.Minute}

func TestAnalyze(t *testing.T) {
	ctx := t.Context()
	image := []byte("\xff\xd8\xff\xe0fake-jpeg")

	t.Run("Success - Parsed Result", func(t *testing.T) {
		// Arrange
		gen := &fakeGenerator{text: validAnalysis}
		analyzer := gemini.NewAnalyzer(gen, "gemini-test", breakerCfg)

		// Act
		result, err := analyzer.Analyze(ctx, image, "image/jpeg")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Oval", result.FaceShape)
		assert.Equal(t, "Hazel", result.EyeColor)
		require.Len(t, result.Recommendations, 1)
		assert.Equal(t, "Petal Mauve", result.Recommendations[0].ShadeSuggestion)

		assert.Equal(t, "gemini-test", gen.model)
		assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
		require.NotNil(t, gen.config.ResponseSchema)
		assert.ElementsMatch(t, []string{"faceShape", "skinTone", "eyeColor", "recommendations", "styleAdvice"}, gen.config.ResponseSchema.Required)

		require.Len(t, gen.contents, 1)
		parts := gen.contents[0].Parts
		require.Len(t, parts, 2)
		require.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
		assert.Equal(t, image, parts[0].InlineData.Data)
		assert.Contains(t, parts[1].Text, "beauty recommendations")
	})

	failures := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "Network Error", gen: &fakeGenerator{err: errors.New("connection refused")}},
		{name: "Empty Response", gen: &fakeGenerator{text: "  "}},
		{name: "Not JSON", gen: &fakeGenerator{text: "I think you look lovely!"}},
		{name: "Missing Required Field", gen: &fakeGenerator{text: `{"faceShape":"Oval","skinTone":"Warm","eyeColor":"Brown","recommendations":[]}`}},
		{name: "Incomplete Recommendation", gen: &fakeGenerator{text: `{"faceShape":"Oval","skinTone":"Warm","eyeColor":"Brown","styleAdvice":"x","recommendations":[{"productName":"Blush"}]}`}},
	}

	for _, tc := range failures {
		t.Run("Failure - "+tc.name, func(t *testing.T) {
			analyzer := gemini.NewAnalyzer(tc.gen, "gemini-test", breakerCfg)

			result, err := analyzer.Analyze(ctx, image, "image/jpeg")

			assert.Nil(t, result)
			require.Error(t, err)
			assert.ErrorIs(t, err, gemini.ErrAnalysisFailed)
			assert.Equal(t, int32(1), tc.gen.calls.Load(), "no automatic retries")
		})
	}
}

func TestAnalyze_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ctx := t.Context()
	gen := &fakeGenerator{err: errors.New("503 unavailable")}
	analyzer := gemini.NewAnalyzer(gen, "gemini-test", config.Breaker{MaxFailures: 2, OpenTimeout: time.Minute})

	for range 2 {
		_, err := analyzer.Analyze(ctx, []byte("img"), "image/png")
		require.ErrorIs(t, err, gemini.ErrAnalysisFailed)
	}

	// open: the model is not called again
	_, err := analyzer.Analyze(ctx, []byte("img"), "image/png")

	require.ErrorIs(t, err, gemini.ErrAnalysisFailed)
	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestNewClient_AgainstTestServer(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": validAnalysis}},
					},
				},
			},
		})
	}))
	defer server.Close()

	analyzer, err := gemini.NewClient(t.Context(), config.Gemini{
		APIKey:  "test-key",
		BaseURL: server.URL + "/",
		Model:   "gemini-test",
	}, breakerCfg)
	require.NoError(t, err)

	result, err := analyzer.Analyze(t.Context(), []byte("\x89PNG\r\n\x1a\n"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "Warm medium", result.SkinTone)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-test:generateContent"), "unexpected path %s", gotPath)
}
