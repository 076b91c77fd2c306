package openrouter

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/veridis/sfdr-engine/engine"
	"github.com/veridis/sfdr-engine/errors"
)

const classifierSystemPrompt = `You are an SFDR regulatory classification expert. Classify financial product disclosures into SFDR Article 6, Article 8, or Article 9.

Article 6: products that do not promote environmental or social characteristics.
Article 8: products that promote environmental or social characteristics.
Article 9: products with sustainable investment as their objective.

Respond with a single JSON object and nothing else:
{"classification": "Article 6"|"Article 8"|"Article 9", "confidence": 0.0-1.0, "reasoning": "...", "key_indicators": ["..."], "sustainability_score": 0.0-1.0}`

// Classifier adapts the OpenRouter chat API to the engine's model
// classifier interface.
type Classifier struct {
	client *Client
}

// NewClassifier wraps a client as a model classifier
func NewClassifier(client *Client) *Classifier {
	return &Classifier{client: client}
}

// modelVerdict is the JSON shape the model is prompted to return
type modelVerdict struct {
	Classification      string   `json:"classification"`
	Confidence          float64  `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
	KeyIndicators       []string `json:"key_indicators"`
	SustainabilityScore float64  `json:"sustainability_score"`
}

// Classify sends the document to the remote model and parses its
// verdict into a strategy result.
func (c *Classifier) Classify(ctx context.Context, text string, features engine.FeatureSet) (*engine.StrategyResult, error) {
	prompt := buildUserPrompt(text, features)

	resp, err := c.client.Chat(ctx, ChatRequest{
		SystemPrompt: classifierSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "remote classification failed")
	}

	verdict, err := parseVerdict(resp.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse model verdict")
	}

	category, err := engine.ParseCategory(verdict.Classification)
	if err != nil {
		return nil, err
	}

	indicators := verdict.KeyIndicators
	if len(indicators) > 5 {
		indicators = indicators[:5]
	}
	if indicators == nil {
		indicators = []string{}
	}

	return &engine.StrategyResult{
		Category:            category,
		Confidence:          clamp(verdict.Confidence, 0, 0.95),
		Reasoning:           verdict.Reasoning,
		KeyIndicators:       indicators,
		SustainabilityScore: clamp(verdict.SustainabilityScore, 0, 1),
		Method:              engine.MethodRemote,
	}, nil
}

func buildUserPrompt(text string, features engine.FeatureSet) string {
	var b strings.Builder
	b.WriteString("Classify the following financial product disclosure.\n\n")
	if len(features) > 0 {
		b.WriteString("Detected sustainability terms: ")
		b.WriteString(strings.Join(features, ", "))
		b.WriteString("\n\n")
	}
	b.WriteString("Document:\n")
	b.WriteString(text)
	return b.String()
}

// parseVerdict extracts the JSON object from the model reply. Models
// wrap JSON in code fences or prose often enough that strict
// unmarshaling alone is not workable.
func parseVerdict(content string) (*modelVerdict, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, errors.Newf("no JSON object in model reply: %q", truncate(content, 200))
	}

	var verdict modelVerdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
		return nil, errors.Wrap(err, "malformed JSON in model reply")
	}
	if verdict.Classification == "" {
		return nil, errors.New("model reply missing classification")
	}
	return &verdict, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
