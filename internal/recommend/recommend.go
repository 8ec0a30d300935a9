// Package recommend suggests catalog items for a buyer based on their
// order history and vehicle, using the Gemini API.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/autodinar/autodinar/internal/catalog"
)

// ErrUnavailable is returned when no recommender is configured or the
// model call fails. Callers should degrade gracefully.
var ErrUnavailable = errors.New("recommendations unavailable")

// Recommender produces item names to suggest to a buyer.
type Recommender interface {
	Recommend(ctx context.Context, pastOrders []string, vehicleInfo string) ([]string, error)
}

// Gemini calls the Gemini API for recommendations, constrained to
// items that exist in the catalog.
type Gemini struct {
	client *genai.Client
	model  string
	cat    *catalog.Catalog
}

// NewGemini creates a Gemini recommender.
func NewGemini(ctx context.Context, apiKey, model string, cat *catalog.Catalog) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, cat: cat}, nil
}

// Recommend asks the model for up to five catalog item names relevant
// to the buyer.
func (g *Gemini) Recommend(ctx context.Context, pastOrders []string, vehicleInfo string) ([]string, error) {
	prompt := BuildPrompt(pastOrders, vehicleInfo, CatalogLines(g.cat))

	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	names, err := ParseNames(result.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return names, nil
}

// CatalogLines renders the catalog as "name (category, price)" lines
// for the prompt.
func CatalogLines(cat *catalog.Catalog) []string {
	if cat == nil {
		return nil
	}
	var lines []string
	for _, p := range cat.Products {
		lines = append(lines, fmt.Sprintf("%s (product, %s)", p.Name, p.Price))
	}
	for _, s := range cat.Services {
		lines = append(lines, fmt.Sprintf("%s (service, %s)", s.Name, s.Price))
	}
	return lines
}

// BuildPrompt assembles the recommendation prompt.
func BuildPrompt(pastOrders []string, vehicleInfo string, catalogLines []string) string {
	var b strings.Builder
	b.WriteString("You are a recommendation engine for an Algerian automotive parts marketplace.\n")
	b.WriteString("Suggest up to 5 items the buyer is likely to need next, chosen ONLY from the catalog below.\n")
	b.WriteString("Respond with a JSON array of exact item names.\n\n")

	if vehicleInfo != "" {
		b.WriteString("Buyer vehicle: ")
		b.WriteString(vehicleInfo)
		b.WriteString("\n")
	}
	if len(pastOrders) > 0 {
		b.WriteString("Past orders:\n")
		for _, o := range pastOrders {
			b.WriteString("- ")
			b.WriteString(o)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("The buyer has no past orders; suggest common maintenance items.\n")
	}

	b.WriteString("\nCatalog:\n")
	for _, line := range catalogLines {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// ParseNames decodes a model response into item names. Tolerates the
// array being wrapped in a markdown code fence.
func ParseNames(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}
	out := names[:0]
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}
