// Package avatar generates a pixel-art PFP through an OpenAI-compatible
// AI gateway with image output.
package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/config"
)

// PromptContext carries the persona facts the avatar is drawn from. All
// fields are optional; defaults keep the prompt coherent.
type PromptContext struct {
	BlockchainScore int
	Keywords        []string
	Archetype       string
	MumbaiMode      string
}

type Gateway struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

func New(cfg *config.Config) *Gateway {
	return &Gateway{
		url:    cfg.AIGatewayURL,
		apiKey: cfg.AIGatewayKey,
		model:  cfg.AIModel,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Generate sends the persona prompt to the image gateway and returns the
// generated image URL (usually a data URL).
func (g *Gateway) Generate(ctx context.Context, pc PromptContext) (string, error) {
	if g.apiKey == "" {
		return "", apperr.New(apperr.KindUpstream, "AI gateway key is not configured")
	}

	reqBody := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildPrompt(pc)},
		},
		"modalities": []string{"image", "text"},
	}

	body, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", g.url, bytes.NewReader(body))
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "Failed to generate PFP", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "Failed to generate PFP", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", apperr.New(apperr.KindRateLimit, "Rate limit exceeded. Please try again later.")
	case http.StatusPaymentRequired:
		return "", apperr.New(apperr.KindQuota, "Please add credits to generate images.")
	default:
		log.Error().Int("status", resp.StatusCode).Str("body", truncate(string(respBody), 300)).Msg("AI gateway error")
		return "", apperr.New(apperr.KindUpstream, fmt.Sprintf("AI gateway error: %d", resp.StatusCode))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Images []struct {
					ImageURL struct {
						URL string `json:"url"`
					} `json:"image_url"`
				} `json:"images"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "Failed to generate PFP", err)
	}

	if len(result.Choices) == 0 || len(result.Choices[0].Message.Images) == 0 {
		return "", apperr.New(apperr.KindUpstream, "No image generated")
	}
	return result.Choices[0].Message.Images[0].ImageURL.URL, nil
}

// BuildPrompt renders the pixel-art prompt for a persona.
func BuildPrompt(pc PromptContext) string {
	score := pc.BlockchainScore
	if score == 0 {
		score = 50
	}
	archetype := pc.Archetype
	if archetype == "" {
		archetype = "Builder"
	}
	vibe := pc.MumbaiMode
	if vibe == "" {
		vibe = "Local"
	}
	keywords := "ethereum, web3"
	if len(pc.Keywords) > 0 {
		kws := pc.Keywords
		if len(kws) > 5 {
			kws = kws[:5]
		}
		keywords = strings.Join(kws, ", ")
	}

	return fmt.Sprintf(`Create a pixel art avatar for an Ethereum enthusiast. Style: retro 16-bit gaming aesthetic, vibrant colors.
Character traits based on blockchain score %d%%:
- Archetype: %s
- Vibe: %s
- Interests: %s

The avatar should be:
- Square format, centered character
- Bold pixel art style like classic game characters
- Include subtle crypto/blockchain elements (ethereum diamond, nodes, chains)
- Background should be dynamic with animated-looking patterns
- Colors: predominantly red and orange tones with accent colors
- Character should look confident and tech-savvy
- NO text, NO words, just the pixel art character`, score, archetype, vibe, keywords)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
