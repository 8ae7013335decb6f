package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP
	Port int

	// Ethereum RPC
	EthRPCURL string

	// Twitter / X (imperatrona/twitter-scraper)
	TwitterUsername   string
	TwitterPassword   string
	TwitterAuthToken  string // auth_token cookie
	TwitterCSRFToken  string // ct0 cookie
	TwitterCookieFile string // persist sessions

	// AI image gateway (OpenAI-compatible chat completions)
	AIGatewayURL string
	AIGatewayKey string
	AIModel      string

	// Per-gateway call timeout
	GatewayTimeout time.Duration

	// Content analysis
	MaxPosts   int // posts fetched per handle
	KeywordCap int // matched keywords returned
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: envInt("PORT", 8787),

		EthRPCURL: envOr("ETH_RPC_URL", "https://eth.llamarpc.com"),

		TwitterUsername:   os.Getenv("TWITTER_USERNAME"),
		TwitterPassword:   os.Getenv("TWITTER_PASSWORD"),
		TwitterAuthToken:  os.Getenv("TWITTER_AUTH_TOKEN"),
		TwitterCSRFToken:  os.Getenv("TWITTER_CSRF_TOKEN"),
		TwitterCookieFile: envOr("TWITTER_COOKIE_FILE", "twitter_cookies.json"),

		AIGatewayURL: envOr("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey: os.Getenv("AI_GATEWAY_KEY"),
		AIModel:      envOr("AI_MODEL", "google/gemini-2.5-flash-image-preview"),

		GatewayTimeout: time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", 30)) * time.Second,

		MaxPosts:   envInt("MAX_POSTS", 100),
		KeywordCap: envInt("KEYWORD_CAP", 10),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.EthRPCURL == "" {
		return fmt.Errorf("ETH_RPC_URL must not be empty")
	}
	if c.KeywordCap <= 0 {
		return fmt.Errorf("KEYWORD_CAP must be positive, got %d", c.KeywordCap)
	}
	return nil
}

// HasTwitterAuth reports whether any scraper credentials are configured.
// Without them /fetch-twitter degrades to guest-level access.
func (c *Config) HasTwitterAuth() bool {
	return c.TwitterAuthToken != "" || c.TwitterUsername != ""
}

// helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
