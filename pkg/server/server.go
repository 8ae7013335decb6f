// Package server exposes the Maxi Checker HTTP API and embedded frontend.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/avatar"
	"github.com/maxi-checker/pkg/config"
	"github.com/maxi-checker/pkg/content"
	"github.com/maxi-checker/pkg/persona"
	"github.com/maxi-checker/pkg/social"
	"github.com/maxi-checker/pkg/wallet"
)

// Gateways are consumed through interfaces so handlers can be exercised
// with stubs.
type WalletGateway interface {
	Fetch(ctx context.Context, address string) (persona.Telemetry, error)
	MintParams(ctx context.Context, address string) (*wallet.MintTx, error)
}

type SocialGateway interface {
	Fetch(ctx context.Context, handle string) (*social.Profile, []content.Post, error)
}

type AvatarGateway interface {
	Generate(ctx context.Context, pc avatar.PromptContext) (string, error)
}

type Server struct {
	cfg     *config.Config
	wallets WalletGateway
	socials SocialGateway
	avatars AvatarGateway
}

func New(cfg *config.Config, wallets WalletGateway, socials SocialGateway, avatars AvatarGateway) *Server {
	return &Server{cfg: cfg, wallets: wallets, socials: socials, avatars: avatars}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/check-wallet", cors(s.handleCheckWallet))
	mux.HandleFunc("/fetch-twitter", cors(s.handleFetchTwitter))
	mux.HandleFunc("/generate-pfp", cors(s.handleGeneratePFP))
	mux.HandleFunc("/mint-persona", cors(s.handleMintPersona))
	mux.HandleFunc("/api/health", cors(s.handleHealth))

	mux.HandleFunc("/", s.serveFrontend)
	return mux
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Str("addr", srv.Addr).Msg("🌐 server started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func cors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, X-Client-Info, Apikey, Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	writeJSON(w, apperr.HTTPStatus(err), map[string]string{
		"error": apperr.UserMessage(err, fallback),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

// ── POST /check-wallet ──────────────────────────────────────

type checkWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
	XHandle       string `json:"xHandle"`
}

type checkWalletResponse struct {
	Wallet string `json:"wallet"`
	Score  int    `json:"score"`
	persona.Persona
	OGEnergy string  `json:"ogEnergy"`
	Flavor   *string `json:"flavor"`
}

func (s *Server) handleCheckWallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}

	var req checkWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WalletAddress == "" {
		writeJSON(w, 400, map[string]string{"error": "Wallet address required"})
		return
	}

	telemetry, err := s.wallets.Fetch(r.Context(), req.WalletAddress)
	if err != nil {
		log.Error().Err(err).Str("wallet", req.WalletAddress).Msg("wallet analysis failed")
		writeError(w, err, "Failed to analyze wallet")
		return
	}

	score := persona.CalculateScore(telemetry)
	resp := checkWalletResponse{
		Wallet:   req.WalletAddress,
		Score:    score,
		Persona:  persona.MapPersona(score),
		OGEnergy: fmt.Sprintf("%d%%", score),
	}
	if req.XHandle != "" {
		flavor := "@" + req.XHandle
		resp.Flavor = &flavor
	}

	log.Info().Str("wallet", req.WalletAddress).Int("score", score).Str("archetype", resp.Archetype).Msg("🔮 persona ready")
	writeJSON(w, 200, resp)
}

// ── POST /fetch-twitter ─────────────────────────────────────

type fetchTwitterRequest struct {
	Username string `json:"username"`
}

type fetchTwitterResponse struct {
	User       *social.Profile  `json:"user"`
	Blockchain content.Analysis `json:"blockchain"`
	Tweets     []content.Post   `json:"tweets"`
}

func (s *Server) handleFetchTwitter(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}

	var req fetchTwitterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeJSON(w, 400, map[string]string{"error": "Username required"})
		return
	}

	profile, posts, err := s.socials.Fetch(r.Context(), req.Username)
	if err != nil && !errors.Is(err, social.ErrPrivateAccount) {
		log.Error().Err(err).Str("handle", req.Username).Msg("twitter fetch failed")
		writeError(w, err, "Failed to fetch Twitter data")
		return
	}

	// Private accounts still get a profile; analysis runs over zero posts.
	analysis := content.Analyze(posts, content.DefaultVocabulary, s.cfg.KeywordCap)

	if posts == nil {
		posts = []content.Post{}
	}
	writeJSON(w, 200, fetchTwitterResponse{
		User:       profile,
		Blockchain: analysis,
		Tweets:     posts,
	})
}

// ── POST /generate-pfp ──────────────────────────────────────

type generatePFPRequest struct {
	BlockchainScore int      `json:"blockchainScore"`
	Keywords        []string `json:"keywords"`
	EthArchetype    string   `json:"ethArchetype"`
	MumbaiMode      string   `json:"mumbaiMode"`
	XHandle         string   `json:"xHandle"`
}

func (s *Server) handleGeneratePFP(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}

	var req generatePFPRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // all fields optional

	imageURL, err := s.avatars.Generate(r.Context(), avatar.PromptContext{
		BlockchainScore: req.BlockchainScore,
		Keywords:        req.Keywords,
		Archetype:       req.EthArchetype,
		MumbaiMode:      req.MumbaiMode,
	})
	if err != nil {
		log.Error().Err(err).Str("handle", req.XHandle).Msg("pfp generation failed")
		writeError(w, err, "Failed to generate PFP")
		return
	}

	writeJSON(w, 200, map[string]string{
		"imageUrl": imageURL,
		"message":  "Pixel art PFP generated successfully!",
	})
}

// ── POST /mint-persona ──────────────────────────────────────
// Placeholder mint: the backend prepares an unsigned zero-value
// self-transaction; the browser wallet signs and broadcasts it.

type mintPersonaRequest struct {
	WalletAddress string `json:"walletAddress"`
}

func (s *Server) handleMintPersona(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}

	var req mintPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WalletAddress == "" {
		writeJSON(w, 400, map[string]string{"error": "Wallet address required"})
		return
	}

	tx, err := s.wallets.MintParams(r.Context(), req.WalletAddress)
	if err != nil {
		log.Error().Err(err).Str("wallet", req.WalletAddress).Msg("mint preparation failed")
		writeError(w, err, "Failed to prepare mint transaction")
		return
	}

	writeJSON(w, 200, map[string]interface{}{
		"tx":      tx,
		"message": "Sign this transaction in your wallet to mint your persona.",
	})
}
