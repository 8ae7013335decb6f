package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maxi-checker/pkg/avatar"
	"github.com/maxi-checker/pkg/config"
	"github.com/maxi-checker/pkg/server"
	"github.com/maxi-checker/pkg/social"
	"github.com/maxi-checker/pkg/wallet"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	log.Info().Msg("🔥 Maxi Checker starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	wallets, err := wallet.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ethereum rpc init failed")
	}
	defer wallets.Close()

	socials := social.New(cfg)
	avatars := avatar.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigCh; log.Info().Msg("shutting down..."); cancel() }()

	printSummary(cfg)

	srv := server.New(cfg, wallets, socials, avatars)
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
	}
	log.Info().Msg("goodbye 👋")
}

func printSummary(cfg *config.Config) {
	bold := color.New(color.FgHiWhite, color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	fmt.Println("\n" + strings.Repeat("═", 60))
	bold.Println("  🔥 MAXI CHECKER - RUNNING")
	fmt.Println(strings.Repeat("═", 60))
	fmt.Printf("  Frontend:  http://localhost:%d\n", cfg.Port)
	fmt.Printf("  ETH RPC:   %s\n", cfg.EthRPCURL)
	if cfg.HasTwitterAuth() {
		ok.Println("  Twitter:   ✅ authenticated scraper")
	} else {
		warn.Println("  Twitter:   ⚠️ guest mode (set TWITTER_AUTH_TOKEN)")
	}
	if cfg.AIGatewayKey != "" {
		ok.Printf("  AI PFP:    ✅ %s\n", cfg.AIModel)
	} else {
		warn.Println("  AI PFP:    ❌ disabled (set AI_GATEWAY_KEY)")
	}
	fmt.Println(strings.Repeat("═", 60) + "\n")
}
