package social

import (
	"encoding/json"
	"net/http"
	"os"

	twitterscraper "github.com/imperatrona/twitter-scraper"
	"github.com/rs/zerolog/log"
)

// Cookie persistence keeps the scraper session alive across restarts so we
// don't burn logins.

func loadCookies(s *twitterscraper.Scraper, path string) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var cookies []*http.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return false
	}
	s.SetCookies(cookies)
	return s.IsLoggedIn()
}

func saveCookies(s *twitterscraper.Scraper, path string) {
	if path == "" {
		return
	}
	data, err := json.Marshal(s.GetCookies())
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to persist twitter cookies")
	}
}
