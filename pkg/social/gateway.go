// Package social fetches a profile and recent posts for an X handle via
// the private-API scraper.
package social

import (
	"context"
	"errors"
	"strings"
	"time"

	twitterscraper "github.com/imperatrona/twitter-scraper"
	"github.com/rs/zerolog/log"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/config"
	"github.com/maxi-checker/pkg/content"
)

// ErrPrivateAccount signals that the profile resolved but its posts cannot
// be read. Callers still receive the profile and should degrade to an empty
// post list.
var ErrPrivateAccount = errors.New("account is private")

// Profile is the subset of account data surfaced to the client.
type Profile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profileImageUrl"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	TweetCount      int    `json:"tweetCount"`
}

type Gateway struct {
	cfg     *config.Config
	scraper *twitterscraper.Scraper
	timeout time.Duration
}

func New(cfg *config.Config) *Gateway {
	g := &Gateway{
		cfg:     cfg,
		scraper: twitterscraper.New(),
		timeout: cfg.GatewayTimeout,
	}

	if loadCookies(g.scraper, cfg.TwitterCookieFile) {
		log.Info().Str("file", cfg.TwitterCookieFile).Msg("restored twitter session from cookies")
		return g
	}

	if cfg.TwitterAuthToken != "" {
		g.scraper.SetAuthToken(twitterscraper.AuthToken{
			Token:     cfg.TwitterAuthToken,
			CSRFToken: cfg.TwitterCSRFToken,
		})
	} else if cfg.TwitterUsername != "" {
		if err := g.scraper.Login(cfg.TwitterUsername, cfg.TwitterPassword); err != nil {
			log.Warn().Err(err).Msg("twitter login failed, continuing as guest")
		}
	}
	if g.scraper.IsLoggedIn() {
		saveCookies(g.scraper, cfg.TwitterCookieFile)
	}
	return g
}

// Fetch resolves a handle to its profile and up to MaxPosts recent posts.
// Returns ErrPrivateAccount (with the profile) when posts are unreadable,
// and tolerates zero posts.
func (g *Gateway) Fetch(ctx context.Context, handle string) (*Profile, []content.Post, error) {
	handle = strings.TrimSpace(strings.TrimPrefix(handle, "@"))
	if handle == "" {
		return nil, nil, apperr.New(apperr.KindValidation, "Username required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.scraper.GetProfile(handle)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, nil, apperr.Wrap(apperr.KindNotFound, "User not found", err)
		}
		return nil, nil, apperr.Wrap(apperr.KindUpstream, "Failed to fetch Twitter data", err)
	}

	profile := &Profile{
		ID:              raw.UserID,
		Name:            raw.Name,
		Username:        raw.Username,
		Description:     raw.Biography,
		ProfileImageURL: strings.Replace(raw.Avatar, "_normal", "_400x400", 1),
		Followers:       raw.FollowersCount,
		Following:       raw.FollowingCount,
		TweetCount:      raw.TweetsCount,
	}

	if raw.IsPrivate {
		return profile, nil, ErrPrivateAccount
	}

	var posts []content.Post
	for result := range g.scraper.GetTweets(ctx, handle, g.cfg.MaxPosts) {
		if result.Error != nil {
			// Protected timelines and auth hiccups surface here; keep what
			// we have and let the caller analyze a partial list.
			log.Debug().Err(result.Error).Str("handle", handle).Msg("tweet stream ended early")
			break
		}
		posts = append(posts, content.Post{
			Text:      result.Text,
			Likes:     result.Likes,
			Retweets:  result.Retweets,
			CreatedAt: result.TimeParsed,
		})
	}

	log.Info().Str("handle", handle).Int("posts", len(posts)).Msg("📱 fetched profile")
	return profile, posts, nil
}
