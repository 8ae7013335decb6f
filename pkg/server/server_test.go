package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/avatar"
	"github.com/maxi-checker/pkg/config"
	"github.com/maxi-checker/pkg/content"
	"github.com/maxi-checker/pkg/persona"
	"github.com/maxi-checker/pkg/social"
	"github.com/maxi-checker/pkg/wallet"
)

type stubWallets struct {
	telemetry persona.Telemetry
	mintTx    *wallet.MintTx
	err       error
}

func (s *stubWallets) Fetch(ctx context.Context, address string) (persona.Telemetry, error) {
	return s.telemetry, s.err
}

func (s *stubWallets) MintParams(ctx context.Context, address string) (*wallet.MintTx, error) {
	return s.mintTx, s.err
}

type stubSocials struct {
	profile *social.Profile
	posts   []content.Post
	err     error
}

func (s *stubSocials) Fetch(ctx context.Context, handle string) (*social.Profile, []content.Post, error) {
	return s.profile, s.posts, s.err
}

type stubAvatars struct {
	url string
	err error
}

func (s *stubAvatars) Generate(ctx context.Context, pc avatar.PromptContext) (string, error) {
	return s.url, s.err
}

func newTestServer(wallets WalletGateway, socials SocialGateway, avatars AvatarGateway) *Server {
	cfg := &config.Config{Port: 0, KeywordCap: 10, GatewayTimeout: time.Second}
	return New(cfg, wallets, socials, avatars)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestCheckWallet_MissingAddress(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/check-wallet", map[string]string{})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Wallet address required", decode(t, w)["error"])
}

func TestCheckWallet_Success(t *testing.T) {
	wallets := &stubWallets{telemetry: persona.Telemetry{Balance: 2, TxCount: 600}}
	h := newTestServer(wallets, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/check-wallet", map[string]string{
		"walletAddress": "0x00000000219ab540356cBB839Cbe05303d7705Fa",
		"xHandle":       "vitalik",
	})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(100), body["score"])
	assert.Equal(t, "Maxi", body["ethArchetype"])
	assert.Equal(t, "City Never Sleeps", body["mumbaiMode"])
	assert.Equal(t, "Gas God", body["gasStyle"])
	assert.Equal(t, "100%", body["ogEnergy"])
	assert.Equal(t, "@vitalik", body["flavor"])
}

func TestCheckWallet_NoHandleHasNullFlavor(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/check-wallet", map[string]string{
		"walletAddress": "0x00000000219ab540356cBB839Cbe05303d7705Fa",
	})
	require.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Nil(t, body["flavor"])
	assert.Equal(t, "Explorer", body["ethArchetype"])
}

func TestCheckWallet_UpstreamFailure(t *testing.T) {
	wallets := &stubWallets{err: apperr.New(apperr.KindUpstream, "Failed to analyze wallet")}
	h := newTestServer(wallets, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/check-wallet", map[string]string{
		"walletAddress": "0x00000000219ab540356cBB839Cbe05303d7705Fa",
	})
	assert.Equal(t, 500, w.Code)
	assert.Equal(t, "Failed to analyze wallet", decode(t, w)["error"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	for _, path := range []string{"/check-wallet", "/fetch-twitter", "/generate-pfp"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Empty(t, w.Body.String(), path)
	}
}

func TestFetchTwitter_MissingUsername(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/fetch-twitter", map[string]string{})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Username required", decode(t, w)["error"])
}

func TestFetchTwitter_Success(t *testing.T) {
	socials := &stubSocials{
		profile: &social.Profile{Username: "builder", Followers: 420},
		posts: []content.Post{
			{Text: "gm frens, wagmi"},
			{Text: "had lunch today"},
		},
	}
	h := newTestServer(&stubWallets{}, socials, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/fetch-twitter", map[string]string{"username": "builder"})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "builder", user["username"])

	blockchain := body["blockchain"].(map[string]interface{})
	assert.Equal(t, float64(50), blockchain["score"])
	assert.Equal(t, float64(1), blockchain["matchingTweets"])
	assert.Equal(t, float64(2), blockchain["totalAnalyzed"])

	tweets := body["tweets"].([]interface{})
	assert.Len(t, tweets, 2)
}

func TestFetchTwitter_NotFound(t *testing.T) {
	socials := &stubSocials{err: apperr.New(apperr.KindNotFound, "User not found")}
	h := newTestServer(&stubWallets{}, socials, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/fetch-twitter", map[string]string{"username": "ghost"})
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])
}

func TestFetchTwitter_PrivateAccountDegradesToZeroPosts(t *testing.T) {
	socials := &stubSocials{
		profile: &social.Profile{Username: "hermit"},
		err:     social.ErrPrivateAccount,
	}
	h := newTestServer(&stubWallets{}, socials, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/fetch-twitter", map[string]string{"username": "hermit"})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "hermit", user["username"])

	blockchain := body["blockchain"].(map[string]interface{})
	assert.Equal(t, float64(0), blockchain["score"])
	assert.Equal(t, float64(0), blockchain["totalAnalyzed"])
}

func TestGeneratePFP_Success(t *testing.T) {
	avatars := &stubAvatars{url: "data:image/png;base64,abc"}
	h := newTestServer(&stubWallets{}, &stubSocials{}, avatars).Handler()

	w := doJSON(t, h, "POST", "/generate-pfp", map[string]interface{}{
		"blockchainScore": 72,
		"keywords":        []string{"eth", "defi"},
		"ethArchetype":    "OG",
	})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	assert.Equal(t, "data:image/png;base64,abc", body["imageUrl"])
	assert.NotEmpty(t, body["message"])
}

func TestGeneratePFP_RateLimited(t *testing.T) {
	avatars := &stubAvatars{err: apperr.New(apperr.KindRateLimit, "Rate limit exceeded. Please try again later.")}
	h := newTestServer(&stubWallets{}, &stubSocials{}, avatars).Handler()

	w := doJSON(t, h, "POST", "/generate-pfp", map[string]interface{}{})
	assert.Equal(t, 429, w.Code)
}

func TestGeneratePFP_QuotaExceeded(t *testing.T) {
	avatars := &stubAvatars{err: apperr.New(apperr.KindQuota, "Please add credits to generate images.")}
	h := newTestServer(&stubWallets{}, &stubSocials{}, avatars).Handler()

	w := doJSON(t, h, "POST", "/generate-pfp", map[string]interface{}{})
	assert.Equal(t, 402, w.Code)
	assert.Equal(t, "Please add credits to generate images.", decode(t, w)["error"])
}

func TestMintPersona_ReturnsUnsignedTx(t *testing.T) {
	wallets := &stubWallets{mintTx: &wallet.MintTx{
		From:  "0x00000000219ab540356cBB839Cbe05303d7705Fa",
		To:    "0x00000000219ab540356cBB839Cbe05303d7705Fa",
		Value: "0x0",
		Gas:   "0x5208",
	}}
	h := newTestServer(wallets, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "POST", "/mint-persona", map[string]string{
		"walletAddress": "0x00000000219ab540356cBB839Cbe05303d7705Fa",
	})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	tx := body["tx"].(map[string]interface{})
	assert.Equal(t, tx["from"], tx["to"])
	assert.Equal(t, "0x0", tx["value"])
}

func TestHealth(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "GET", "/api/health", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(&stubWallets{}, &stubSocials{}, &stubAvatars{}).Handler()

	w := doJSON(t, h, "GET", "/check-wallet", nil)
	assert.Equal(t, 405, w.Code)
}
