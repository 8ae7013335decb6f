// Package content scores a list of social posts against a blockchain
// keyword vocabulary.
package content

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Post is one unit of social content, immutable once fetched.
type Post struct {
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	Retweets  int       `json:"retweets"`
	CreatedAt time.Time `json:"createdAt"`
}

// Analysis is the derived result for a batch of posts.
type Analysis struct {
	MatchScore      int      `json:"score"`          // % of posts with at least one keyword
	MatchedKeywords []string `json:"keywords"`       // most-frequent-first, capped
	MatchingPosts   int      `json:"matchingTweets"` // posts with at least one match
	TotalAnalyzed   int      `json:"totalAnalyzed"`
}

// Analyze matches every post against the vocabulary, case-insensitive and
// unanchored (so "ethics" counts for "eth"). Keywords are ranked by the
// number of posts containing them, ties broken by vocabulary order, and
// truncated to keywordCap entries. Total function: empty input yields a zero result.
func Analyze(posts []Post, vocab []string, keywordCap int) Analysis {
	if len(posts) == 0 {
		return Analysis{MatchedKeywords: []string{}}
	}

	freq := make(map[string]int, len(vocab))
	matching := 0

	for _, post := range posts {
		text := strings.ToLower(post.Text)
		hit := false
		for _, kw := range vocab {
			if strings.Contains(text, kw) {
				freq[kw]++
				hit = true
			}
		}
		if hit {
			matching++
		}
	}

	matched := make([]string, 0, len(freq))
	for _, kw := range vocab {
		if freq[kw] > 0 {
			matched = append(matched, kw)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return freq[matched[i]] > freq[matched[j]]
	})
	if keywordCap > 0 && len(matched) > keywordCap {
		matched = matched[:keywordCap]
	}

	return Analysis{
		MatchScore:      int(math.Round(float64(matching) / float64(len(posts)) * 100)),
		MatchedKeywords: matched,
		MatchingPosts:   matching,
		TotalAnalyzed:   len(posts),
	}
}
