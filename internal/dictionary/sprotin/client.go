// internal/dictionary/sprotin/client.go
//
// Client for the sprotin.fo JSON search.
// Responsibilities:
//   - Build the search query and decode the response.
//   - Report non-2xx answers as *dictionary.StatusError.
//   - WordExists: the dictionary check used by the word game.

package sprotin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/LFalch/ordabottur/internal/dictionary"
)

const DefaultBaseURL = "https://sprotin.fo"

// Client searches Sprotin dictionaries.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. An empty baseURL means
// DefaultBaseURL; a nil hc means http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Query is one search request.
type Query struct {
	Dictionary   int
	Page         int
	SearchFor    string
	Inflections  bool
	Descriptions bool
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Search runs q and decodes the result page.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	v := url.Values{}
	v.Set("DictionaryId", fmt.Sprint(q.Dictionary))
	v.Set("DictionaryPage", fmt.Sprint(q.Page))
	v.Set("SearchFor", q.SearchFor)
	v.Set("SearchInflections", flag(q.Inflections))
	v.Set("SearchDescriptions", flag(q.Descriptions))
	v.Set("Group", "")
	v.Set("SkipOtherDictionariesResults", "1")
	v.Set("SkipSimilarWords", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dictionary_search_json.php?"+v.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("sprotin: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sprotin: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn().Int("status", res.StatusCode).Str("query", q.SearchFor).Msg("sprotin search failed")
		return nil, &dictionary.StatusError{Code: res.StatusCode}
	}
	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sprotin: decode: %w", err)
	}
	log.Debug().
		Int("dictionary", q.Dictionary).
		Str("query", q.SearchFor).
		Str("status", string(out.Status)).
		Int("total", out.Total).
		Msg("sprotin search")
	return &out, nil
}

// WordExists reports whether word is a headword or an inflected form in
// the Faroese-Faroese dictionary. Searches with and without inflections
// run concurrently.
func (c *Client) WordExists(ctx context.Context, word string) (bool, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*Response, 2)
	for i, inflections := range []bool{true, false} {
		g.Go(func() error {
			r, err := c.Search(ctx, Query{
				Dictionary:  FaroeseFaroese,
				Page:        1,
				SearchFor:   word,
				Inflections: inflections,
			})
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	for _, r := range results {
		for _, w := range r.Words {
			if w.Matches(word) {
				return true, nil
			}
		}
	}
	return false, nil
}
