// internal/dictionary/uio/uio.go
//
// Scraper for the University of Oslo Faroese archives.
// Responsibilities:
//   - Grunnmanuskriptet (GM) and Setelarkivet (SA) searches via the
//     search.cgi form.
//   - A single Setelarkivet slip via objectviewer.cgi.
//   - Decoding archive entities before the HTML is parsed.

package uio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/LFalch/ordabottur/internal/dictionary"
	"github.com/LFalch/ordabottur/internal/markup"
	"github.com/LFalch/ordabottur/internal/msgbunch"
)

const DefaultBaseURL = "https://www.edd.uio.no"

// Row counts requested by the chat commands.
const (
	GMRows = 10
	SARows = 35
)

// ErrUnexpectedPage is returned when a page lacks an element the scraper
// relies on.
var ErrUnexpectedPage = errors.New("uio: unexpected page layout")

// Client talks to the archive.
type Client struct {
	baseURL  string
	http     *http.Client
	entities *dictionary.Entities
}

// New returns a client. Empty baseURL means DefaultBaseURL, nil hc means
// http.DefaultClient, nil entities leaves archive entities untouched.
func New(baseURL string, hc *http.Client, entities *dictionary.Entities) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc, entities: entities}
}

// Result is one page of search results.
type Result struct {
	// Count is the archive's own result-count line.
	Count   string
	Entries []dictionary.Entry
}

// Bunch renders the count line followed by every entry.
func (r *Result) Bunch() (msgbunch.Bunch, error) {
	b := msgbunch.New().AddString(r.Count).AddString("\n")
	return msgbunch.Entries(b, r.Entries).Build()
}

// Options narrow a Setelarkivet search. Empty fields are ignored.
type Options struct {
	Registrant string
	Title      string
	Author     string
	Area       string
	Place      string
}

// SearchGM searches Grunnmanuskriptet for word.
func (c *Client) SearchGM(ctx context.Context, word string, rows int) (*Result, error) {
	body := fmt.Sprintf("tabid=993&appid=59&C%%23993.994.545%%23994.995.546%%23ORD=%s"+
		"&dosearch=++++S%%F8k++++&oppsetttid=215&ResultatID=447&ResRowsNum=%d",
		formEncode(word), rows)
	return c.search(ctx, body)
}

// SearchSA searches Setelarkivet for a word form.
func (c *Client) SearchSA(ctx context.Context, word string, rows int, o Options) (*Result, error) {
	body := fmt.Sprintf("tabid=436&appid=8&C%%23436.437.235%%23ORDFORM=%s"+
		"&C%%23436.447.243%%23PERSONNAMN=%s"+
		"&C%%23436.443.239%%23443.444.240%%23FORFATTAR=%s"+
		"&C%%23436.443.239%%23443.444.240%%23TITTEL=%s"+
		"&C%%23436.1855.1051%%231855.448.1050%%23STADNAMNKODE=%s"+
		"&C%%23436.635.339%%23635.448.341%%23STADNAMNKODE=%s"+
		"&C%%23SETEL_ID=&dosearch=++++S%%F8k++++&oppsettid=216&ResultatID=328&ResRowsNum=%d",
		formEncode(word), formEncode(o.Registrant), formEncode(o.Author),
		formEncode(o.Title), formEncode(o.Area), formEncode(o.Place), rows)
	return c.search(ctx, body)
}

func (c *Client) search(ctx context.Context, form string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/perl/search/search.cgi", strings.NewReader(form))
	if err != nil {
		return nil, fmt.Errorf("uio: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	doc, err := c.fetch(req)
	if err != nil {
		return nil, err
	}

	nav := find(doc, func(n *html.Node) bool { return markup.HasClass(n, "BeneathNavigator") })
	if nav == nil {
		return nil, fmt.Errorf("%w: no result count", ErrUnexpectedPage)
	}
	res := &Result{Count: firstText(nav)}

	var cells []*html.Node
	for _, row := range findAll(doc, func(n *html.Node) bool {
		return markup.HasClass(n, "ResRowGray") || markup.HasClass(n, "ResRowWhite")
	}) {
		cells = append(cells, findAll(row, func(n *html.Node) bool {
			return n != row && n.Type == html.ElementNode && n.Data == "td"
		})...)
	}
	for i := 0; i+2 < len(cells); i += 3 {
		res.Entries = append(res.Entries, dictionary.NewEntry(
			cellText(cells[i]), cellText(cells[i+1]), cellText(cells[i+2])))
	}
	log.Debug().Str("count", res.Count).Int("entries", len(res.Entries)).Msg("uio search")
	return res, nil
}

// Slip is one Setelarkivet record.
type Slip struct {
	// Text is the headword, its grammar and, without an image, the
	// context line.
	Text string
	// ImageURL is the scanned slip, if there is one.
	ImageURL string
}

// SlipByID fetches the Setelarkivet record with the given primary key.
func (c *Client) SlipByID(ctx context.Context, id uint64) (*Slip, error) {
	u := fmt.Sprintf("%s/perl/search/objectviewer.cgi?tabid=436&primarykey=%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("uio: %w", err)
	}
	doc, err := c.fetch(req)
	if err != nil {
		return nil, err
	}

	byClass := func(class string) *html.Node {
		return find(doc, func(n *html.Node) bool { return markup.HasClass(n, class) })
	}
	word, grammar := byClass("oppslag"), byClass("GRAMMATIKK")
	if word == nil || grammar == nil {
		return nil, fmt.Errorf("%w: slip %d", ErrUnexpectedPage, id)
	}
	slip := &Slip{Text: "**" + cellText(word) + "** (" + cellText(grammar) + ")"}

	if img := find(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "img" }); img != nil {
		src := attr(img, "src")
		if src == "" {
			src = "/"
		}
		slip.ImageURL = c.baseURL + src
		return slip, nil
	}
	ctxLine := byClass("kontekst")
	if ctxLine == nil {
		return nil, fmt.Errorf("%w: slip %d has neither image nor context", ErrUnexpectedPage, id)
	}
	slip.Text += "\n_" + cellText(ctxLine) + "_"
	return slip, nil
}

func (c *Client) fetch(req *http.Request) (*html.Node, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uio: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn().Int("status", res.StatusCode).Str("url", req.URL.String()).Msg("uio request failed")
		return nil, &dictionary.StatusError{Code: res.StatusCode}
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("uio: read body: %w", err)
	}
	doc, err := html.Parse(strings.NewReader(c.entities.Decode(decodeBody(raw))))
	if err != nil {
		return nil, fmt.Errorf("uio: parse: %w", err)
	}
	return doc, nil
}

// cellText flattens an element's children to styled text.
func cellText(n *html.Node) string {
	return strings.TrimSpace(markup.FlattenChildren(n, markup.Empty))
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, match); f != nil {
			return f
		}
	}
	return nil
}

// findAll returns the matching nodes in document order. It does not
// descend into a match.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return out
}

func firstText(n *html.Node) string {
	t := find(n, func(n *html.Node) bool { return n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" })
	if t == nil {
		return ""
	}
	return strings.TrimSpace(t.Data)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
