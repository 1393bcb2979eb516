package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFalch/ordabottur/internal/dictionary"
	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
)

type fakeSearcher struct {
	last sprotin.Query
	res  *sprotin.Response
	err  error
}

func (f *fakeSearcher) Search(_ context.Context, q sprotin.Query) (*sprotin.Response, error) {
	f.last = q
	return f.res, f.err
}

type fakeGM struct {
	res *uio.Result
	err error
}

func (f *fakeGM) SearchGM(context.Context, string, int) (*uio.Result, error) {
	return f.res, f.err
}

func do(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func messages(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["messages"].([]any)
	require.True(t, ok, "messages in %v", body)
	out := make([]string, len(raw))
	for i, m := range raw {
		out[i] = m.(string)
	}
	return out
}

func TestHealthAndIndex(t *testing.T) {
	s := New(zerolog.Nop(), &fakeSearcher{}, &fakeGM{})

	rec, body := do(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	rec, body = do(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ordabottur", body["service"])

	rec, body = do(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["error"])
}

func TestDictionaries(t *testing.T) {
	s := New(zerolog.Nop(), &fakeSearcher{}, &fakeGM{})
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dictionaries", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []dictionaryRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, len(sprotin.Shortcuts))
	assert.Equal(t, "fof", out[0].Name)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, "FØ-FØ", out[0].Display)
}

func TestLookup(t *testing.T) {
	sp := &fakeSearcher{res: &sprotin.Response{
		Status: sprotin.StatusSuccess,
		Words: []sprotin.Word{
			{DisplayWord: "hestur", Explanation: "dýr"},
			{DisplayWord: "hestabak", Explanation: "bak"},
		},
	}}
	s := New(zerolog.Nop(), sp, &fakeGM{})

	rec, body := do(t, s, "/lookup/foen?q=hestur")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sprotin.Query{Dictionary: 2, Page: 1, SearchFor: "hestur"}, sp.last)
	msgs := messages(t, body)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "1. **hestur**: dýr\n2. **hestabak**: bak\n")

	_, body = do(t, s, "/lookup/1?q=hestur&n=2")
	assert.Equal(t, []string{"**hestabak**\nbak\n"}, messages(t, body))

	// Out of range falls back to the summary.
	_, body = do(t, s, "/lookup/1?q=hestur&n=7")
	assert.Contains(t, messages(t, body)[0], "1. **hestur**")
}

func TestLookupBadRequests(t *testing.T) {
	s := New(zerolog.Nop(), &fakeSearcher{}, &fakeGM{})
	for path, code := range map[string]string{
		"/lookup/klingon?q=x": "unknown_dictionary",
		"/lookup/fof":         "missing_query",
		"/lookup/fof?q=x&n=0": "bad_word_number",
		"/lookup/fof?q=x&n=a": "bad_word_number",
		"/gm?q=%20":           "missing_query",
	} {
		rec, body := do(t, s, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, code, body["error"], path)
	}
}

func TestUpstreamFailure(t *testing.T) {
	sp := &fakeSearcher{err: &dictionary.StatusError{Code: 503}}
	s := New(zerolog.Nop(), sp, &fakeGM{err: context.DeadlineExceeded})

	rec, body := do(t, s, "/lookup/fof?q=x")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream_failed", body["error"])
	assert.Equal(t, float64(503), body["upstream"])

	rec, body = do(t, s, "/gm?q=x")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	_, has := body["upstream"]
	assert.False(t, has)
}

func TestGM(t *testing.T) {
	gm := &fakeGM{res: &uio.Result{Count: "2 treff", Entries: []dictionary.Entry{
		dictionary.NewEntry("hús", "n.", "bygning"),
		dictionary.NewEntry("húsa", "v.", "geva húsaskjól"),
	}}}
	s := New(zerolog.Nop(), &fakeSearcher{}, gm)

	rec, body := do(t, s, "/gm?q=h%C3%BAs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2 treff\n**hús** _n._: bygning\n**húsa** _v._: geva húsaskjól\n"}, messages(t, body))
}
