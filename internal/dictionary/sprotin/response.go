// internal/dictionary/sprotin/response.go
//
// Response schema of sprotin.fo's dictionary_search_json.php.
// Only the fields the bot renders or logs are declared; the decoder
// ignores the rest. Optional strings decode to "" when null or absent.

package sprotin

import "encoding/json"

// Status is the outcome reported by Sprotin.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusNotFound Status = "not_found"
)

// Response is one page of search results.
type Response struct {
	SearchInflections   int                 `json:"search_inflections"`
	SearchDescription   int                 `json:"search_description"`
	Status              Status              `json:"status"`
	Message             string              `json:"message"`
	Total               int                 `json:"total"`
	From                int                 `json:"from"`
	To                  int                 `json:"to"`
	Time                float64             `json:"time"`
	Words               []Word              `json:"words"`
	SingleWord          *Word               `json:"single_word"`
	Groups              []Group             `json:"groups"`
	Dictionary          Dictionary          `json:"dictionary"`
	DictionariesResults []DictionaryResults `json:"dictionaries_results"`
	SimilarWords        []SimilarWord       `json:"similar_words"`
	Page                int                 `json:"page"`
	SearchFor           string              `json:"searchfor"`
	NewWords            json.RawMessage     `json:"new_words"` // {"status": ...} or a list
	PopularWords        []PopularWord       `json:"popular_words"`
}

// DictionaryResults is the hit count in one dictionary.
type DictionaryResults struct {
	ID      int `json:"id"`
	Results int `json:"results"`
}

// SimilarWord is a spelling suggestion returned when nothing was found.
type SimilarWord struct {
	SearchWord string `json:"SearchWord"`
	Difference int    `json:"Difference"`
}

// PopularWord is a frequently searched word.
type PopularWord struct {
	SearchWord string `json:"SearchWord"`
	Quantity   int    `json:"Quantity"`
}

// Group is a thematic word group.
type Group struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Words string `json:"words"`
}

// Dictionary describes the dictionary that was searched.
type Dictionary struct {
	ID            int    `json:"Id"`
	Title         string `json:"Title"`
	ShortTitle    string `json:"ShortTitle"`
	Type          string `json:"Type"`
	Owner         string `json:"Owner"`
	OwnerURL      string `json:"OwnerUrl"`
	Color         string `json:"Color"` // "#rrggbb"
	Info          string `json:"Info"`  // HTML
	TotalWords    int64  `json:"TotalWords"`
	TotalSearches int64  `json:"TotalSearches"`
}

// Word is one dictionary entry.
//
// Explanation, InflexCats, GrammarComment, Phonetic and ShortInflectedForm
// hold HTML.
type Word struct {
	ID                 uint64   `json:"Id"`
	ImageFilename      string   `json:"ImageFilename"`
	PrependWord        string   `json:"PrependWord"`
	SearchWord         string   `json:"SearchWord"`
	DisplayWord        string   `json:"DisplayWord"`
	InflexCats         string   `json:"InflexCats"`
	ShortInflectedForm string   `json:"ShortInflectedForm"`
	InflectedForm      []string `json:"InflectedForm"`
	Explanation        string   `json:"Explanation"`
	Origin             string   `json:"Origin"`
	OriginSource       string   `json:"OriginSource"`
	GrammarComment     string   `json:"GrammarComment"`
	Phonetic           string   `json:"Phonetic"`
	Date               string   `json:"Date"` // yyyy-mm-dd hh:mm:ss
	Groups             []Group  `json:"Groups"`
	ShortInflection    string   `json:"ShortInflection"`
}
