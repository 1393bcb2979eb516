package sprotin

import (
	"strconv"
	"strings"
	"unicode"
)

// FaroeseFaroese is the id of the Faroese-Faroese dictionary.
const FaroeseFaroese = 1

var names = map[int]string{
	1: "FØ-FØ", 2: "FØ-EN", 3: "EN-FØ", 4: "FØ-DA", 5: "DA-FØ", 21: "DA-FØ2",
	6: "FØ-TÝ", 7: "TÝ-FØ", 10: "FØ-SP", 20: "SP-FØ", 30: "GR-FØ", 9: "FR-FØ",
	11: "FØ-IT", 12: "RU-FØ", 24: "FØ-KI", 26: "KI-FØ", 27: "FØ-JA", 28: "JA-FØ",
	15: "SAM", 25: "NAVN", 22: "ALFR", 23: "TILT", 13: "YRK", 32: "BUSK",
}

// DictionaryName returns the short display name of a dictionary id.
func DictionaryName(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "????"
}

var byName = map[string]int{
	"fofo": 1, "fof": 1,
	"fon": 2, "foe": 2, "foen": 2,
	"enf": 3, "enfo": 3,
	"fod": 4, "foda": 4,
	"daf": 5, "dafo": 5,
	"daf2": 21, "dafo2": 21,
	"fot": 6, "foty": 6,
	"tyf": 7, "tyfo": 7,
	"fos": 10, "fosp": 10,
	"spf": 20, "spfo": 20,
	"grf": 30, "grfo": 30,
	"frf": 9, "frfo": 9,
	"foi": 11, "foit": 11,
	"ruf": 12, "rufo": 12,
	"fok": 24, "foki": 24,
	"kif": 26, "kifo": 26,
	"sam":  15,
	"navn": 25,
	"alfr": 22,
	"tilt": 23,
	"yrk":  13,
	"busk": 32,
}

var asciify = strings.NewReplacer(
	"ø", "o", "å", "a", "æ", "e", "í", "i", "ý", "y",
	"á", "a", "é", "e", "ó", "o", "ú", "u",
)

// ParseDictionary resolves a numeric id or a dictionary name such as
// "FØ-EN", "føen" or "dafo2".
func ParseDictionary(s string) (int, bool) {
	if id, err := strconv.ParseUint(s, 10, 8); err == nil {
		return int(id), true
	}
	norm := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
	id, ok := byName[asciify.Replace(norm)]
	return id, ok
}

// Shortcut is a chat command bound to one dictionary.
type Shortcut struct {
	Name        string
	Aliases     []string
	Description string
}

// Shortcuts lists the per-dictionary commands. Each name parses with
// ParseDictionary.
var Shortcuts = []Shortcut{
	{"fof", []string{"føf", "fofo", "føfø"}, "Look up a word in the Faroese-Faroese dictionary"},
	{"foe", []string{"fon", "føn", "føe", "foen", "føen"}, "Look up a word in the Faroese-English dictionary"},
	{"enf", []string{"enfo", "enfø"}, "Look up a word in the English-Faroese dictionary"},
	{"fod", []string{"fød", "foda", "føda"}, "Look up a word in the Faroese-Danish dictionary"},
	{"daf", []string{"dafo", "dafø"}, "Look up a word in the Danish-Faroese dictionary"},
	{"daf2", []string{"dafo2", "dafø2"}, "Look up a word in the second Danish-Faroese dictionary"},
	{"fot", []string{"føt", "foty", "føty"}, "Look up a word in the Faroese-German dictionary"},
	{"tyf", []string{"tyfo", "tyfø"}, "Look up a word in the German-Faroese dictionary"},
	{"fos", []string{"fosp", "føsp"}, "Look up a word in the Faroese-Spanish dictionary"},
	{"spf", []string{"spfo", "spfø"}, "Look up a word in the Spanish-Faroese dictionary"},
	{"grf", []string{"grfo", "grfø"}, "Look up a word in the Greek-Faroese dictionary"},
	{"frf", []string{"frfo", "frfø"}, "Look up a word in the French-Faroese dictionary"},
	{"foi", []string{"foit", "føit"}, "Look up a word in the Faroese-Italian dictionary"},
	{"ruf", []string{"rufo", "rufø"}, "Look up a word in the Russian-Faroese dictionary"},
	{"fok", []string{"foki", "føki"}, "Look up a word in the Faroese-Chinese dictionary"},
	{"kif", []string{"kifo", "kifø"}, "Look up a word in the Chinese-Faroese dictionary"},
	{"sam", []string{"fsam"}, "Leita eftir einum orði í Samheitaorðabókini"},
	{"navn", []string{"fnavn"}, "Leita eftir einum orði í Góðkendum fólkanøvnum"},
	{"alfr", []string{"falfr"}, "Leita eftir einum orði í Alfrøðibókini"},
	{"tilt", []string{"ftilt"}, "Leita eftir einum orði í Føroyskari tiltaksorðabók"},
	{"yrk", []string{"fyrk"}, "Leita eftir einum orði í Føroysk-yrkorðabók"},
	{"busk", []string{"fbusk", "búsk"}, "Leita eftir einum orði í Føroysk handils- og búskaparorðum"},
}
