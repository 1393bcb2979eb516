// internal/words/words.go
//
// Letter tables for the word game.
//
// Responsibilities:
//   - Hold the Faroese letter frequency weights.
//   - Draw weighted random letters, either from crypto/rand or from a
//     seeded generator so a given seed always yields the same table.
//   - Format a table as a 4×4 code block.
//
// The weights follow published Faroese letter distributions.

package words

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"strings"
	"sync"
	"unicode"
)

// Size is the number of letters in a table.
const Size = 16

// Table is a 4×4 grid of letters, row by row.
type Table [Size]rune

type weight struct {
	letter rune
	weight int64
}

var letterWeights = [...]weight{
	{'a', 9_180}, {'á', 1_240}, {'b', 1_210}, {'d', 2_240}, {'ð', 2_660},
	{'e', 5_510}, {'f', 1_930}, {'g', 3_570}, {'h', 1_900}, {'i', 8_570},
	{'í', 1_710}, {'j', 966}, {'k', 3_150}, {'l', 4_320}, {'m', 3_780},
	{'n', 7_700}, {'o', 3_060}, {'ó', 1_010}, {'p', 979}, {'r', 8_890},
	{'s', 5_250}, {'t', 5_890}, {'u', 5_110}, {'ú', 492}, {'v', 3_100},
	{'y', 1_240}, {'ý', 262}, {'æ', 409}, {'ø', 1_110},
}

var (
	initOnce   sync.Once
	cumulative []int64 // running sums of letterWeights
	total      int64
)

func initWeights() {
	initOnce.Do(func() {
		cumulative = make([]int64, len(letterWeights))
		for i, w := range letterWeights {
			total += w.weight
			cumulative[i] = total
		}
	})
}

// pick maps n in [0, total) to its letter.
func pick(n int64) rune {
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if n < cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return letterWeights[lo].letter
}

func fill(draw func(n int64) int64) Table {
	initWeights()
	var t Table
	for i := range t {
		t[i] = pick(draw(total))
	}
	return t
}

// RandomTable returns a table drawn with crypto/rand.
func RandomTable() Table { return fill(cryptoDraw) }

// SeededTable returns the table for seed. Equal seeds give equal tables.
func SeededTable(seed uint64) Table {
	r := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return fill(r.Int64N)
}

func cryptoDraw(n int64) int64 {
	v, _ := rand.Int(rand.Reader, big.NewInt(n))
	return v.Int64()
}

// Format renders t as four rows of space-separated letters in a code
// block.
func Format(t Table) string {
	var b strings.Builder
	b.WriteString("```\n")
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(t[row*4+col])
		}
		b.WriteByte('\n')
	}
	b.WriteString("```")
	return b.String()
}

// Contains reports whether every letter of word can be taken from t, each
// table letter used at most once. Comparison is case-insensitive.
func Contains(t Table, word string) bool {
	left := make(map[rune]int, Size)
	for _, r := range t {
		left[unicode.ToLower(r)]++
	}
	for _, r := range word {
		r = unicode.ToLower(r)
		if left[r] == 0 {
			return false
		}
		left[r]--
	}
	return true
}
