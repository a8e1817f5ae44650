package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rank — качество совпадения заголовка с поисковой строкой. Чем больше, тем лучше.
type Rank float64

const (
	NoMatch            Rank = 0
	Matches            Rank = 1
	Acronym            Rank = 2
	Contains           Rank = 3
	WordStartsWith     Rank = 4
	StartsWith         Rank = 5
	Equal              Rank = 6
	CaseSensitiveEqual Rank = 7
)

// ranker не потокобезопасен: трансформеры x/text хранят состояние.
type ranker struct {
	stripMarks transform.Transformer
	lower      cases.Caser
}

func newRanker() *ranker {
	return &ranker{
		stripMarks: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		lower:      cases.Lower(language.Und),
	}
}

func (r *ranker) removeAccents(s string) string {
	out, _, err := transform.String(r.stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// rank сравнивает строку-кандидат с поисковой строкой по уровням от точного
// совпадения до нечёткого совпадения символов по порядку.
func (r *ranker) rank(candidate, term string) Rank {
	candidate = r.removeAccents(candidate)
	term = r.removeAccents(term)

	candRunes := []rune(candidate)
	termRunes := []rune(term)
	if len(termRunes) > len(candRunes) {
		return NoMatch
	}
	if candidate == term {
		return CaseSensitiveEqual
	}

	candidate = r.lower.String(candidate)
	term = r.lower.String(term)

	switch {
	case candidate == term:
		return Equal
	case strings.HasPrefix(candidate, term):
		return StartsWith
	case strings.Contains(candidate, " "+term):
		return WordStartsWith
	case strings.Contains(candidate, term):
		return Contains
	case len(termRunes) == 1:
		return NoMatch
	case strings.Contains(acronym(candidate), term):
		return Acronym
	}

	return closeness([]rune(candidate), []rune(term))
}

// acronym собирает первые буквы слов, дефис тоже разделяет слова.
func acronym(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, " ") {
		for _, part := range strings.Split(word, "-") {
			for _, c := range part {
				b.WriteRune(c)
				break
			}
		}
	}
	return b.String()
}

// closeness ищет символы term в candidate по порядку. Ранг в (Matches, Acronym]:
// чем плотнее совпадение, тем ближе к Acronym.
func closeness(candidate, term []rune) Rank {
	pos := 0
	find := func(c rune) int {
		for j := pos; j < len(candidate); j++ {
			if candidate[j] == c {
				return j + 1
			}
		}
		return -1
	}

	first := find(term[0])
	if first < 0 {
		return NoMatch
	}
	pos = first
	for _, c := range term[1:] {
		pos = find(c)
		if pos < 0 {
			return NoMatch
		}
	}

	// term длиннее одного символа, поэтому spread >= 1
	spread := pos - first
	return Matches + Rank(1/float64(spread))
}
