package guard

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// substringMatcher finds corpus entries, with all their leetspeak variants, inside normalized text.
// It is built once and read-only afterwards, safe for concurrent use.
type substringMatcher struct {
	raw    *goahocorasick.Machine // entries and their variants
	rawIdx map[string]string      // pattern -> corpus entry

	folded    *goahocorasick.Machine // entries with leet digits folded to letters, nil if disabled
	foldedIdx map[string]string      // folded pattern -> corpus entry
	patterns  int                    // number of unique patterns in both automatons
}

// newSubstringMatcher makes a matcher for the given entries. Entries are normalized with mode before expansion.
// With fold set, the matcher also catches mixed substitutions, e.g. "b4nk0famer1ca", by comparing
// digit-folded entries against digit-folded text.
func newSubstringMatcher(entries []string, mode Mode, fold bool) (*substringMatcher, error) {
	res := &substringMatcher{rawIdx: map[string]string{}, foldedIdx: map[string]string{}}
	for _, entry := range entries {
		token := Normalize(entry, mode)
		if token == "" {
			return nil, fmt.Errorf("entry %q is empty in %s form", entry, mode)
		}
		for _, v := range Expand(token) {
			if Normalize(v, mode) != v {
				continue // variant with digits can't appear in alpha-only text
			}
			if _, ok := res.rawIdx[v]; !ok {
				res.rawIdx[v] = entry
			}
		}
		if fold {
			if f := foldDigits(token); f != "" {
				if _, ok := res.foldedIdx[f]; !ok {
					res.foldedIdx[f] = entry
				}
			}
		}
	}

	var err error
	if res.raw, err = buildMachine(res.rawIdx); err != nil {
		return nil, fmt.Errorf("can't build matcher: %w", err)
	}
	if fold {
		if res.folded, err = buildMachine(res.foldedIdx); err != nil {
			return nil, fmt.Errorf("can't build folded matcher: %w", err)
		}
	}
	res.patterns = len(res.rawIdx)
	if fold {
		res.patterns += len(res.foldedIdx)
	}
	return res, nil
}

// match returns the corpus entry found in text. Text has to be normalized with the matcher's mode.
func (m *substringMatcher) match(text string) (entry string, ok bool) {
	if text == "" {
		return "", false
	}
	content := []rune(text)
	if m.raw != nil {
		if terms := m.raw.MultiPatternSearch(content, true); len(terms) > 0 {
			return m.rawIdx[string(terms[0].Word)], true
		}
	}
	if m.folded == nil {
		return "", false
	}

	// folded matches count only if the original span has a letter in it,
	// otherwise plain numbers like "7144" would spell "tiaa"
	for _, term := range m.folded.MultiPatternSearch([]rune(foldDigits(text)), false) {
		end := term.Pos + len(term.Word)
		if term.Pos < 0 || end > len(content) {
			continue
		}
		if strings.IndexFunc(string(content[term.Pos:end]), isLetter) >= 0 {
			return m.foldedIdx[string(term.Word)], true
		}
	}
	return "", false
}

// buildMachine makes Aho-Corasick automaton for patterns, keys of the index.
// Patterns are sorted as the underlying double-array trie expects sorted keys.
func buildMachine(index map[string]string) (*goahocorasick.Machine, error) {
	if len(index) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	patterns := make([][]rune, 0, len(keys))
	for _, k := range keys {
		patterns = append(patterns, []rune(k))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// domainMatcher finds risky domain suffixes in case-only normalized text, word-bounded
type domainMatcher struct {
	re *regexp.Regexp
}

// newDomainMatcher compiles all suffixes into a single word-bounded alternation
func newDomainMatcher(suffixes []string) (*domainMatcher, error) {
	alts := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		alts = append(alts, regexp.QuoteMeta(s))
	}
	re, err := regexp.Compile(`\b(?:` + strings.Join(alts, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("can't compile domain suffixes: %w", err)
	}
	return &domainMatcher{re: re}, nil
}

func (m *domainMatcher) match(text string) (suffix string, ok bool) {
	if text == "" {
		return "", false
	}
	if res := m.re.FindString(text); res != "" {
		return res, true
	}
	return "", false
}

// ipv4Re matches a dotted-quad with every octet in 0-255 range
var ipv4Re = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9]?[0-9])\b`)
