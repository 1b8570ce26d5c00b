package guard

import (
	"strings"

	"github.com/samber/lo"
)

// substitution is a pair of interchangeable characters, applied in both directions
type substitution struct {
	x, y rune
}

// substitutions is the leetspeak table used to expand canonical tokens.
// The order defines the order of variants returned by Expand.
var substitutions = []substitution{
	{'a', '4'},
	{'b', '8'},
	{'e', '3'},
	{'g', '9'},
	{'i', '1'},
	{'i', 'l'},
	{'l', '1'},
	{'l', 'i'},
	{'o', '0'},
	{'t', '7'},
}

// MaxVariants is the upper bound of the Expand result size.
var MaxVariants = 1 + 2*len(substitutions)

// Expand returns the token and its leetspeak variants. Each variant differs from the token by exactly one
// substitution applied to all occurrences, substitutions are never chained. The token itself is always the first
// element, duplicates are removed.
func Expand(token string) []string {
	res := make([]string, 0, MaxVariants)
	res = append(res, token)
	for _, s := range substitutions {
		res = append(res,
			strings.ReplaceAll(token, string(s.x), string(s.y)),
			strings.ReplaceAll(token, string(s.y), string(s.x)),
		)
	}
	return lo.Uniq(res)
}

// digitFolds maps leet digits back to the letter they stand for. Built from the substitution table,
// the first letter paired with a digit wins, so "1" folds to "i".
var digitFolds = func() map[rune]rune {
	res := map[rune]rune{}
	for _, s := range substitutions {
		letter, digit := s.x, s.y
		if isDigit(letter) {
			letter, digit = digit, letter
		}
		if !isDigit(digit) || isDigit(letter) {
			continue
		}
		if _, ok := res[digit]; !ok {
			res[digit] = letter
		}
	}
	return res
}()

// foldDigits replaces every leet digit with its letter, the result has the same length as the input
func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if l, ok := digitFolds[r]; ok {
			return l
		}
		return r
	}, s)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }
