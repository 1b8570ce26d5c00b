package guard

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/umputun/msg-guard/lib/spamcheck"
)

// Engine classifies messages with a fixed, ordered set of rules.
// It is immutable after New and safe for concurrent use without locking.
type Engine struct {
	Config
	rules []Rule
}

// Config is a set of parameters for Engine.
type Config struct {
	Shortcode ShortcodeConfig // numeric senders treated as shortcodes, exempt from the bank name rule
}

// ShortcodeConfig defines the shortcode boundary. A sender is a shortcode if it consists
// entirely of digits and the number of digits is within [MinDigits, MaxDigits].
type ShortcodeConfig struct {
	MinDigits int
	MaxDigits int
}

// default shortcode boundary, US/CA shortcodes are 4 to 6 digits
const (
	DefaultShortcodeMinDigits = 4
	DefaultShortcodeMaxDigits = 6
)

// IsShortcode checks if sender is a numeric shortcode. Surrounding whitespace is ignored.
func (s ShortcodeConfig) IsShortcode(sender string) bool {
	sender = strings.TrimSpace(sender)
	if len(sender) < s.MinDigits || len(sender) > s.MaxDigits {
		return false
	}
	for _, r := range sender {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// New makes an Engine with the built-in pattern libraries. It validates and compiles all corpora and
// returns an error if any entry is malformed, a rule is never silently disabled.
func New(cfg Config) (*Engine, error) {
	return newEngine(cfg, DefaultCorpora())
}

// MustNew is like New but panics on error. Intended for package-level initialization.
func MustNew(cfg Config) *Engine {
	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

func newEngine(cfg Config, corpora Corpora) (*Engine, error) {
	if cfg.Shortcode == (ShortcodeConfig{}) {
		cfg.Shortcode = ShortcodeConfig{MinDigits: DefaultShortcodeMinDigits, MaxDigits: DefaultShortcodeMaxDigits}
	}
	if cfg.Shortcode.MinDigits < 1 || cfg.Shortcode.MaxDigits < cfg.Shortcode.MinDigits {
		return nil, fmt.Errorf("invalid shortcode range %d-%d", cfg.Shortcode.MinDigits, cfg.Shortcode.MaxDigits)
	}

	if err := corpora.validate(); err != nil {
		return nil, fmt.Errorf("invalid pattern libraries: %w", err)
	}

	domains, err := newDomainMatcher(corpora.RiskyDomainSuffixes)
	if err != nil {
		return nil, err
	}

	banks, err := newSubstringMatcher(corpora.FinancialInstitutionNames, AlnumOnly, true)
	if err != nil {
		return nil, fmt.Errorf("financial institution names: %w", err)
	}

	phrases := map[Mode]*substringMatcher{}
	for _, mode := range []Mode{AlnumOnly, AlphaOnly} {
		entries := lo.FilterMap(corpora.PhishingPhrases, func(p Phrase, _ int) (string, bool) { return p.Text, p.Mode == mode })
		if len(entries) == 0 {
			continue
		}
		// digits are not letters in alpha-only mode, folding them back would defeat it
		m, merr := newSubstringMatcher(entries, mode, mode == AlnumOnly)
		if merr != nil {
			return nil, fmt.Errorf("phishing phrases (%s): %w", mode, merr)
		}
		phrases[mode] = m
	}

	res := &Engine{
		Config: cfg,
		rules: []Rule{
			emailSenderRule(),
			riskyDomainRule(domains),
			ipAddressRule(),
			bankNameRule(banks, cfg.Shortcode),
			phishingPhraseRule(phrases),
		},
	}

	phrasePatterns := 0
	for _, m := range phrases {
		phrasePatterns += m.patterns
	}
	log.Printf("[DEBUG] guard engine ready, rules: %d, domain suffixes: %d, bank patterns: %d, phrase patterns: %d, shortcode: %d-%d",
		len(res.rules), len(corpora.RiskyDomainSuffixes), banks.patterns, phrasePatterns,
		cfg.Shortcode.MinDigits, cfg.Shortcode.MaxDigits)
	return res, nil
}

// Evaluate runs all rules in order and returns findings of the triggered ones.
// Findings with the same description are added once, the first one wins. Empty result means the message passes.
func (e *Engine) Evaluate(msg spamcheck.Message) spamcheck.Result {
	res := spamcheck.Result{}
	for _, r := range e.rules {
		if f, ok := r.Check(msg); ok {
			res.Add(f)
		}
	}
	return res
}

// EvaluateFirst runs rules in order and stops on the first triggered one.
// It agrees with Evaluate: found iff Evaluate is not empty, and the finding is Evaluate's first element.
func (e *Engine) EvaluateFirst(msg spamcheck.Message) (spamcheck.Finding, bool) {
	for _, r := range e.rules {
		if f, ok := r.Check(msg); ok {
			return f, true
		}
	}
	return spamcheck.Finding{}, false
}

// Check checks if a given message is suspicious. Returns true if any rule triggered and the list of findings.
func (e *Engine) Check(msg spamcheck.Message) (spam bool, res spamcheck.Result) {
	res = e.Evaluate(msg)
	return res.Spam(), res
}

// Rules returns names and descriptions of all rules in evaluation order.
func (e *Engine) Rules() []RuleInfo {
	return lo.Map(e.rules, func(r Rule, _ int) RuleInfo {
		return RuleInfo{Name: r.Name, Description: r.Description}
	})
}

// validate checks all corpora entries and returns all problems found at once
func (c Corpora) validate() error {
	errs := new(multierror.Error)

	if len(c.RiskyDomainSuffixes) == 0 {
		errs = multierror.Append(errs, errors.New("no risky domain suffixes"))
	}
	for i, s := range c.RiskyDomainSuffixes {
		switch {
		case len(s) < 2 || s[0] != '.':
			errs = multierror.Append(errs, fmt.Errorf("domain suffix #%d %q should start with a dot", i, s))
		case strings.Trim(s, "abcdefghijklmnopqrstuvwxyz0123456789.-") != "":
			errs = multierror.Append(errs, fmt.Errorf("domain suffix #%d %q has invalid characters", i, s))
		case strings.HasSuffix(s, ".") || strings.Contains(s, ".."):
			errs = multierror.Append(errs, fmt.Errorf("domain suffix #%d %q has an empty label", i, s))
		}
	}

	if len(c.FinancialInstitutionNames) == 0 {
		errs = multierror.Append(errs, errors.New("no financial institution names"))
	}
	for i, name := range c.FinancialInstitutionNames {
		if name != strings.ToLower(name) {
			errs = multierror.Append(errs, fmt.Errorf("institution name #%d %q is not lowercase", i, name))
			continue
		}
		if Normalize(name, AlnumOnly) == "" {
			errs = multierror.Append(errs, fmt.Errorf("institution name #%d %q has no letters or digits", i, name))
		}
	}

	if len(c.PhishingPhrases) == 0 {
		errs = multierror.Append(errs, errors.New("no phishing phrases"))
	}
	for i, p := range c.PhishingPhrases {
		if p.Mode != AlnumOnly && p.Mode != AlphaOnly {
			errs = multierror.Append(errs, fmt.Errorf("phishing phrase #%d %q has unsupported mode %s", i, p.Text, p.Mode))
			continue
		}
		if p.Text == "" || Normalize(p.Text, p.Mode) != p.Text {
			errs = multierror.Append(errs, fmt.Errorf("phishing phrase #%d %q is not in %s form", i, p.Text, p.Mode))
		}
	}
	return errs.ErrorOrNil()
}
