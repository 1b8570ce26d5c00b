package guard

import (
	"strings"

	"github.com/umputun/msg-guard/lib/spamcheck"
)

// Rule is a named check over a message. Rules are pure and stateless.
type Rule struct {
	Name        string
	Description string
	check       func(msg spamcheck.Message) (match string, ok bool)
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Check runs the rule against a message and returns a finding if triggered.
func (r Rule) Check(msg spamcheck.Message) (spamcheck.Finding, bool) {
	match, ok := r.check(msg)
	if !ok {
		return spamcheck.Finding{}, false
	}
	return spamcheck.Finding{Rule: r.Name, Description: r.Description, Match: match}, true
}

// rule names, also used as finding ids
const (
	RuleEmailSender    = "email-sender"
	RuleRiskyDomain    = "risky-domain"
	RuleIPAddress      = "ip-address"
	RuleBankName       = "bank-name"
	RulePhishingPhrase = "phishing-phrase"
)

// emailSenderRule triggers on messages relayed from an email address (email to text gateways)
func emailSenderRule() Rule {
	return Rule{
		Name:        RuleEmailSender,
		Description: "Message sent from an email address (Email to Text)",
		check: func(msg spamcheck.Message) (string, bool) {
			sender := Normalize(msg.Sender, CaseOnly)
			if strings.Contains(sender, "@") {
				return sender, true
			}
			return "", false
		},
	}
}

// riskyDomainRule triggers on links with risky TLDs or abused hosting domains
func riskyDomainRule(m *domainMatcher) Rule {
	return Rule{
		Name:        RuleRiskyDomain,
		Description: "Message contains a URL with a risky TLD",
		check: func(msg spamcheck.Message) (string, bool) {
			return m.match(Normalize(msg.Body, CaseOnly))
		},
	}
}

// ipAddressRule triggers on raw IPv4 literals
func ipAddressRule() Rule {
	return Rule{
		Name:        RuleIPAddress,
		Description: "Message contains an IP address",
		check: func(msg spamcheck.Message) (string, bool) {
			if ip := ipv4Re.FindString(Normalize(msg.Body, CaseOnly)); ip != "" {
				return ip, true
			}
			return "", false
		},
	}
}

// bankNameRule triggers on bank names in messages not sent from a shortcode.
// Banks send notifications from shortcodes, a full phone number or a name claiming to be a bank is suspicious.
func bankNameRule(m *substringMatcher, sc ShortcodeConfig) Rule {
	return Rule{
		Name:        RuleBankName,
		Description: "Message mentions a bank and was not sent using an SMS shortcode",
		check: func(msg spamcheck.Message) (string, bool) {
			if sc.IsShortcode(msg.Sender) {
				return "", false
			}
			return m.match(Normalize(msg.Body, AlnumOnly))
		},
	}
}

// phishingPhraseRule triggers on common phishing phrases, each matcher checks the body in its own mode
func phishingPhraseRule(matchers map[Mode]*substringMatcher) Rule {
	modes := []Mode{AlnumOnly, AlphaOnly} // fixed order, map iteration is random
	return Rule{
		Name:        RulePhishingPhrase,
		Description: "Message contains a common phishing phrase",
		check: func(msg spamcheck.Message) (string, bool) {
			for _, mode := range modes {
				m, ok := matchers[mode]
				if !ok {
					continue
				}
				if phrase, found := m.match(Normalize(msg.Body, mode)); found {
					return phrase, true
				}
			}
			return "", false
		},
	}
}
