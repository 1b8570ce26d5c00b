// Package lib provides functionality for SMS spam and phishing detection. The primary type is guard.Engine,
// which classifies a message (sender and body) with a fixed, ordered set of rules:
//
//   - email-sender: the sender is an email address, i.e. the message came through an email-to-text gateway.
//   - risky-domain: the body has a link with a top-level domain or a hosting subdomain abused by phishing sites.
//   - ip-address: the body has a raw IPv4 address.
//   - bank-name: the body mentions a financial institution, and the sender is not an SMS shortcode.
//     Banks send notifications from shortcodes, so a bank name from a full phone number is suspicious.
//   - phishing-phrase: the body has a common phishing phrase, e.g. "verify your account" or "gift card".
//
// Bank names and phishing phrases are matched against normalized text (case folded, punctuation and spacing
// removed) and in leetspeak variants, so "B.O.A", "b4nk of america" and "G1ft Card" are caught too.
//
// The engine is built once with guard.New, which validates and compiles the built-in pattern libraries,
// and is safe for concurrent use afterwards. Config.Shortcode defines which numeric senders are shortcodes,
// 4 to 6 digits by default.
//
// Engine.Evaluate runs all rules and returns findings with unique descriptions, in rule order.
// Engine.EvaluateFirst stops on the first triggered rule and is intended for the inline filtering path.
// An empty result means the message passes.
//
// Package filter wraps the engine into an inline filter hook: a query with optional sender and body
// is answered with junk or none, and an incomplete query is never classified.
package lib
