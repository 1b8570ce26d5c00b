package guard

// Phrase is a phishing phrase fragment with the normalization mode it is matched in.
type Phrase struct {
	Text string // concatenated lowercase form, e.g. "giftcard"
	Mode Mode   // AlnumOnly or AlphaOnly
}

// Corpora is a set of pattern libraries the rules match against.
type Corpora struct {
	RiskyDomainSuffixes       []string
	FinancialInstitutionNames []string
	PhishingPhrases           []Phrase
}

// DefaultCorpora returns the built-in pattern libraries.
func DefaultCorpora() Corpora {
	return Corpora{
		RiskyDomainSuffixes:       RiskyDomainSuffixes,
		FinancialInstitutionNames: FinancialInstitutionNames,
		PhishingPhrases:           PhishingPhrases,
	}
}

// RiskyDomainSuffixes are top-level domains and hosting subdomains abused by phishing links.
// Matched word-bounded against the lowercased body, so ".info" doesn't match "information".
var RiskyDomainSuffixes = []string{
	".amazonaws.com",
	".amplifyap.com",
	".au",
	".bar",
	".bd",
	".best",
	".br",
	".business",
	".buzz",
	".cam",
	".casa",
	".cc",
	".center",
	".cloud",
	".cn",
	".cyou",
	".digital",
	".email",
	".fun",
	".funance",
	".godaddysites.com",
	".host",
	".icu",
	".ik",
	".in",
	".info",
	".ir",
	".ke",
	".link",
	".live",
	".monster",
	".net",
	".netfly.app",
	".ng",
	".np",
	".one",
	".online",
	".pe",
	".ph",
	".pk",
	".pl",
	".quest",
	".rest",
	".ru",
	".sa",
	".sbs",
	".services",
	".shop",
	".site",
	".store",
	".su",
	".support",
	".surf",
	".td",
	".th",
	".tk",
	".top",
	".tr",
	".trycloudflare.com",
	".uz",
	".ve",
	".vn",
	".wang",
	".web.app",
	".website",
	".weebly.com",
	".work",
	".xyz",
}

// FinancialInstitutionNames are banks, card networks and payment services commonly impersonated.
// Entries are kept in natural spelling, matching is done on the alnum-only form, e.g. "bankofamerica".
var FinancialInstitutionNames = []string{
	"afcu",
	"alliant",
	"ally financial",
	"america first",
	"american express",
	"americu",
	"ameriprise",
	"ameris",
	"amex",
	"arvest",
	"atlantic union bank",
	"banc-corp",
	"bancorp",
	"bancshares",
	"bank of america",
	"bank of hawaii",
	"bank of the west",
	"bank ozk",
	"bankunited",
	"barclays",
	"bci financial",
	"becu",
	"bmo harris",
	"bnp",
	"bofa",
	"bok financial",
	"cadence bank",
	"capital one",
	"cathay bank",
	"central bancompany",
	"chase",
	"cibc bank",
	"cit group",
	"citi",
	"citizens financial",
	"city national bank",
	"comerica",
	"commerce bancshares",
	"credit suisse",
	"credit union",
	"deutsche bank",
	"discover",
	"east west bank",
	"fargo",
	"fifth third",
	"first citizens",
	"first hawaiian bank",
	"first horizon",
	"first interstate",
	"first midwest bank",
	"first national",
	"first republic bank",
	"firstbank",
	"flagstar",
	"fnb",
	"golden1",
	"hsbc",
	"investors bank",
	"jpmorgan",
	"key bank",
	"keycorp",
	"m&t bank",
	"master card",
	"midfirst bank",
	"mufg union",
	"navy federal",
	"ncfu",
	"new york community bank",
	"northern trust",
	"nycb",
	"old national bank",
	"pacific premier",
	"pacwest",
	"paypal",
	"people's united",
	"pinnacle financial",
	"pnc",
	"rbc bank",
	"regions bank",
	"regions financial",
	"santander bank",
	"schwab",
	"signature bank",
	"simmons bank",
	"smbc",
	"sterling",
	"stifel",
	"suncoast",
	"svb",
	"synchrony",
	"synovus",
	"td bank",
	"texas capital bank",
	"tiaa",
	"truist",
	"ubs",
	"umb financial",
	"umpqua",
	"united bank",
	"united community bank",
	"us bank",
	"usaa",
	"visa",
	"washington federal",
	"webster bank",
	"wells",
	"western alliance bank",
	"wintrust",
	"zions bancorporation",
}

// PhishingPhrases are fragments of common smishing lures in concatenated form. Most are matched on the
// alnum-only body, so leet digits count as letters. Salutation phrases are matched on the alpha-only body,
// digits are dropped there and padding like "dear 0 customer" doesn't break the phrase.
var PhishingPhrases = []Phrase{
	{Text: "giftcard", Mode: AlnumOnly},
	{Text: "unusualactivity", Mode: AlnumOnly},
	{Text: "suspiciousactivity", Mode: AlnumOnly},
	{Text: "fraudulentactivity", Mode: AlnumOnly},
	{Text: "suspicioussignin", Mode: AlnumOnly},
	{Text: "suspiciouslogin", Mode: AlnumOnly},
	{Text: "unrecognizedlogin", Mode: AlnumOnly},
	{Text: "unauthorizedtransaction", Mode: AlnumOnly},
	{Text: "unauthorizedcharge", Mode: AlnumOnly},
	{Text: "unauthorizedpurchase", Mode: AlnumOnly},
	{Text: "verifyyouraccount", Mode: AlnumOnly},
	{Text: "verifyyouridentity", Mode: AlnumOnly},
	{Text: "confirmyouridentity", Mode: AlnumOnly},
	{Text: "confirmyouraccount", Mode: AlnumOnly},
	{Text: "accountsuspended", Mode: AlnumOnly},
	{Text: "accounthasbeensuspended", Mode: AlnumOnly},
	{Text: "accountlocked", Mode: AlnumOnly},
	{Text: "accounthasbeenlocked", Mode: AlnumOnly},
	{Text: "accountfrozen", Mode: AlnumOnly},
	{Text: "accounthasbeenfrozen", Mode: AlnumOnly},
	{Text: "avoidsuspension", Mode: AlnumOnly},
	{Text: "restoreaccess", Mode: AlnumOnly},
	{Text: "reactivateyouraccount", Mode: AlnumOnly},
	{Text: "updateyourpayment", Mode: AlnumOnly},
	{Text: "updateyourbilling", Mode: AlnumOnly},
	{Text: "confirmyourpayment", Mode: AlnumOnly},
	{Text: "paymentdeclined", Mode: AlnumOnly},
	{Text: "billingproblem", Mode: AlnumOnly},
	{Text: "unpaidtoll", Mode: AlnumOnly},
	{Text: "tollbalance", Mode: AlnumOnly},
	{Text: "outstandingtoll", Mode: AlnumOnly},
	{Text: "unpaidinvoice", Mode: AlnumOnly},
	{Text: "redeliveryfee", Mode: AlnumOnly},
	{Text: "unabletodeliver", Mode: AlnumOnly},
	{Text: "deliveryattemptfailed", Mode: AlnumOnly},
	{Text: "packageonhold", Mode: AlnumOnly},
	{Text: "customsfee", Mode: AlnumOnly},
	{Text: "claimyourprize", Mode: AlnumOnly},
	{Text: "claimyourreward", Mode: AlnumOnly},
	{Text: "youhavewon", Mode: AlnumOnly},
	{Text: "youvewon", Mode: AlnumOnly},
	{Text: "cashprize", Mode: AlnumOnly},
	{Text: "lotterywinner", Mode: AlnumOnly},
	{Text: "taxrefund", Mode: AlnumOnly},
	{Text: "stimuluspayment", Mode: AlnumOnly},
	{Text: "preapprovedloan", Mode: AlnumOnly},
	{Text: "guaranteedreturn", Mode: AlnumOnly},
	{Text: "cryptoinvestment", Mode: AlnumOnly},
	{Text: "doubleyourmoney", Mode: AlnumOnly},
	{Text: "resetyourpassword", Mode: AlnumOnly},
	{Text: "passwordexpires", Mode: AlnumOnly},
	{Text: "appleidlocked", Mode: AlnumOnly},
	{Text: "securityalert", Mode: AlnumOnly},
	{Text: "clickthelink", Mode: AlnumOnly},
	{Text: "tapthelink", Mode: AlnumOnly},
	{Text: "dearcustomer", Mode: AlphaOnly},
	{Text: "dearvaluedcustomer", Mode: AlphaOnly},
	{Text: "dearaccountholder", Mode: AlphaOnly},
	{Text: "kindlyverify", Mode: AlphaOnly},
	{Text: "kindlyconfirm", Mode: AlphaOnly},
	{Text: "kindlyupdate", Mode: AlphaOnly},
}
