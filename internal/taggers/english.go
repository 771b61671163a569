package taggers

// closedClass covers English function words and punctuation.
var closedClass = Lexicon{
	"a": "DT", "an": "DT", "the": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "each": "DT", "every": "DT", "some": "DT",
	"any": "DT", "no": "DT", "all": "DT", "both": "DT", "another": "DT",
	"either": "DT", "neither": "DT",

	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "about": "IN", "into": "IN", "over": "IN",
	"under": "IN", "after": "IN", "before": "IN", "since": "IN", "until": "IN",
	"during": "IN", "through": "IN", "between": "IN", "against": "IN",
	"among": "IN", "upon": "IN", "within": "IN", "without": "IN",
	"across": "IN", "behind": "IN", "beyond": "IN", "near": "IN",
	"toward": "IN", "towards": "IN", "per": "IN", "via": "IN", "while": "IN",
	"although": "IN", "because": "IN", "though": "IN", "if": "IN",
	"whether": "IN", "than": "IN", "as": "IN", "like": "IN", "despite": "IN",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",

	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP",
	"them": "PRP", "her": "PRP", "himself": "PRP", "herself": "PRP",
	"itself": "PRP", "themselves": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",

	"who": "WP", "whom": "WP", "what": "WP", "whose": "WP$", "which": "WDT",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",

	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD", "ca": "MD",

	"is": "VBZ", "has": "VBZ", "does": "VBZ",
	"are": "VBP", "am": "VBP", "have": "VBP", "do": "VBP",
	"was": "VBD", "were": "VBD", "had": "VBD", "did": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",

	"to": "TO", "there": "EX", "not": "RB", "n't": "RB", "never": "RB",
	"also": "RB", "very": "RB", "too": "RB", "only": "RB", "then": "RB",
	"just": "RB", "still": "RB", "already": "RB", "even": "RB", "so": "RB",
	"'s": "POS", "'re": "VBP", "'ve": "VBP", "'ll": "MD", "'d": "MD", "'m": "VBP",

	".": ".", "?": ".", "!": ".", ",": ",", ";": ":", ":": ":", "...": ":",
	"(": "(", ")": ")", "[": "(", "]": ")", "{": "(", "}": ")",
	"\"": "''", "'": "''", "`": "``", "$": "$", "#": "#",
}

// suffixRules guess open-class tags from word shape, most specific first.
var suffixRules = Regexp{
	MustRule(`[-+]?\d+(?:[.,:/-]\d+)*`, "CD"),
	MustRule(`(?:\d+(?:st|nd|rd|th))`, "JJ"),
	MustRule(`.+ing`, "VBG"),
	MustRule(`.+ed`, "VBD"),
	MustRule(`.+ly`, "RB"),
	MustRule(`.+(?:ness|ment|tion|sion|ity|ship|ance|ence|ism|ist|ss)`, "NN"),
	MustRule(`.+(?:ous|ful|ive|able|ible|al|ic|ish|less|ary)`, "JJ"),
	MustRule(`.+est`, "JJS"),
	MustRule(`.+s`, "NNS"),
	MustRule(`[^\p{L}\p{N}]+`, "SYM"),
}

// NewEnglish returns the default English chain: the perceptron model,
// then the closed-class lexicon and suffix rules for tokens the model
// leaves untagged, then defaultTag (DefaultTag when empty).
func NewEnglish(defaultTag string) *Chain {
	return NewChain(defaultTag, NewPerceptron(), closedClass, suffixRules)
}

// NewRules returns the chain without the perceptron model.
func NewRules(defaultTag string) *Chain {
	return NewChain(defaultTag, closedClass, suffixRules)
}
