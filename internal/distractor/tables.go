// internal/distractor/tables.go
//
// Static orthographic confusion tables. Process-wide constant data: every
// table here is read-only after init and safe for concurrent use.
//
// The tables encode how English spelling actually goes wrong: commonly
// confused vowel patterns ("ie"/"ei"), silent-letter digraphs learners drop,
// suffixes that sound alike, and letters that share a sound.

package distractor

// patternSwap rewrites the first occurrence of From into To.
type patternSwap struct {
	From string
	To   string
}

// vowelSwaps lists vowel and vowel-pair confusions, tried in order against
// the first occurrence in the word. Multi-letter patterns come first so a
// word containing "ie" yields "ei" before a bare "e" swap fires.
var vowelSwaps = []patternSwap{
	{"ie", "ei"}, {"ei", "ie"},
	{"ea", "ee"}, {"ee", "ea"},
	{"ou", "ow"}, {"ow", "ou"},
	{"ai", "ay"}, {"ay", "ai"},
	{"au", "aw"}, {"aw", "au"},
	{"a", "e"}, {"e", "a"},
	{"o", "a"}, {"a", "o"},
}

// silentSwaps simplify silent-letter digraphs the way learners misspell them.
var silentSwaps = []patternSwap{
	{"kn", "n"},
	{"wr", "r"},
	{"mb", "m"},
	{"bt", "t"},
	{"ght", "gt"},
	{"dge", "ge"},
	{"tch", "ch"},
}

// endingSwaps are suffix confusions applied only when the word actually ends
// with the pattern.
var endingSwaps = []patternSwap{
	{"ful", "full"}, {"full", "ful"},
	{"tion", "sion"}, {"sion", "tion"},
	{"able", "ible"}, {"ible", "able"},
	{"ant", "ent"}, {"ent", "ant"},
	{"ous", "ious"}, {"ious", "ous"},
	{"ance", "ence"}, {"ence", "ance"},
	{"ary", "ery"}, {"ery", "ary"},
	{"ize", "ise"}, {"ise", "ize"},
}

// phoneticSwaps substitute letters that share a sound.
var phoneticSwaps = []patternSwap{
	{"ph", "f"}, {"f", "ph"},
	{"c", "k"}, {"k", "c"},
	{"s", "c"}, {"c", "s"},
	{"j", "g"}, {"g", "j"},
	{"z", "s"}, {"s", "z"},
	{"x", "cs"}, {"cs", "x"},
}

// wrongSuffixTable maps a correct suffix (as produced by splitSuffix, so 1-3
// letters, plus a few longer entries kept for remote-shaped inputs) to
// believable wrong alternatives.
var wrongSuffixTable = map[string][]string{
	"ion":  {"ian", "eon", "oin"},
	"ing":  {"eng", "inng", "ign"},
	"est":  {"ist", "ast", "esst"},
	"ous":  {"ius", "ose", "uos"},
	"ful":  {"full", "fal", "fil"},
	"ble":  {"bel", "bal", "bil"},
	"ent":  {"ant", "int", "emt"},
	"ant":  {"ent", "aunt", "and"},
	"ght":  {"gth", "te", "ht"},
	"ess":  {"es", "iss", "esse"},
	"ary":  {"ery", "airy", "arry"},
	"ize":  {"ise", "yze", "izze"},
	"ed":   {"t", "de", "id"},
	"er":   {"or", "ar", "re"},
	"ly":   {"ley", "lly", "li"},
	"al":   {"el", "le", "all"},
	"ty":   {"ti", "tey", "tie"},
	"cy":   {"cee", "sy", "ci"},
	"tion": {"sion", "cion", "tian"},
	"sion": {"tion", "cion", "sian"},
	"able": {"ible", "eable", "uble"},
	"ible": {"able", "eble", "ibel"},
}

// genericSuffixPool pads out suffix options when neither the lookup table nor
// mutation of the suffix itself yields enough distinct candidates.
var genericSuffixPool = []string{"ing", "er", "ly", "est", "ment"}

// problemDigraphs are letter pairs learners typically stumble over, in
// preference order for fill-in-the-blank position selection.
var problemDigraphs = []string{
	"ie", "ei", "ou", "ea", "oo", "ee",
	"ss", "ll", "nn", "mm", "tt",
	"ch", "sh", "th", "ph",
}

// pairAlternatives maps a blanked letter pair to believable wrong pairs.
// All alternatives keep the two-letter width so the blanked word still reads
// naturally with any option substituted in.
var pairAlternatives = map[string][]string{
	"ie": {"ei", "ee", "ea"},
	"ei": {"ie", "ee", "ea"},
	"ou": {"ow", "oo", "ua"},
	"ea": {"ee", "ae", "ia"},
	"oo": {"ou", "uo", "oe"},
	"ee": {"ea", "ie", "ei"},
	"ss": {"sc", "zz", "sz"},
	"ll": {"le", "lt", "lb"},
	"nn": {"mn", "nm", "gn"},
	"mm": {"mn", "nm", "mb"},
	"tt": {"td", "dt", "th"},
	"ch": {"sh", "ck", "tj"},
	"sh": {"ch", "sc", "zh"},
	"th": {"ht", "td", "fh"},
	"ph": {"pf", "fp", "ff"},
}

// confusableLetters maps single letters to letters they are commonly written
// as, used when deriving wrong pairs outside pairAlternatives.
var confusableLetters = map[byte][]byte{
	'a': {'e', 'o', 'u'},
	'e': {'a', 'i', 'o'},
	'i': {'e', 'y', 'a'},
	'o': {'u', 'a', 'e'},
	'u': {'o', 'a', 'e'},
	'c': {'k', 's'},
	'k': {'c', 'q'},
	's': {'c', 'z'},
	'z': {'s', 'x'},
	'f': {'v', 'p'},
	'g': {'j', 'q'},
	'j': {'g', 'y'},
	'b': {'p', 'd'},
	'd': {'b', 't'},
	't': {'d', 'p'},
	'm': {'n', 'w'},
	'n': {'m', 'r'},
}

const vowels = "aeiou"

// isVowel reports whether b is a lowercase ASCII vowel.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
