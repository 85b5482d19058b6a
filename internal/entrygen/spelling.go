package entrygen

import (
	"regexp"
	"strings"
	"unicode"
)

// britishSpellings maps American spellings to British ones. Words whose
// British form depends on part of speech (practice, license, program, tire)
// are left out.
var britishSpellings = map[string]string{
	"color": "colour", "colors": "colours", "colored": "coloured", "colorful": "colourful", "coloring": "colouring",
	"favorite": "favourite", "favorites": "favourites", "favor": "favour", "favors": "favours", "favorable": "favourable",
	"behavior": "behaviour", "behaviors": "behaviours",
	"honor": "honour", "honors": "honours", "honored": "honoured", "honorable": "honourable",
	"neighbor": "neighbour", "neighbors": "neighbours", "neighborhood": "neighbourhood",
	"flavor": "flavour", "flavors": "flavours",
	"humor": "humour", "labor": "labour", "rumor": "rumour", "rumors": "rumours",
	"harbor": "harbour", "harbors": "harbours", "vapor": "vapour", "valor": "valour", "odor": "odour",
	"center": "centre", "centers": "centres", "theater": "theatre", "theaters": "theatres",
	"liter": "litre", "liters": "litres", "fiber": "fibre", "somber": "sombre", "meager": "meagre",
	"gray": "grey", "mom": "mum", "moms": "mums",
	"traveled": "travelled", "traveling": "travelling", "traveler": "traveller", "travelers": "travellers",
	"canceled": "cancelled", "canceling": "cancelling", "labeled": "labelled", "modeling": "modelling",
	"jewelry": "jewellery", "catalog": "catalogue", "dialog": "dialogue",
	"analyze": "analyse", "analyzed": "analysed", "analyzing": "analysing", "paralyze": "paralyse",
	"defense": "defence", "offense": "offence",
	"aluminum": "aluminium", "plow": "plough", "mold": "mould", "cozy": "cosy",
	"pajamas": "pyjamas", "skeptical": "sceptical", "maneuver": "manoeuvre",
	"aging": "ageing", "judgment": "judgement", "fulfill": "fulfil", "enroll": "enrol",
}

// izeExceptions keep their z in British English.
var izeExceptions = map[string]bool{
	"size": true, "sized": true, "sizes": true, "resize": true, "oversize": true, "oversized": true, "downsize": true,
	"prize": true, "prized": true, "prizes": true, "seize": true, "seized": true, "seizes": true, "seizing": true,
	"capsize": true, "capsized": true, "maize": true, "baize": true, "citizen": true, "citizens": true,
}

var (
	wordRe = regexp.MustCompile(`[A-Za-z]+`)
	izeRe  = regexp.MustCompile(`^([a-z]{3,})iz(e|es|ed|ing|ation|ations|er|ers)$`)
)

// BritishSpelling rewrites American spellings in s, keeping each word's capitalisation.
func BritishSpelling(s string) string {
	return britishSpelling(s, nil)
}

// britishSpelling is BritishSpelling leaving alone every word that keep
// matches in full, such as the forms of a headword spelt with -ize.
func britishSpelling(s string, keep *regexp.Regexp) string {
	var b strings.Builder
	last := 0
	for _, loc := range wordRe.FindAllStringIndex(s, -1) {
		b.WriteString(s[last:loc[0]])
		b.WriteString(britishWord(s[loc[0]:loc[1]], keep, sentenceStart(s[:loc[0]])))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func britishWord(w string, keep *regexp.Regexp, initial bool) string {
	if keep != nil && keep.FindString(w) == w {
		return w
	}
	lower := strings.ToLower(w)
	if br, ok := britishSpellings[lower]; ok {
		return matchCase(w, br)
	}
	if izeExceptions[lower] {
		return w
	}
	// A capitalised word inside a sentence is a name (Belize, Fitzgerald).
	if !initial && unicode.IsUpper(rune(w[0])) {
		return w
	}
	if m := izeRe.FindStringSubmatch(lower); m != nil {
		return matchCase(w, m[1]+"is"+m[2])
	}
	return w
}

// sentenceStart reports whether a word preceded by before opens a sentence.
func sentenceStart(before string) bool {
	t := strings.TrimRight(before, " \t\n\"'“‘(")
	return t == "" || strings.HasSuffix(t, ".") || strings.HasSuffix(t, "!") || strings.HasSuffix(t, "?")
}

// matchCase gives repl the capitalisation pattern of orig.
func matchCase(orig, repl string) string {
	switch {
	case orig == strings.ToUpper(orig) && len(orig) > 1:
		return strings.ToUpper(repl)
	case unicode.IsUpper(rune(orig[0])):
		return strings.ToUpper(repl[:1]) + repl[1:]
	}
	return repl
}
