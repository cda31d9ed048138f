package nlp

import "strings"

// pos.go - Coarse part-of-speech tagging from word lists and suffixes.

var pronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true, "myself": true,
	"we": true, "us": true, "our": true, "ours": true, "ourselves": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
	"he": true, "him": true, "his": true, "himself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"it": true, "its": true, "itself": true,
	"they": true, "them": true, "their": true, "theirs": true, "themselves": true,
	"this": true, "that": true, "these": true, "those": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"something": true, "anything": true, "nothing": true, "everything": true,
	"someone": true, "anyone": true, "everyone": true, "one": true,
}

var determiners = map[string]bool{
	"a": true, "an": true, "the": true, "each": true, "every": true,
	"some": true, "any": true, "no": true, "both": true, "either": true,
	"neither": true, "all": true, "another": true, "such": true,
}

var adpositions = map[string]bool{
	"of": true, "in": true, "on": true, "at": true, "by": true, "for": true,
	"with": true, "about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true, "above": true,
	"below": true, "to": true, "from": true, "up": true, "down": true,
	"over": true, "under": true, "within": true, "without": true, "throughout": true,
	"across": true, "toward": true, "towards": true, "upon": true, "among": true,
}

var coordConj = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true, "so": true, "yet": true,
}

var subordConj = map[string]bool{
	"because": true, "although": true, "though": true, "while": true,
	"whereas": true, "if": true, "unless": true, "since": true, "when": true,
	"whenever": true, "where": true, "as": true, "until": true,
}

var auxiliaries = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true,
	"has": true, "have": true, "had": true, "having": true,
	"do": true, "does": true, "did": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
}

// commonVerbs covers verbs frequent in literary analysis that suffix
// rules would miss.
var commonVerbs = map[string]bool{
	"show": true, "shows": true, "showed": true, "shown": true,
	"use": true, "uses": true, "used": true,
	"make": true, "makes": true, "made": true,
	"create": true, "creates": true, "created": true,
	"reveal": true, "reveals": true, "revealed": true,
	"suggest": true, "suggests": true, "suggested": true,
	"convey": true, "conveys": true, "conveyed": true,
	"demonstrate": true, "demonstrates": true, "demonstrated": true,
	"argue": true, "argues": true, "argued": true,
	"critique": true, "critiques": true, "critiqued": true,
	"mock": true, "mocks": true, "mocked": true,
	"depict": true, "depicts": true, "depicted": true,
	"portray": true, "portrays": true, "portrayed": true,
	"emphasize": true, "emphasizes": true, "emphasized": true,
	"highlight": true, "highlights": true, "highlighted": true,
	"illustrate": true, "illustrates": true, "illustrated": true,
	"develop": true, "develops": true, "developed": true,
	"explore": true, "explores": true, "explored": true,
	"express": true, "expresses": true, "expressed": true,
	"present": true, "presents": true, "presented": true,
	"employ": true, "employs": true, "employed": true,
	"see": true, "sees": true, "saw": true, "seen": true,
	"say": true, "says": true, "said": true,
	"write": true, "writes": true, "wrote": true, "written": true,
	"state": true, "states": true, "stated": true,
	"describe": true, "describes": true, "described": true,
	"get": true, "gets": true, "got": true,
	"go": true, "goes": true, "went": true, "gone": true,
	"become": true, "becomes": true, "became": true,
	"seem": true, "seems": true, "seemed": true,
	"feel": true, "feels": true, "felt": true,
	"think": true, "thinks": true, "thought": true,
	"know": true, "knows": true, "knew": true, "known": true,
}

var commonAdverbs = map[string]bool{
	"very": true, "really": true, "also": true, "however": true,
	"therefore": true, "thus": true, "hence": true, "thereby": true,
	"furthermore": true, "moreover": true, "additionally": true,
	"clearly": true, "ultimately": true, "finally": true, "firstly": true,
	"secondly": true, "lastly": true, "often": true, "always": true,
	"never": true, "not": true, "only": true, "even": true, "just": true,
	"then": true, "again": true, "here": true, "there": true,
}

var commonAdjectives = map[string]bool{
	"good": true, "bad": true, "great": true, "strong": true, "weak": true,
	"vivid": true, "dark": true, "light": true, "big": true, "small": true,
	"important": true, "significant": true, "major": true, "minor": true,
	"biting": true, "subtle": true, "harsh": true, "gentle": true,
	"clear": true, "deep": true, "rich": true, "stark": true, "bleak": true,
	"powerful": true, "effective": true, "striking": true, "haunting": true,
	"first": true, "second": true, "third": true, "final": true, "last": true,
	"young": true, "old": true, "new": true, "main": true, "central": true,
}

var numberWords = map[string]bool{
	"zero": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "six": true, "seven": true, "eight": true, "nine": true,
	"ten": true, "eleven": true, "twelve": true, "hundred": true, "thousand": true,
}

var adjSuffixes = []string{
	"ous", "ful", "ive", "ical", "ic", "able", "ible", "less", "ish", "ant", "ent",
}

// tagPOS assigns a coarse POS tag to a token. Punctuation tokens are
// tagged during tokenization and pass through unchanged.
func tagPOS(t *Token) string {
	if t.POS == POSPunct {
		return POSPunct
	}
	w := lowerASCII(t.Text)
	if isNumeric(w) || numberWords[w] {
		return POSNum
	}
	if strings.Contains(w, "'") {
		// Contractions act as verbal units ("don't", "it's").
		return POSVerb
	}
	switch {
	case pronouns[w]:
		return POSPron
	case determiners[w]:
		return POSDet
	case auxiliaries[w]:
		return POSAux
	case adpositions[w]:
		return POSAdp
	case coordConj[w]:
		return POSCconj
	case subordConj[w]:
		return POSSconj
	case commonVerbs[w]:
		return POSVerb
	case commonAdverbs[w]:
		return POSAdv
	case commonAdjectives[w]:
		return POSAdj
	}
	if strings.HasSuffix(w, "ly") && len(w) > 4 {
		return POSAdv
	}
	for _, suf := range adjSuffixes {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+2 {
			return POSAdj
		}
	}
	if strings.HasSuffix(w, "ing") && len(w) > 5 {
		return POSVerb
	}
	return POSNoun
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != ',' && c != '.' {
			return false
		}
	}
	return s[0] >= '0' && s[0] <= '9'
}
