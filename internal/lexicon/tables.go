package lexicon

// Static lexical tables. Loaded once, never mutated; safe for
// unsynchronized concurrent reads.

// Pair is one substitution entry. Tables that drive per-key change
// records are ordered slices so the record order is deterministic.
type Pair struct {
	From string
	To   string
}

// CommonTypos maps frequent misspellings to their corrections.
// A hit here always wins over fuzzy scoring.
var CommonTypos = map[string]string{
	"teh":        "the",
	"wich":       "which",
	"recieve":    "receive",
	"occured":    "occurred",
	"seperate":   "separate",
	"definately": "definitely",
	"ocassion":   "occasion",
	"occassion":  "occasion",
	"neccessary": "necessary",
	"goverment":  "government",
	"enviroment": "environment",
	"calender":   "calendar",
	"restaurent": "restaurant",
	"adress":     "address",
	"exellent":   "excellent",
	"existance":  "existence",
	"diferent":   "different",
	"untill":     "until",
	"alot":       "a lot",
	"thier":      "their",
	"reccommend": "recommend",
	"sucess":     "success",
	"becuase":    "because",
}

// ContextShorthand maps texting shorthand to full words. Matched as a
// whole token only.
var ContextShorthand = map[string]string{
	"ur":   "your",
	"u":    "you",
	"r":    "are",
	"b4":   "before",
	"thru": "through",
	"gr8":  "great",
}

// HomophoneGroups are closed sets of sound-alike words. Groups of size
// one exist only to record membership; disambiguation cues live in the
// homophone checker.
var HomophoneGroups = [][]string{
	{"to", "too", "two"},
	{"their", "there", "they're"},
	{"your", "you're"},
	{"its", "it's"},
	{"weather", "whether"},
	{"where", "wear", "ware"},
	{"would", "wood"},
	{"right", "write"},
	{"know", "no"},
	{"new", "knew"},
	{"break", "brake"},
	{"see", "sea"},
}

// InformalPhrases maps contractions and slang to formal equivalents.
var InformalPhrases = []Pair{
	{"gonna", "going to"},
	{"wanna", "want to"},
	{"gotta", "have to"},
	{"kinda", "kind of"},
	{"ain't", "is not"},
	{"im", "i am"},
}

// WordyPhrases maps verbose multi-word phrases to concise forms.
var WordyPhrases = []Pair{
	{"in order to", "to"},
	{"due to the fact that", "because"},
	{"at this point in time", "now"},
	{"for the purpose of", "to"},
}

// RewritePhrases is the small synonym set behind the heuristic rewrite
// pass that derives the improved text.
var RewritePhrases = []Pair{
	{"go to", "visit"},
	{"went to", "visited"},
	{"buy", "purchase"},
	{"get", "obtain"},
	{"good", "favorable"},
	{"bad", "unfavorable"},
}

// ClaritySynonyms replaces vague verbs with precise alternatives.
var ClaritySynonyms = []Pair{
	{"use", "utilize"},
	{"get", "obtain"},
	{"put", "place"},
	{"make", "create"},
	{"go", "proceed"},
	{"come", "arrive"},
	{"see", "observe"},
	{"think", "consider"},
	{"know", "understand"},
	{"want", "desire"},
	{"like", "appreciate"},
	{"help", "assist"},
	{"start", "commence"},
	{"end", "conclude"},
	{"stop", "cease"},
	{"try", "attempt"},
	{"find", "discover"},
	{"give", "provide"},
	{"take", "acquire"},
	{"show", "demonstrate"},
	{"ask", "inquire"},
	{"say", "state"},
	{"tell", "inform"},
	{"do", "perform"},
	{"happen", "occur"},
}

// ProfessionalSynonyms upgrades casual vocabulary for professional tone.
var ProfessionalSynonyms = []Pair{
	{"good", "satisfactory"},
	{"bad", "unsatisfactory"},
	{"nice", "favorable"},
	{"really", "considerably"},
	{"very", "highly"},
	{"big", "substantial"},
	{"small", "minimal"},
	{"fast", "expeditious"},
	{"slow", "gradual"},
	{"easy", "straightforward"},
	{"hard", "challenging"},
	{"many", "numerous"},
	{"few", "limited"},
	{"lot", "considerable amount"},
	{"thing", "matter"},
	{"stuff", "material"},
	{"guy", "individual"},
	{"girl", "individual"},
	{"kid", "child"},
	{"old", "senior"},
}

// CasualSynonyms is the inverse direction: formal vocabulary down to
// everyday words.
var CasualSynonyms = []Pair{
	{"utilize", "use"},
	{"obtain", "get"},
	{"place", "put"},
	{"create", "make"},
	{"proceed", "go"},
	{"commence", "start"},
	{"conclude", "end"},
	{"cease", "stop"},
	{"attempt", "try"},
	{"discover", "find"},
	{"provide", "give"},
	{"acquire", "take"},
	{"demonstrate", "show"},
	{"inquire", "ask"},
	{"state", "say"},
	{"inform", "tell"},
	{"perform", "do"},
	{"occur", "happen"},
}

// RedundantPhrases are regex patterns for tautological phrases and
// their tightened replacements.
var RedundantPhrases = []Pair{
	{`absolutely\s+essential`, "essential"},
	{`final\s+conclusion`, "conclusion"},
	{`past\s+history`, "history"},
	{`true\s+fact`, "fact"},
	{`completely\s+finished`, "finished"},
	{`exact\s+same`, "same"},
	{`very\s+unique`, "unique"},
	{`free\s+gift`, "gift"},
	{`false\s+pretense`, "pretense"},
}

// WeakConstructions are regex patterns for hedging constructions; the
// replacement may reference capture groups.
var WeakConstructions = []Pair{
	{`there\s+is\s+a\s+(\w+)\s+that`, "The $1 that"},
	{`it\s+is\s+important\s+to\s+note\s+that`, "Note that"},
	{`in\s+my\s+opinion`, "I believe"},
	{`it\s+seems\s+that`, "Apparently"},
}

// TimeMarkers signal past-time context for the tense rule.
var TimeMarkers = map[string]bool{
	"yesterday": true,
	"ago":       true,
	"last":      true,
}

// ThirdSingularPronouns are subjects that demand a 3rd-person-singular
// verb form.
var ThirdSingularPronouns = map[string]bool{
	"he":      true,
	"she":     true,
	"it":      true,
	"this":    true,
	"that":    true,
	"someone": true,
	"anyone":  true,
}
