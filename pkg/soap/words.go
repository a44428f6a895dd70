package soap

// Kind classifies a replacement table entry.
type Kind uint8

const (
	KindOffensive Kind = iota + 1
	KindRotbrain
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindOffensive:
		return "offensive"
	case KindRotbrain:
		return "rotbrain"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Entry is a replacement table value. An empty Replacement masks the token
// with asterisks of the same length.
type Entry struct {
	Replacement string
	Kind        Kind
}

// offensiveWords are masked. Multi-word phrases belong in Filter patterns since
// sanitizing matches single tokens only.
var offensiveWords = []string{
	"apeshit", "arse", "arsehole", "ass", "asshole", "assmunch", "bastard",
	"beaner", "beaners", "bitch", "bitches", "blowjob", "bollocks", "boner",
	"bullshit", "bunghole", "butthole", "camwhore", "circlejerk", "clit",
	"clusterfuck", "cock", "cocks", "coon", "coons", "cum", "cunt", "cunts",
	"dick", "dickhead", "dildo", "dipshit", "douchebag", "faggot", "fuck",
	"fucked", "fucker", "fuckin", "fucking", "fucks", "fucktard", "fucktards",
	"goddamn", "handjob", "jackass", "jizz", "kike", "motherfucker",
	"motherfucking", "nigga", "nigger", "paki", "piss", "pissed", "prick",
	"pussy", "raghead", "rimjob", "shit", "shithead", "shits", "shitty",
	"skank", "slut", "spic", "spunk", "tosser", "towelhead", "tranny", "twat",
	"wank", "wanker", "wetback", "whore",
}

// rotbrainWords map slang to plain words. Replacements are never keys
// themselves so sanitizing twice changes nothing.
var rotbrainWords = map[string]string{
	"rizz":      "charisma",
	"rizzler":   "charmer",
	"skibidi":   "dance",
	"rot-brain": "stupid",
	"rotbrain":  "stupid",
	"brainrot":  "stupid",
	"yeet":      "throw",
	"yeeted":    "threw",
	"sus":       "suspicious",
	"bruh":      "brother",
	"fam":       "friends",
	"lowkey":    "somewhat",
	"highkey":   "very",
	"nocap":     "honestly",
	"yolo":      "you only live once",
	"gyatt":     "wow",
	"delulu":    "delusional",
	"finna":     "about to",
	"bussin":    "delicious",
	"cheugy":    "outdated",
	"janky":     "shoddy",
	"gucci":     "good",
	"zaddy":     "attractive man",
	"sheesh":    "wow",
	"npc":       "conformist",
	"lol":       "that is funny",
	"lmao":      "that is funny",
	"omg":       "oh my goodness",
	"brb":       "be right back",
	"idk":       "no idea",
	"tbh":       "to be honest",
	"smh":       "disappointing",
}

// leetMap is applied per byte before lookup.
var leetMap = [256]byte{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'8': 'b',
	'9': 'g',
	'@': 'a',
	'$': 's',
}

// leetWords are the words a leet spelling may decode to when its only leet
// characters sit at the edges ("1s", "s0", "th3"). Any other edge-only core is
// treated as an identifier.
var leetWords = map[string]bool{
	"a": true, "all": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "do": true, "for": true, "go": true, "if": true,
	"in": true, "is": true, "it": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "so": true, "the": true, "to": true, "too": true,
	"was": true, "yes": true,
}

func builtinTable() map[string]Entry {
	table := make(map[string]Entry, len(offensiveWords)+len(rotbrainWords))
	for _, w := range offensiveWords {
		table[w] = Entry{Kind: KindOffensive}
	}
	for k, v := range rotbrainWords {
		table[k] = Entry{Replacement: v, Kind: KindRotbrain}
	}
	return table
}
