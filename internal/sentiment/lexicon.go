package sentiment

// lexicon maps lower-cased tokens to signed valence weights in [-5, 5],
// AFINN style. Only tokens plausible in wellness check-in text are carried.
var lexicon = map[string]int{
	// positive
	"amazing":     4,
	"awesome":     4,
	"beautiful":   3,
	"best":        3,
	"better":      2,
	"blessed":     3,
	"calm":        2,
	"cheerful":    2,
	"comfortable": 2,
	"confident":   2,
	"content":     2,
	"eager":       2,
	"easy":        1,
	"energetic":   2,
	"energized":   2,
	"enjoy":       2,
	"enjoyed":     2,
	"excellent":   3,
	"excited":     3,
	"fantastic":   4,
	"fine":        2,
	"fit":         1,
	"focused":     2,
	"fresh":       1,
	"friendly":    2,
	"fun":         4,
	"glad":        3,
	"good":        3,
	"grateful":    3,
	"great":       3,
	"happy":       3,
	"healthy":     2,
	"helpful":     2,
	"hopeful":     2,
	"joy":         3,
	"joyful":      3,
	"kind":        2,
	"love":        3,
	"loved":       3,
	"motivated":   2,
	"nice":        3,
	"optimistic":  2,
	"peaceful":    2,
	"perfect":     3,
	"pleasant":    3,
	"positive":    2,
	"productive":  2,
	"proud":       2,
	"refreshed":   2,
	"relaxed":     2,
	"relieved":    2,
	"rested":      2,
	"safe":        1,
	"satisfied":   2,
	"smooth":      1,
	"strong":      2,
	"supported":   2,
	"thankful":    2,
	"thrilled":    5,
	"well":        2,
	"wonderful":   4,

	// negative
	"afraid":      -2,
	"alone":       -2,
	"angry":       -3,
	"annoyed":     -2,
	"anxious":     -2,
	"awful":       -3,
	"bad":         -3,
	"bored":       -2,
	"broken":      -1,
	"cry":         -1,
	"crying":      -2,
	"depressed":   -2,
	"difficult":   -1,
	"disappointed": -2,
	"drained":     -2,
	"dread":       -2,
	"exhausted":   -2,
	"exhausting":  -2,
	"fear":        -2,
	"frustrated":  -2,
	"grief":       -2,
	"hard":        -1,
	"hate":        -3,
	"helpless":    -2,
	"homesick":    -2,
	"hopeless":    -2,
	"hurt":        -2,
	"irritated":   -3,
	"isolated":    -1,
	"lonely":      -2,
	"lost":        -3,
	"miserable":   -3,
	"nervous":     -2,
	"numb":        -1,
	"overwhelmed": -2,
	"pain":        -2,
	"panic":       -3,
	"panicked":    -3,
	"poor":        -2,
	"sad":         -2,
	"scared":      -2,
	"sick":        -2,
	"sleepless":   -2,
	"sore":        -1,
	"stress":      -1,
	"stressed":    -2,
	"struggling":  -2,
	"stuck":       -2,
	"suicide":     -2,
	"terrible":    -3,
	"tense":       -2,
	"tired":       -2,
	"unhappy":     -2,
	"unsafe":      -2,
	"upset":       -2,
	"useless":     -2,
	"weak":        -2,
	"worried":     -3,
	"worry":       -3,
	"worse":       -3,
	"worst":       -3,
	"worthless":   -2,
}
