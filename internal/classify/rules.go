package classify

// Rule routes any name containing one of Keywords to Category.
type Rule struct {
	Keywords []string
	Category CategoryPath
}

func rule(category string, keywords ...string) Rule {
	return Rule{Keywords: keywords, Category: ParseCategory(category)}
}

// DefaultRules is the built-in ordered rule table. First match wins.
var DefaultRules = []Rule{
	// drum one-shots
	rule("Drums/Kicks", "kick", "bd", "subkick"),
	rule("Drums/Snares", "snare", "rimshot", "rim", "shot"),
	rule("Drums/Claps", "clap"),
	rule("Drums/Hats", "hi hat", "hi-hat", "hihat", "hat"),
	rule("Drums/Toms", "tom"),
	rule("Drums/Cymbals", "ride", "crash", "splash", "china", "cymbal"),
	rule("Drums/Percussion", "shaker", "tamb", "tambo", "tambourine", "bongo", "conga",
		"timbale", "cowbell", "clave", "guiro", "agogo", "block"),

	// drum loops and breaks
	rule("Loops/Drums/Breaks", "break", "breakbeat", "amen", "funky drummer"),
	rule("Loops/Drums/Tops", "top loop", "tops"),
	rule("Loops/Drums", "drum loop", "beat loop", "beat", "loop drums"),

	// bass
	rule("Bass/808", "808"),
	rule("Bass", "bass", "sub"),

	// synths and keys
	rule("Synth/Pads", "pad"),
	rule("Synth/Leads", "lead"),
	rule("Synth/Plucks", "pluck"),
	rule("Synth/Arps", "arpeggio", "arp"),
	rule("Synth", "synth"),
	rule("Keys", "piano", "keys", "rhodes", "wurlitzer", "organ", "epiano"),

	// guitars and strings
	rule("Guitar", "guitar", "gtr"),
	rule("Strings", "violin", "viola", "cello", "strings", "pizzicato"),

	// brass and winds
	rule("Brass", "sax", "saxophone", "trumpet", "trombone", "horn", "brass"),
	rule("Winds", "flute", "clarinet", "oboe", "bassoon", "woodwind"),

	rule("Vocals", "vocal", "vox", "choir", "chant", "adlib", "ad-lib"),

	// fx and textures
	rule("FX", "fx", "sfx", "sweep", "riser", "rise", "downlifter", "downer", "impact",
		"boom", "whoosh", "glitch", "stutter"),
	rule("Textures Foley", "noise", "texture", "atmo", "ambience", "ambient", "drone", "foley", "field"),

	// generic catch-alls
	rule("Loops/Misc", "loop"),
	rule("One Shots/Misc", "one shot", "oneshot", "shot"),
}

var (
	// LoopsFallback is assigned when no rule matched but the name mentions a loop.
	LoopsFallback = CategoryPath{"Loops", "Misc"}
	// Unsorted is the catch-all category.
	Unsorted = CategoryPath{"Unsorted"}
)
