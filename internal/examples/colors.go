package examples

import (
	"regexp"
	"strings"

	"github.com/aeryon-dev/semchart/grammar"
)

// colorNames lists the W3C HTML color names in CamelCase form, the same
// table colors.py derives its word set from. The hex codes that table
// carried alongside each name are dropped here along with the rgb
// computation that consumed them.
var colorNames = []string{
	"AliceBlue", "AntiqueWhite", "Aqua", "Aquamarine", "Azure", "Beige",
	"Bisque", "Black", "BlanchedAlmond", "Blue", "BlueViolet", "Brown",
	"BurlyWood", "CadetBlue", "Chartreuse", "Chocolate", "Coral",
	"CornflowerBlue", "Cornsilk", "Crimson", "Cyan", "DarkBlue", "DarkCyan",
	"DarkGoldenRod", "DarkGray", "DarkGreen", "DarkKhaki", "DarkMagenta",
	"DarkOliveGreen", "DarkOrange", "DarkOrchid", "DarkRed", "DarkSalmon",
	"DarkSeaGreen", "DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
	"DarkViolet", "DeepPink", "DeepSkyBlue", "DimGray", "DodgerBlue",
	"FireBrick", "FloralWhite", "ForestGreen", "Fuchsia", "Gainsboro",
	"GhostWhite", "Gold", "GoldenRod", "Gray", "Green", "GreenYellow",
	"HoneyDew", "HotPink", "IndianRed", "Indigo", "Ivory", "Khaki",
	"Lavender", "LavenderBlush", "LawnGreen", "LemonChiffon", "LightBlue",
	"LightCoral", "LightCyan", "LightGoldenRodYellow", "LightGray",
	"LightGreen", "LightPink", "LightSalmon", "LightSeaGreen",
	"LightSkyBlue", "LightSlateGray", "LightSteelBlue", "LightYellow",
	"Lime", "LimeGreen", "Linen", "Magenta", "Maroon", "MediumAquaMarine",
	"MediumBlue", "MediumOrchid", "MediumPurple", "MediumSeaGreen",
	"MediumSlateBlue", "MediumSpringGreen", "MediumTurquoise",
	"MediumVioletRed", "MidnightBlue", "MintCream", "MistyRose", "Moccasin",
	"NavajoWhite", "Navy", "OldLace", "Olive", "OliveDrab", "Orange",
	"OrangeRed", "Orchid", "PaleGoldenRod", "PaleGreen", "PaleTurquoise",
	"PaleVioletRed", "PapayaWhip", "PeachPuff", "Peru", "Pink", "Plum",
	"PowderBlue", "Purple", "RebeccaPurple", "Red", "RosyBrown",
	"RoyalBlue", "SaddleBrown", "Salmon", "SandyBrown", "SeaGreen",
	"SeaShell", "Sienna", "Silver", "SkyBlue", "SlateBlue", "SlateGray",
	"Snow", "SpringGreen", "SteelBlue", "Tan", "Teal", "Thistle", "Tomato",
	"Turquoise", "Violet", "Wheat", "White", "WhiteSmoke", "Yellow",
	"YellowGreen",
}

// ishMap aliases an "-ish" adjective to the plain color word it modifies,
// matching colors.py's ish_map.
var ishMap = map[string]string{
	"greyish": "gray", "yellowish": "yellow", "reddish": "red",
	"greenish": "green", "grayish": "gray", "bluish": "blue",
	"whitish": "white", "brownish": "brown", "blackish": "black",
	"pinkish": "pink", "purplish": "purple", "orangish": "orange",
}

var camelPattern = regexp.MustCompile(`[A-Z][a-z]*`)

// spacedColorName turns a CamelCase color name into its lowercase,
// space-separated spoken form ("DarkSlateGray" -> "dark slate gray").
func spacedColorName(camel string) string {
	words := camelPattern.FindAllString(camel, -1)
	return strings.ToLower(strings.Join(words, " "))
}

// ColorsGrammar recognizes a spoken color name ("dark slate gray",
// "reddish") and folds it to its canonical lowercase spelling.
type ColorsGrammar struct {
	Goal grammar.Element
}

// NewColorsGrammar builds and compiles the colors grammar.
func NewColorsGrammar() (*grammar.Grammar, *ColorsGrammar) {
	c := &ColorsGrammar{}
	c.Goal = BuildColorsElement()
	compiled, err := grammar.Compile(c.Goal, c)
	if err != nil {
		panic(err)
	}
	return compiled, c
}

// BuildColorsElement builds the colors element tree without compiling it,
// so it can be embedded as a subgrammar (colored_light.go's light color
// clause).
func BuildColorsElement() grammar.Element {
	names := make([]string, 0, len(colorNames)+len(ishMap))
	for _, camel := range colorNames {
		names = append(names, spacedColorName(camel))
	}
	for ish := range ishMap {
		names = append(names, ish)
	}
	return grammar.NewSetLit(names).SetResultAction(func(r grammar.ResultAccessor) {
		if s, ok := r.Get().(string); ok {
			r.Set(strings.ToLower(s))
		}
	})
}
