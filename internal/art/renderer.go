package art

import (
	"strings"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/Kuadribal/touchblob/internal/conditions"
	"github.com/Kuadribal/touchblob/internal/pet"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Expression names the placeholder face drawn when no sprite frame is
// loaded.
type Expression string

const (
	ExprHappy   Expression = "happy"
	ExprSad     Expression = "sad"
	ExprTired   Expression = "tired"
	ExprHungry  Expression = "hungry"
	ExprSmile   Expression = "smile"
	ExprNeutral Expression = "neutral"
)

type face struct {
	eyes  string
	mouth string
}

var faces = map[Expression]face{
	ExprHappy:   {eyes: " ^ ^ ", mouth: "\\_/"},
	ExprSad:     {eyes: " T T ", mouth: "/^\\"},
	ExprTired:   {eyes: " - - ", mouth: "---"},
	ExprHungry:  {eyes: " o o ", mouth: "~~~"},
	ExprSmile:   {eyes: " o o ", mouth: "\\_/"},
	ExprNeutral: {eyes: " o o ", mouth: " - "},
}

// ChooseExpression picks the face for stats. Sadness wins over tiredness,
// which wins over hunger.
func ChooseExpression(stats pet.Stats) Expression {
	switch {
	case conditions.IsHappy(stats):
		return ExprHappy
	case conditions.IsSad(stats):
		return ExprSad
	case conditions.IsTired(stats):
		return ExprTired
	case conditions.IsHungry(stats):
		return ExprHungry
	case stats.Mood > 50:
		return ExprSmile
	}
	return ExprNeutral
}

// Face renders the placeholder blob as three lines of text.
func Face(stats pet.Stats) string {
	f := faces[ChooseExpression(stats)]
	return strings.Join([]string{
		" .---. ",
		"(" + f.eyes + ")",
		" '" + f.mouth + "' ",
	}, "\n")
}

// StaticArt is the first idle frame from lib, or the placeholder face.
func StaticArt(lib anim.Library, stats pet.Stats) string {
	if frames := lib.Sequence(anim.Idle, anim.South); len(frames) > 0 {
		return frames[0].Art
	}
	return Face(stats)
}

// MoodColor is the fill used when no custom color is set: blue-green when
// content, drifting paler and bluer as mood drops.
func MoodColor(mood float64) colorful.Color {
	hue := 150 + (100-mood)*0.5
	sat := 60 + mood*0.2
	light := 50 + (100-mood)*0.1
	return colorful.Hsl(hue, sat/100, light/100).Clamped()
}

// Palette is the set of custom colors the terminal cycles through. The
// empty entry means mood-based.
var Palette = []string{"", "#ff6b9d", "#7fdbff", "#ffdc00", "#b388ff", "#2ecc40", "#ff851b"}

// ParseColor accepts #rrggbb, #rgb and the color names tcell knows.
func ParseColor(s string) (colorful.Color, bool) {
	if s == "" {
		return colorful.Color{}, false
	}
	if c, err := colorful.Hex(s); err == nil {
		return c, true
	}

	tc := tcell.GetColor(strings.ToLower(s))
	if tc == tcell.ColorDefault {
		return colorful.Color{}, false
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// FillColor resolves the blob's color: the custom color when it parses,
// otherwise the mood color.
func FillColor(custom string, mood float64) colorful.Color {
	if c, ok := ParseColor(custom); ok {
		return c
	}
	return MoodColor(mood)
}

// NextPaletteColor returns the palette entry after current.
func NextPaletteColor(current string) string {
	for i, c := range Palette {
		if strings.EqualFold(c, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[1]
}
