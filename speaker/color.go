package speaker

import (
	"crypto/sha1"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/notemark/model"
)

// Mixing weights for the derived colors.
const (
	BackgroundWeight = 0.85
	BorderWeight     = 0.65
	LabelWeight      = 0.6
)

var lower = cases.Lower(language.Und)

// Normalize returns the form of name that colors are derived from.
func Normalize(name string) string {
	return lower.String(norm.NFC.String(strings.TrimSpace(name)))
}

// BaseColor derives the stable base color for a speaker name.
func BaseColor(name string) model.Color {
	sum := sha1.Sum([]byte(Normalize(name)))
	return model.Color{R: sum[0], G: sum[1], B: sum[2]}
}

// PaletteFor derives the full palette for a speaker name.
func PaletteFor(name string) model.Palette {
	return paletteFromBase(BaseColor(name))
}

func paletteFromBase(base model.Color) model.Palette {
	return model.Palette{
		Base:       base,
		Background: base.Mix(model.White, BackgroundWeight),
		Border:     base.Mix(model.White, BorderWeight),
		Label:      base.Mix(model.Black, LabelWeight),
	}
}
