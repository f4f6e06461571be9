package floatlabel

import (
	"github.com/alexisbeaulieu97/floatinput/internal/anim"
	"github.com/alexisbeaulieu97/floatinput/internal/theme"
)

// LabelFontSize interpolates between the resting and active font sizes.
func LabelFontSize(progress float64, t theme.Theme) float64 {
	return anim.Lerp(t.FontSize, t.LabelActiveFontSize, progress)
}

// LabelTranslateY is the vertical label offset for a container of height h.
// Until a height has been measured the label stays put.
func LabelTranslateY(progress, h, restOffset float64) float64 {
	if h <= 0 {
		return 0
	}
	return anim.Lerp(0, -(h/2 - restOffset), progress)
}
