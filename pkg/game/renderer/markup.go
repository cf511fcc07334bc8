package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Shared color styles, initialised by InitColors. Renderers and menus use
// these so TUI output and message-log markup agree.
var (
	ColorGauge       color.Style
	ColorGaugeLow    color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style
	ColorWin         color.Style

	regexpStringFunctions *regexp.Regexp
)

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check, since
// markup operands are looked up dynamically.
var dynamicGet = gotext.Get

// InitColors initializes the color styles
func InitColors() {
	ColorGauge = color.Style{color.FgCyan}
	ColorGaugeLow = color.Style{color.FgRed, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorWin = color.Style{color.FgYellow, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:!.%/?+=-]+)}`)
}

// ApplyMarkup formats a string with the message markup: GT{key} translates,
// ACTION{text} highlights a control with its shortcut letter emphasised,
// ITEM{text} highlights a resource name, WIN{text} is for the launch banner.
func ApplyMarkup(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	if regexpStringFunctions == nil {
		return ret
	}

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		case "WIN":
			val = ColorWin.Sprint(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// StyledSubtle applies the subtle style to text.
func StyledSubtle(s string) string {
	return ColorSubtle.Sprint(s)
}
