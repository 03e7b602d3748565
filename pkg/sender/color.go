package sender

import (
	"strings"

	"github.com/gookit/color"
)

// Chat colour codes use '&' in configs and '§' on the wire, followed by a
// single hex digit or format letter.
var styles = map[byte]color.Style{
	'0': color.New(color.FgBlack),
	'1': color.New(color.FgBlue),
	'2': color.New(color.FgGreen),
	'3': color.New(color.FgCyan),
	'4': color.New(color.FgRed),
	'5': color.New(color.FgMagenta),
	'6': color.New(color.FgYellow),
	'7': color.New(color.FgWhite),
	'8': color.New(color.FgDarkGray),
	'9': color.New(color.FgLightBlue),
	'a': color.New(color.FgLightGreen),
	'b': color.New(color.FgLightCyan),
	'c': color.New(color.FgLightRed),
	'd': color.New(color.FgLightMagenta),
	'e': color.New(color.FgLightYellow),
	'f': color.New(color.FgLightWhite),
	'l': color.New(color.OpBold),
	'n': color.New(color.OpUnderscore),
	'o': color.New(color.OpItalic),
}

type segment struct {
	style color.Style
	text  string
}

// split cuts message at every colour code. Unknown codes are kept as text;
// 'r' resets to no style.
func split(message string) []segment {
	message = strings.ReplaceAll(message, "§", "&")

	var segments []segment
	var current color.Style
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, segment{style: current, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(message); i++ {
		if message[i] == '&' && i+1 < len(message) {
			code := lower(message[i+1])
			if style, ok := styles[code]; ok {
				flush()
				current = style
				i++
				continue
			}
			if code == 'r' {
				flush()
				current = nil
				i++
				continue
			}
		}
		text.WriteByte(message[i])
	}
	flush()
	return segments
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// StripColors removes colour codes from message.
func StripColors(message string) string {
	var b strings.Builder
	for _, s := range split(message) {
		b.WriteString(s.text)
	}
	return b.String()
}

// RenderColors turns colour codes into ANSI escapes.
func RenderColors(message string) string {
	var b strings.Builder
	for _, s := range split(message) {
		if len(s.style) == 0 {
			b.WriteString(s.text)
			continue
		}
		b.WriteString(s.style.Sprint(s.text))
	}
	return b.String()
}
