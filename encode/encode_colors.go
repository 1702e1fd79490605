package encode

import (
	"github.com/fatih/color"

	"github.com/signadot/memjson/variant"
)

type Colorable struct {
	Type variant.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range variant.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = variant.TypeInt
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = variant.TypeUint
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = variant.TypeFloat
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = variant.TypeNull
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = variant.TypeBool
	colors.Map[able] = color.CyanString

	able.Type = variant.TypeOwnedString
	colors.Map[able] = color.GreenString

	able = Colorable{Type: variant.TypeObject, Attr: FieldColor}
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (c *Colors) Color(t variant.Type, attr ColorAttr, s string) string {
	fn, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		fn = c.Default
	}
	return fn("%s", s)
}
