package encode

import (
	"github.com/fatih/color"

	"github.com/recform/tomlrec/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	HeaderColor
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
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: KeyColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = HeaderColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	able.Type = ir.IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.DateType
	colors.Map[able] = color.MagentaString
	able.Type = ir.TimeType
	colors.Map[able] = color.MagentaString
	able.Type = ir.DateTimeType
	colors.Map[able] = color.MagentaString

	return colors
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
