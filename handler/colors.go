package handler

import (
	"strings"

	"github.com/fatih/color"
)

// ColorAttr names the output role being colorized.
type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	NullColor
	MarkupColor
	CommentColor
)

// Colors maps output roles to sprintf-style color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func colorDefault(v string, _ ...any) string { return v }

// NewColors returns the default color table.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	c.Map[KeyColor] = color.RGB(128, 168, 196).SprintfFunc()
	c.Map[StringColor] = color.RGB(8, 196, 16).SprintfFunc()
	c.Map[NumberColor] = color.RGB(128, 216, 236).SprintfFunc()
	c.Map[BoolColor] = color.CyanString
	c.Map[NullColor] = color.RGB(168, 0, 196).SprintfFunc()
	c.Map[MarkupColor] = color.RGB(196, 96, 16).SprintfFunc()
	c.Map[CommentColor] = color.BlueString
	for k, f := range c.Map {
		c.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return c
}

// Color renders v in the color registered for attr.
func (c *Colors) Color(attr ColorAttr, v string) string {
	if c == nil {
		return v
	}
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return v
	}
	return f(v)
}
