package internal

import "github.com/fatih/color"

var DefaultPalette = Palette{
	TimeColor:             color.New(color.FgHiWhite),
	LoggerColor:           color.New(color.Italic, color.Faint),
	StackTraceColor:       color.New(color.Bold, color.FgRed),
	ExcInfoColor:          color.New(color.Bold, color.FgYellow),
	LabelColor:            color.New(color.Bold, color.FgHiYellow),
	ExceptionTypeColor:    color.New(color.Bold, color.FgRed),
	ExceptionMessageColor: color.New(color.Bold, color.FgRed, color.Italic),
	Levels: map[string]LevelStyle{
		"INFO":    {Level: color.New(color.Bold, color.FgBlue), Message: color.New(color.FgBlue)},
		"ERROR":   {Level: color.New(color.Bold, color.FgRed), Message: color.New(color.FgRed)},
		"SEVERE":  {Level: color.New(color.Bold, color.FgRed), Message: color.New(color.FgRed)},
		"DEBUG":   {Level: color.New(color.Bold, color.FgGreen), Message: color.New(color.FgGreen)},
		"WARN":    {Level: color.New(color.Bold, color.FgHiYellow), Message: color.New(color.FgHiYellow)},
		"WARNING": {Level: color.New(color.Bold, color.FgHiYellow), Message: color.New(color.FgHiYellow)},
	},
	// Unrecognized levels are bold without a color, yet their message stays blue.
	UnknownLevel: LevelStyle{Level: color.New(color.Bold), Message: color.New(color.FgBlue)},
}

type Palette struct {
	TimeColor             *color.Color
	LoggerColor           *color.Color
	StackTraceColor       *color.Color
	ExcInfoColor          *color.Color
	LabelColor            *color.Color
	ExceptionTypeColor    *color.Color
	ExceptionMessageColor *color.Color
	Levels                map[string]LevelStyle
	UnknownLevel          LevelStyle
}

// LevelStyle pairs the style of the level token with the style of the message
// printed next to it.
type LevelStyle struct {
	Level   *color.Color
	Message *color.Color
}

// LevelStyle looks level up exactly as written; "info" is not "INFO".
func (p Palette) LevelStyle(level string) LevelStyle {
	if s, ok := p.Levels[level]; ok {
		return s
	}
	return p.UnknownLevel
}
