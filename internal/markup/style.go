// internal/markup/style.go
//
// Style declarations and their resolution.
// Defines:
//   - Flag: a tri-state (inherit / off / on) style switch.
//   - Style: a declaration of six flags plus newline handling for one element.
//   - CalculatedStyle: the resolved, all-boolean form used when emitting text.
//
// Declarations combine "inner wins": a child's explicit flag overrides its
// ancestors, an inherited flag falls through to the ancestor's value.

package markup

// Flag is a single style switch in a declaration.
type Flag uint8

const (
	Inherit Flag = iota // take the ancestor's value
	Off
	On
)

// Or returns f unless it inherits, in which case parent is returned.
func (f Flag) Or(parent Flag) Flag {
	if f != Inherit {
		return f
	}
	return parent
}

// Bool resolves an inherited flag to false.
func (f Flag) Bool() bool { return f == On }

// Style is a style declaration as attached to a markup element.
type Style struct {
	Bold          Flag
	Italics       Flag
	Underline     Flag
	Strikethrough Flag
	Superscript   Flag
	Subscript     Flag

	// NewlineFollows requests a line break once the element closes.
	// It belongs to the element that declares it and is never inherited.
	NewlineFollows bool
}

// CalculatedStyle is a fully resolved style.
type CalculatedStyle struct {
	Bold          bool
	Italics       bool
	Underline     bool
	Strikethrough bool
	Superscript   bool
	Subscript     bool
}

var (
	// Empty passes every flag through from the ancestor.
	Empty = Style{}
	// Default resets bold and italics, leaving the rest inherited.
	Default = Style{Bold: Off, Italics: Off}
	// Italics is Default with italics switched on.
	Italics = Style{Bold: Off, Italics: On}
)

// Over folds s onto parent. Flags set in s win; unset flags come from parent.
// NewlineFollows is taken from s alone.
func (s Style) Over(parent Style) Style {
	return Style{
		Bold:           s.Bold.Or(parent.Bold),
		Italics:        s.Italics.Or(parent.Italics),
		Underline:      s.Underline.Or(parent.Underline),
		Strikethrough:  s.Strikethrough.Or(parent.Strikethrough),
		Superscript:    s.Superscript.Or(parent.Superscript),
		Subscript:      s.Subscript.Or(parent.Subscript),
		NewlineFollows: s.NewlineFollows,
	}
}

// Calculate resolves every inherited flag to false.
func (s Style) Calculate() CalculatedStyle {
	return CalculatedStyle{
		Bold:          s.Bold.Bool(),
		Italics:       s.Italics.Bool(),
		Underline:     s.Underline.Bool(),
		Strikethrough: s.Strikethrough.Bool(),
		Superscript:   s.Superscript.Bool(),
		Subscript:     s.Subscript.Bool(),
	}
}

// FromElementName maps an HTML tag name to its declaration.
func FromElementName(name string) Style {
	switch name {
	case "b", "strong":
		return Style{Bold: On}
	case "i", "em":
		return Style{Italics: On}
	case "a", "mark":
		return Style{Underline: On}
	case "del":
		return Style{Strikethrough: On}
	case "sub":
		return Style{Subscript: On}
	case "sup":
		return Style{Superscript: On}
	default:
		return Empty
	}
}

// FromClass maps a Sprotin CSS class to its declaration.
func FromClass(class string) Style {
	switch class {
	case "_eind", "_h", "_H", "_smb", "_p", "_p1", "_p2", "_m", "_D":
		return Default
	case "word_link":
		return Style{Underline: On}
	case "_r":
		s := Default
		s.Bold = On
		s.NewlineFollows = true
		return s
	case "dictionary_number_bold", "_R", "_u", "_l", "_s", "_a", "_a2", "_A":
		s := Default
		s.Bold = On
		return s
	case "_d", "_k":
		return Italics
	case "_c":
		s := Italics
		s.Superscript = On
		return s
	default:
		return Empty
	}
}
