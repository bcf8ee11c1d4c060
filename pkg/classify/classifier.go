// Package classify assigns a semantic role to each text block from its
// font size and a handful of textual patterns.
package classify

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pyhub-apps/pdfstructure/pkg/layout"
)

// Role is the semantic classification of a block
type Role string

const (
	RoleTitle      Role = "title"
	RoleHeading    Role = "heading"
	RoleSubheading Role = "subheading"
	RoleParagraph  Role = "paragraph"
	RoleListItem   Role = "list_item"
	RoleFootnote   Role = "footnote"
	RoleReference  Role = "reference"
)

// Config holds the thresholds used by the classifier
type Config struct {
	TitleFontSize      float64 // minimum size for a title
	HeadingFontSize    float64 // minimum size for a heading
	SubheadingFontSize float64 // minimum size for a patterned subheading
	TitleMaxLength     int     // titles must be shorter than this many characters
	FootnoteMaxLength  int     // footnotes must be shorter than this many characters
}

// DefaultConfig returns the standard thresholds (16/14/12pt)
func DefaultConfig() Config {
	return Config{
		TitleFontSize:      16,
		HeadingFontSize:    14,
		SubheadingFontSize: 12,
		TitleMaxLength:     200,
		FootnoteMaxLength:  500,
	}
}

// Validate checks that the thresholds are positive and ordered
func (c Config) Validate() error {
	if c.SubheadingFontSize <= 0 || c.TitleMaxLength <= 0 || c.FootnoteMaxLength <= 0 {
		return errors.New("classifier thresholds must be positive")
	}
	if c.TitleFontSize < c.HeadingFontSize || c.HeadingFontSize < c.SubheadingFontSize {
		return errors.New("classifier font sizes must satisfy title >= heading >= subheading")
	}
	return nil
}

// Digits and whitespace are matched across Unicode: \d and \s only cover
// ASCII in RE2, and extracted text often carries em spaces, no-break spaces
// or non-Latin digits.
const (
	digit = `\p{Nd}`
	space = `[\s\p{Z}\x{1c}-\x{1f}\x{85}]`
)

var (
	numberedHeadingPattern = regexp.MustCompile(`^` + digit + `+\.?` + space + `+[A-Z]`)
	labelPattern           = regexp.MustCompile(`^[A-Z][a-z]+` + space + `*:?` + space + `*$`)
	citationPattern        = regexp.MustCompile(`^\[` + digit + `+\]`)
	footnotePattern        = regexp.MustCompile(`^` + digit + `+` + space + `+`)
	bulletPattern          = regexp.MustCompile(`^[•\-*]` + space + `+`)
	enumerationPattern     = regexp.MustCompile(`^` + digit + `+[.)]` + space + `+`)
)

// ClassifiedBlock is a block together with its role
type ClassifiedBlock struct {
	layout.Block
	Role Role
}

// Classifier maps blocks to roles. It holds no state besides its
// configuration and is safe for concurrent use.
type Classifier struct {
	config Config
}

// New creates a classifier with the given thresholds
func New(config Config) *Classifier {
	return &Classifier{config: config}
}

// Config returns the thresholds in use
func (c *Classifier) Config() Config {
	return c.config
}

// ClassifyBlock classifies a block by its text and mean font size
func (c *Classifier) ClassifyBlock(block layout.Block) ClassifiedBlock {
	return ClassifiedBlock{Block: block, Role: c.Classify(block.Text, block.FontSize)}
}

// Classify returns the role for text rendered at fontSize. Rules are
// checked in priority order and the first match wins.
func (c *Classifier) Classify(text string, fontSize float64) Role {
	length := utf8.RuneCountInString(text)

	if fontSize >= c.config.TitleFontSize && length < c.config.TitleMaxLength {
		return RoleTitle
	}

	if fontSize >= c.config.HeadingFontSize {
		return RoleHeading
	}

	if fontSize >= c.config.SubheadingFontSize &&
		(isUpper(text) || numberedHeadingPattern.MatchString(text) || labelPattern.MatchString(text)) {
		return RoleSubheading
	}

	if citationPattern.MatchString(text) ||
		strings.HasPrefix(strings.TrimSpace(strings.ToLower(text)), "reference") {
		return RoleReference
	}

	if footnotePattern.MatchString(text) && length < c.config.FootnoteMaxLength {
		return RoleFootnote
	}

	if bulletPattern.MatchString(text) || enumerationPattern.MatchString(text) {
		return RoleListItem
	}

	return RoleParagraph
}

// isUpper reports whether text has at least one cased letter and every
// cased letter is upper case
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
