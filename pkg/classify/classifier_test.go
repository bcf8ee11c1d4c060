package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyhub-apps/pdfstructure/pkg/layout"
)

func TestClassify(t *testing.T) {
	c := New(DefaultConfig())

	tests := []struct {
		name     string
		text     string
		fontSize float64
		want     Role
	}{
		{name: "large short text is a title", text: "A Study of Things", fontSize: 18, want: RoleTitle},
		{name: "title ignores content", text: "[1] looks like a reference", fontSize: 16, want: RoleTitle},
		{name: "long large text is a heading", text: strings.Repeat("x", 200), fontSize: 16, want: RoleHeading},
		{name: "uppercase at 15 is a heading not a subheading", text: "REFERENCES", fontSize: 15, want: RoleHeading},
		{name: "heading threshold", text: "Background", fontSize: 14, want: RoleHeading},
		{name: "uppercase subheading", text: "METHODS AND DATA", fontSize: 12, want: RoleSubheading},
		{name: "numbered subheading", text: "2. Related Work", fontSize: 12, want: RoleSubheading},
		{name: "numbered subheading without dot", text: "3 Results", fontSize: 12.5, want: RoleSubheading},
		{name: "label subheading", text: "Abstract:", fontSize: 12, want: RoleSubheading},
		{name: "lowercase at 12 is a paragraph", text: "plain words here", fontSize: 12, want: RoleParagraph},
		{name: "uppercase below 12 is not a subheading", text: "NOTICE", fontSize: 11, want: RoleParagraph},
		{name: "bracket citation", text: "[12] Smith, J. A paper.", fontSize: 10, want: RoleReference},
		{name: "references prefix", text: "References and further reading", fontSize: 10, want: RoleReference},
		{name: "footnote", text: "3 See the appendix for details.", fontSize: 9, want: RoleFootnote},
		{name: "long numbered text is not a footnote", text: "3 " + strings.Repeat("y", 498), fontSize: 9, want: RoleParagraph},
		{name: "bullet list item", text: "• first point", fontSize: 10, want: RoleListItem},
		{name: "dash list item", text: "- second point", fontSize: 10, want: RoleListItem},
		{name: "star list item", text: "* third point", fontSize: 10, want: RoleListItem},
		{name: "enumerated list item", text: "1) do this", fontSize: 10, want: RoleListItem},
		{name: "enumerated with dot", text: "4. then that", fontSize: 10, want: RoleListItem},
		{name: "bullet without space", text: "-dash", fontSize: 10, want: RoleParagraph},
		{name: "default paragraph", text: "The quick brown fox.", fontSize: 10, want: RoleParagraph},
		{name: "numbered subheading with em space", text: "1.\u2003Introduction", fontSize: 12, want: RoleSubheading},
		{name: "label with no-break space", text: "Summary\u00a0:", fontSize: 12, want: RoleSubheading},
		{name: "citation with arabic-indic digits", text: "[\u0661\u0662] Source", fontSize: 10, want: RoleReference},
		{name: "footnote with thin space", text: "7\u2009Estimated.", fontSize: 9, want: RoleFootnote},
		{name: "bullet with no-break space", text: "•\u00a0item", fontSize: 10, want: RoleListItem},
		{name: "enumeration with ideographic space", text: "2)\u3000next", fontSize: 10, want: RoleListItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text, tt.fontSize))
		})
	}
}

func TestClassifyTitleForAnyShortText(t *testing.T) {
	c := New(DefaultConfig())

	for _, size := range []float64{16, 16.01, 20, 72} {
		for _, text := range []string{"", "x", "1 footnote-like", "- bullet", strings.Repeat("é", 199)} {
			assert.Equal(t, RoleTitle, c.Classify(text, size), "size=%v text=%q", size, text)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(DefaultConfig())

	for i := 0; i < 10; i++ {
		assert.Equal(t, RoleSubheading, c.Classify("INTRODUCTION", 12))
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	c := New(Config{
		TitleFontSize:      24,
		HeadingFontSize:    18,
		SubheadingFontSize: 14,
		TitleMaxLength:     50,
		FootnoteMaxLength:  100,
	})

	assert.Equal(t, RoleParagraph, c.Classify("Large body text", 16))
	assert.Equal(t, RoleHeading, c.Classify("Section", 20))
	assert.Equal(t, RoleTitle, c.Classify("Cover", 30))
	assert.Equal(t, RoleSubheading, c.Classify("SUMMARY", 14))
}

func TestClassifyBlock(t *testing.T) {
	c := New(DefaultConfig())
	block := layout.Block{Text: "Overview", FontSize: 14.5, Page: 2}

	got := c.ClassifyBlock(block)

	assert.Equal(t, RoleHeading, got.Role)
	assert.Equal(t, block, got.Block)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	inverted := DefaultConfig()
	inverted.HeadingFontSize = 20
	assert.Error(t, inverted.Validate())

	zero := DefaultConfig()
	zero.FootnoteMaxLength = 0
	assert.Error(t, zero.Validate())
}

func TestIsUpper(t *testing.T) {
	assert.True(t, isUpper("ABC 123"))
	assert.True(t, isUpper("ÉTÉ"))
	assert.False(t, isUpper("123"))
	assert.False(t, isUpper("ABc"))
	assert.False(t, isUpper(""))
}
