package structure

import "github.com/pyhub-apps/pdfstructure/pkg/classify"

// Builder assembles classified blocks into a document's title, sections,
// footnotes and references. A Builder tracks the currently open section
// and must be used for a single document only.
type Builder struct {
	doc     *Document
	current int // index into doc.Content.Sections; -1 before the first section
}

// NewBuilder returns a builder writing into doc
func NewBuilder(doc *Document) *Builder {
	return &Builder{doc: doc, current: -1}
}

// AddAll feeds blocks in order
func (b *Builder) AddAll(blocks []classify.ClassifiedBlock) {
	for _, block := range blocks {
		b.Add(block)
	}
}

// Add feeds one block. Blocks must arrive in page and reading order.
func (b *Builder) Add(block classify.ClassifiedBlock) {
	content := &b.doc.Content

	switch block.Role {
	case classify.RoleTitle:
		if content.Title == "" {
			content.Title = block.Text
		}

	case classify.RoleHeading, classify.RoleSubheading:
		level := 1
		if block.Role == classify.RoleSubheading {
			level = 2
		}
		content.Sections = append(content.Sections, newSection(block.Text, level, block.Page))
		b.current = len(content.Sections) - 1

	case classify.RoleReference:
		content.References = append(content.References, Note{Text: block.Text, Page: block.Page})

	case classify.RoleFootnote:
		content.Footnotes = append(content.Footnotes, Note{Text: block.Text, Page: block.Page})

	case classify.RoleParagraph, classify.RoleListItem:
		section := b.openSection(block.Page)
		section.Content = append(section.Content, ContentItem{
			Type: block.Role,
			Text: block.Text,
			Page: block.Page,
		})
	}
}

// openSection returns the section that receives body content. Content
// seen before any heading goes to a single default section; if sections
// already exist, the most recent one is used.
func (b *Builder) openSection(page int) *Section {
	sections := &b.doc.Content.Sections

	if b.current < 0 {
		if len(*sections) == 0 {
			*sections = append(*sections, newSection(DefaultSectionHeading, 1, page))
		}
		b.current = len(*sections) - 1
	}

	return &(*sections)[b.current]
}
