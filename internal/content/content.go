// Package content is the static content table of the landing page: navigation,
// sections, FAQ entries and contact details for each copy variant.
package content

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fixed section identifiers present on every page, in addition to Sections.
const (
	SectionHero    = "hero"
	SectionFAQ     = "faq"
	SectionContact = "contact"
)

// NavItem is a navigation link to a section.
type NavItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// CTA is a button that scrolls to Target.
type CTA struct {
	Label   string `yaml:"label"`
	Target  string `yaml:"target"`
	Primary bool   `yaml:"primary"`
}

type Card struct {
	Label string `yaml:"label"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Hero struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Trust    string `yaml:"trust"`
	Audience string `yaml:"audience"`
	CTAs     []CTA  `yaml:"ctas"`
}

// Section is one of the feature sections between the hero and the FAQ.
type Section struct {
	ID       string   `yaml:"id"`
	Eyebrow  string   `yaml:"eyebrow"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Cards    []Card   `yaml:"cards"`
	Pills    []string `yaml:"pills"`
	CTAs     []CTA    `yaml:"ctas"`

	SubtitleHTML string `yaml:"-"`
}

// FAQEntry answers are Markdown; AnswerHTML is filled in by Parse.
type FAQEntry struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`

	AnswerHTML string `yaml:"-"`
}

type FAQ struct {
	Eyebrow  string     `yaml:"eyebrow"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Entries  []FAQEntry `yaml:"entries"`
}

type Phone struct {
	Display string `yaml:"display"`
	URI     string `yaml:"uri"`
}

type Contact struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Cards    []Card `yaml:"cards"`
	Phone    Phone  `yaml:"phone"`
	Email    string `yaml:"email"`
	// Form controls whether the contact form is rendered at all.
	Form bool `yaml:"form"`
}

type Footer struct {
	Company   string `yaml:"company"`
	Line      string `yaml:"line"`
	Copyright string `yaml:"copyright"`
}

// Page is one copy variant of the landing page.
type Page struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Brand    string    `yaml:"brand"`
	Nav      []NavItem `yaml:"nav"`
	Hero     Hero      `yaml:"hero"`
	Sections []Section `yaml:"sections"`
	FAQ      FAQ       `yaml:"faq"`
	Contact  Contact   `yaml:"contact"`
	Footer   Footer    `yaml:"footer"`
}

// Parse decodes a variant document, validates it and renders its Markdown.
func Parse(data []byte) (*Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.renderMarkdown(); err != nil {
		return nil, fmt.Errorf("page %q: %w", p.Name, err)
	}
	return &p, nil
}

// HasSection reports whether id is a scroll target on this page.
func (p *Page) HasSection(id string) bool {
	switch id {
	case SectionHero, SectionFAQ, SectionContact:
		return true
	}
	for _, s := range p.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SectionIDs lists scroll targets in document order.
func (p *Page) SectionIDs() []string {
	ids := []string{SectionHero}
	for _, s := range p.Sections {
		ids = append(ids, s.ID)
	}
	return append(ids, SectionFAQ, SectionContact)
}

// Validate checks the structural rules the renderer relies on.
func (p *Page) Validate() error {
	if p.Name == "" {
		return errors.New("page has no name")
	}
	if len(p.Nav) == 0 {
		return fmt.Errorf("page %q: no navigation items", p.Name)
	}

	seen := make(map[string]bool)
	for _, s := range p.Sections {
		switch {
		case s.ID == "":
			return fmt.Errorf("page %q: section without id", p.Name)
		case s.ID == SectionHero || s.ID == SectionFAQ || s.ID == SectionContact:
			return fmt.Errorf("page %q: section id %q is reserved", p.Name, s.ID)
		case seen[s.ID]:
			return fmt.Errorf("page %q: duplicate section %q", p.Name, s.ID)
		}
		seen[s.ID] = true
	}

	navSeen := make(map[string]bool)
	for _, item := range p.Nav {
		if navSeen[item.ID] {
			return fmt.Errorf("page %q: duplicate nav item %q", p.Name, item.ID)
		}
		navSeen[item.ID] = true
		if !p.HasSection(item.ID) {
			return fmt.Errorf("page %q: nav item %q has no section", p.Name, item.ID)
		}
	}

	ctas := append([]CTA{}, p.Hero.CTAs...)
	for _, s := range p.Sections {
		ctas = append(ctas, s.CTAs...)
	}
	for _, c := range ctas {
		if !p.HasSection(c.Target) {
			return fmt.Errorf("page %q: button %q targets unknown section %q", p.Name, c.Label, c.Target)
		}
	}

	for i, e := range p.FAQ.Entries {
		if e.Question == "" {
			return fmt.Errorf("page %q: faq entry %d has no question", p.Name, i)
		}
	}
	return nil
}

func (p *Page) renderMarkdown() error {
	for i := range p.Sections {
		html, err := Markdown(p.Sections[i].Subtitle)
		if err != nil {
			return fmt.Errorf("section %q subtitle: %w", p.Sections[i].ID, err)
		}
		p.Sections[i].SubtitleHTML = html
	}
	for i := range p.FAQ.Entries {
		html, err := Markdown(p.FAQ.Entries[i].Answer)
		if err != nil {
			return fmt.Errorf("faq entry %d: %w", i, err)
		}
		p.FAQ.Entries[i].AnswerHTML = html
	}
	return nil
}
