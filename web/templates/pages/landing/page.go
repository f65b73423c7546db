// Package landing turns a content variant and a view state into the landing
// page document.
package landing

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"lbe/internal/content"
	"lbe/internal/ui"
)

// CSRFFieldName is the form field carrying the anti-forgery token.
const CSRFFieldName = "csrf_token"

// Routes the page links and posts to.
const (
	PathHome    = "/"
	PathTheme   = "/theme"
	PathContact = "/contact"
)

// Page is everything needed to render one response.
type Page struct {
	Content *content.Page
	State   ui.State
	// CSRFToken enables the contact form when the variant has one. An empty
	// token means nothing can accept a submission, so the form is left out.
	CSRFToken string
	Year      int
}

// NewPage fills in the current year.
func NewPage(c *content.Page, s ui.State, csrfToken string) Page {
	return Page{Content: c, State: s, CSRFToken: csrfToken, Year: time.Now().Year()}
}

// Component adapts the document to templ so handlers can serve it with
// templ.Handler.
func Component(p Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Document(p).Render(w)
	})
}

// Document is the full HTML document.
func Document(p Page) g.Node {
	c := p.Content
	bodyClass := ""
	if p.State.Overlay.ScrollLocked() {
		bodyClass = "scroll-locked"
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Data("theme", p.State.Theme.String()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("color-scheme"), h.Content("light dark")),
				h.TitleEl(g.Text(c.Title)),
				h.StyleEl(g.Raw(stylesheet)),
			),
			h.Body(
				g.If(bodyClass != "", h.Class(bodyClass)),
				navBar(p),
				overlay(p),
				h.Main(
					hero(p),
					g.Group(sections(p)),
					faq(p),
					contact(p),
				),
				footer(p),
			),
		),
	)
}

// navHref is the link for any control that scrolls to a section.
func navHref(p Page, id string) string {
	next, fragment := ui.Navigate(p.State, id, p.Content)
	return ui.Href(PathHome, next, fragment)
}

func logo(p Page, size string) g.Node {
	return h.Img(
		h.Class("logo-"+size),
		h.Src(fmt.Sprintf("/static/logo-%s-%s.jpg", p.State.Theme, size)),
		h.Alt(p.Content.Brand+" logo"),
	)
}

func navLinks(p Page) []g.Node {
	links := make([]g.Node, 0, len(p.Content.Nav))
	for _, item := range p.Content.Nav {
		links = append(links, h.A(h.Href(navHref(p, item.ID)), g.Text(item.Label)))
	}
	return links
}

func navBar(p Page) g.Node {
	c := p.Content
	return h.Nav(h.Class("nav"),
		h.Div(h.Class("container nav-inner"),
			h.A(h.Class("nav-logo"), h.Href(navHref(p, content.SectionHero)), logo(p, "long"), logo(p, "short")),
			h.Div(append([]g.Node{h.Class("nav-links")}, navLinks(p)...)...),
			h.Div(h.Class("nav-right"),
				h.A(h.Class("btn-link hide-mobile"), h.Href(navHref(p, content.SectionContact)),
					h.Aria("label", "Call or contact"),
					g.Text("Call: "+c.Contact.Phone.Display),
				),
				themeToggle(p),
				h.A(h.Class("btn btn-primary hide-mobile"), h.Href(navHref(p, content.SectionContact)),
					g.Text("Book Assessment"),
				),
				h.A(h.Class("mobile-menu-btn"), h.Href(ui.Href(PathHome, p.State.Apply(ui.OpenMenu()), "")),
					h.Aria("label", "Open menu"),
					g.Text("Menu"),
				),
			),
		),
	)
}

// themeToggle posts back with the view state in the action's query so the
// redirect lands on the same page state.
func themeToggle(p Page) g.Node {
	action := ui.Href(PathTheme, p.State, "")
	return g.El("form", h.Method("post"), h.Action(action),
		h.Input(h.Type("hidden"), h.Name("current"), h.Value(p.State.Theme.String())),
		h.Button(h.Class("theme-toggle"), h.Type("submit"),
			h.Aria("label", "Toggle theme"), h.Title("Toggle theme"),
			h.Span(h.Class("theme-toggle-dot")),
		),
	)
}

func overlay(p Page) g.Node {
	c := p.Content
	open := p.State.Overlay.Open
	class := "mobile-overlay"
	if open {
		class += " open"
	}
	links := navLinks(p)
	links = append(links, h.A(h.Href(navHref(p, content.SectionContact)), g.Text("Call: "+c.Contact.Phone.Display)))

	return h.Div(h.Class(class), h.ID("menu"), h.Aria("hidden", strconv.FormatBool(!open)),
		h.Div(h.Class("mobile-overlay-top"),
			logo(p, "short"),
			h.A(h.Class("mobile-menu-btn"), h.Href(ui.Href(PathHome, p.State.Apply(ui.CloseMenu()), "")),
				h.Aria("label", "Close menu"),
				g.Text("Close"),
			),
		),
		h.Div(append([]g.Node{h.Class("mobile-overlay-links")}, links...)...),
		h.A(h.Class("btn btn-primary"), h.Href(navHref(p, content.SectionContact)), g.Text("Book Assessment")),
	)
}

func ctas(p Page, buttons []content.CTA) g.Node {
	if len(buttons) == 0 {
		return nil
	}
	nodes := []g.Node{h.Class("hero-cta")}
	for _, b := range buttons {
		class := "btn btn-ghost"
		if b.Primary {
			class = "btn btn-primary"
		}
		nodes = append(nodes, h.A(h.Class(class), h.Href(navHref(p, b.Target)), g.Text(b.Label)))
	}
	return h.Div(nodes...)
}

func hero(p Page) g.Node {
	hr := p.Content.Hero
	return g.Group{
		h.Section(h.ID(content.SectionHero), h.Class("section hero"),
			h.Div(h.Class("container"),
				h.Div(h.Class("hero-eyebrow"), g.Text(hr.Eyebrow)),
				h.H1(h.Class("hero-title"), g.Text(hr.Title)),
				h.P(h.Class("hero-sub"), g.Text(hr.Subtitle)),
				ctas(p, hr.CTAs),
				g.If(hr.Trust != "", h.Div(h.Class("hero-trust muted"), g.Text(hr.Trust))),
			),
		),
		g.If(hr.Audience != "", h.Div(h.Class("band center muted"), g.Text(hr.Audience))),
	}
}

func cards(list []content.Card) g.Node {
	if len(list) == 0 {
		return nil
	}
	nodes := []g.Node{h.Class("cards")}
	for _, c := range list {
		nodes = append(nodes, h.Div(h.Class("card"),
			g.If(c.Label != "", h.Div(h.Class("card-label muted"), g.Text(c.Label))),
			g.If(c.Title != "", h.H3(g.Text(c.Title))),
			g.If(c.Body != "", h.P(g.Text(c.Body))),
		))
	}
	return h.Div(nodes...)
}

func pills(list []string) g.Node {
	if len(list) == 0 {
		return nil
	}
	nodes := []g.Node{h.Class("pills")}
	for _, s := range list {
		nodes = append(nodes, h.Span(h.Class("pill"), g.Text(s)))
	}
	return h.Div(nodes...)
}

func sections(p Page) []g.Node {
	nodes := make([]g.Node, 0, len(p.Content.Sections))
	for _, s := range p.Content.Sections {
		nodes = append(nodes, h.Section(h.ID(s.ID), h.Class("section"),
			h.Div(h.Class("container"),
				h.Div(h.Class("eyebrow"), g.Text(s.Eyebrow)),
				h.H2(h.Class("section-title"), g.Text(s.Title)),
				h.Div(h.Class("section-sub"), g.Raw(s.SubtitleHTML)),
				pills(s.Pills),
				cards(s.Cards),
				ctas(p, s.CTAs),
			),
		))
	}
	return nodes
}

func faq(p Page) g.Node {
	f := p.Content.FAQ
	n := len(f.Entries)
	items := []g.Node{h.Class("faq-list")}
	for i, e := range f.Entries {
		open := p.State.FAQ.IsOpen(i)
		toggle := p.State.Apply(ui.ToggleFAQ(i, n))
		items = append(items, h.Div(h.Class("faq-item"),
			h.A(h.Class("faq-question"), h.Href(ui.Href(PathHome, toggle, content.SectionFAQ)),
				h.Aria("expanded", strconv.FormatBool(open)),
				h.Span(g.Text(e.Question)),
			),
			g.If(open, h.Div(h.Class("faq-answer"), g.Raw(e.AnswerHTML))),
		))
	}
	return h.Section(h.ID(content.SectionFAQ), h.Class("section"),
		h.Div(h.Class("container"),
			h.Div(h.Class("center"),
				h.Div(h.Class("eyebrow"), g.Text(f.Eyebrow)),
				h.H2(h.Class("section-title"), g.Text(f.Title)),
				h.Div(h.Class("section-sub"), g.Text(f.Subtitle)),
			),
			h.Div(items...),
		),
	)
}

func contact(p Page) g.Node {
	c := p.Content.Contact
	return h.Section(h.ID(content.SectionContact), h.Class("section contact"),
		h.Div(h.Class("container"),
			h.Div(h.Class("eyebrow"), g.Text(c.Eyebrow)),
			h.H2(h.Class("section-title"), g.Text(c.Title)),
			h.Div(h.Class("section-sub"), g.Text(c.Subtitle)),
			cards(c.Cards),
			h.Div(h.Class("contact-methods"),
				h.Div(h.Class("card contact-method"),
					h.Div(h.Class("contact-method-label"), g.Text("Call or text")),
					h.A(h.Class("contact-method-value"), h.Href(c.Phone.URI), g.Text(c.Phone.Display)),
				),
				h.Div(h.Class("card contact-method"),
					h.Div(h.Class("contact-method-label"), g.Text("Email us")),
					h.A(h.Class("contact-method-value"), h.Href("mailto:"+c.Email), g.Text(c.Email)),
				),
			),
			g.If(c.Form && p.CSRFToken != "", contactForm(p)),
		),
	)
}

func field(name, label, kind string) g.Node {
	return g.El("label", h.Class("field"),
		h.Span(g.Text(label)),
		h.Input(h.Type(kind), h.Name(name)),
	)
}

func contactForm(p Page) g.Node {
	return g.El("form", h.Class("contact-form card"), h.Method("post"),
		h.Action(ui.Href(PathContact, p.State, "")),
		h.Input(h.Type("hidden"), h.Name(CSRFFieldName), h.Value(p.CSRFToken)),
		field("name", "Your name", "text"),
		field("business", "Business", "text"),
		field("contact", "Phone or email", "text"),
		g.El("label", h.Class("field"),
			h.Span(g.Text("What's the biggest headache?")),
			g.El("textarea", h.Name("message"), g.Attr("rows", "4")),
		),
		h.Button(h.Class("btn btn-primary"), h.Type("submit"), g.Text("Book my free checkup")),
	)
}

func footer(p Page) g.Node {
	f := p.Content.Footer
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container footer-inner"),
			h.Div(h.Class("footer-left"),
				h.Strong(g.Text(f.Company)),
				h.Span(g.Text(" · "+f.Line)),
			),
			h.Div(h.Class("footer-links"),
				h.A(h.Href("#"), g.Text("Privacy Policy")),
				h.A(h.Href("#"), g.Text("Terms")),
				h.A(h.Href("mailto:"+p.Content.Contact.Email), g.Text(p.Content.Contact.Email)),
			),
		),
		h.Div(h.Class("container center muted"),
			g.Textf("© %d %s", p.Year, f.Copyright),
		),
	)
}
