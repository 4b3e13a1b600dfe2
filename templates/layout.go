package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type Flash struct {
	Kind    string
	Message string
}

type LayoutProps struct {
	Title       string
	Description string
	Keywords    string
	SiteName    string
	CurrentUser string
	Analytics   bool
	Flash       *Flash
}

func (p LayoutProps) pageTitle() string {
	switch {
	case p.Title == "":
		return p.SiteName
	case p.SiteName == "":
		return p.Title
	default:
		return p.Title + " | " + p.SiteName
	}
}

var publicLinks = []struct{ href, label string }{
	{"/", "Home"},
	{"/about", "About"},
	{"/projects", "Projects"},
	{"/skills", "Skills"},
	{"/certifications", "Certifications"},
	{"/blog", "Blog"},
	{"/gists", "Gists"},
	{"/contact", "Contact"},
}

func NavbarComponent(props LayoutProps) g.Node {
	links := make([]g.Node, 0, len(publicLinks))
	for _, l := range publicLinks {
		links = append(links, A(Href(l.href), g.Text(l.label)))
	}

	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(props.SiteName))),
		),
		Div(Class("nav-links nav-right"),
			g.Group(links),
			g.If(props.CurrentUser != "",
				A(Href("/admin"), Class("button outline"), g.Text("Admin")),
			),
		),
	)
}

func FooterComponent(siteName string) g.Node {
	return Footer(Class("footer"),
		P(Class("text-grey"),
			Small(g.Textf("%s. Built with Go.", siteName)),
		),
	)
}

func FlashComponent(flash *Flash) g.Node {
	if flash == nil || flash.Message == "" {
		return nil
	}
	kind := "success"
	if flash.Kind == "error" {
		kind = "error"
	}
	return Div(Class("toast toast-"+kind), g.Attr("role", "status"), g.Text(flash.Message))
}

func AnalyticsComponent() g.Node {
	return Script(g.Attr("defer", ""), Src("/assets/js/analytics.js"))
}

const baseStyles = `
	body { max-width: 1100px; margin: 0 auto; }
	.toast { padding: 1rem; margin: 1rem 0; border-radius: 4px; }
	.toast-success { background: #d1fadf; }
	.toast-error { background: #fee4e2; }
	.tag { display: inline-block; padding: 0 .6rem; margin: .2rem; border-radius: 1rem; background: #eef2ff; }
	.tag-active { background: #6366f1; color: #fff; }
	.card { margin-bottom: 1.5rem; }
	.meta { color: #667085; font-size: .9em; }
	.stat { font-size: 2rem; font-weight: bold; }
	.level { height: .5rem; background: #e4e7ec; border-radius: .25rem; }
	.level > div { height: 100%; border-radius: .25rem; background: #6366f1; }
	.admin-nav a { display: block; padding: .3rem 0; }
	.inline { display: inline; }
	pre { overflow-x: auto; }
`

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.If(props.Description != "", Meta(Name("description"), Content(props.Description))),
				g.If(props.Keywords != "", Meta(Name("keywords"), Content(props.Keywords))),
				Link(Rel("stylesheet"), Href("https://unpkg.com/chota@0.9.2/dist/chota.min.css")),
				StyleEl(g.Raw(baseStyles)),
				TitleEl(g.Text(props.pageTitle())),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					NavbarComponent(props),
					FlashComponent(props.Flash),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(props.SiteName),
				g.If(props.Analytics, AnalyticsComponent()),
			),
		),
	)
}

var adminLinks = []struct{ href, label string }{
	{"/admin", "Dashboard"},
	{"/admin/projects", "Projects"},
	{"/admin/skills", "Skills"},
	{"/admin/technologies", "Technologies"},
	{"/admin/certifications", "Certifications"},
	{"/admin/blog", "Blog"},
	{"/admin/blog/import", "Import posts"},
	{"/admin/messages", "Messages"},
	{"/admin/files", "Files"},
	{"/admin/analytics", "Analytics"},
	{"/admin/settings", "Settings"},
}

// AdminLayout wraps admin screens with the admin navigation.
func AdminLayout(props LayoutProps, children ...g.Node) g.Node {
	links := make([]g.Node, 0, len(adminLinks))
	for _, l := range adminLinks {
		links = append(links, A(Href(l.href), g.Text(l.label)))
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("robots"), Content("noindex")),
				Link(Rel("stylesheet"), Href("https://unpkg.com/chota@0.9.2/dist/chota.min.css")),
				StyleEl(g.Raw(baseStyles)),
				TitleEl(g.Text(props.Title+" | Admin")),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					Nav(Class("nav"),
						Div(Class("nav-left"),
							Div(Class("brand"), A(Href("/admin"), g.Textf("%s admin", props.SiteName))),
						),
						Div(Class("nav-right"),
							A(Href("/"), g.Text("View site")),
							g.If(props.CurrentUser != "",
								postButton("/admin/logout", "Logout", "button clear"),
							),
						),
					),
					FlashComponent(props.Flash),
					Div(Class("row"),
						g.If(props.CurrentUser != "",
							Aside(Class("col-2 admin-nav"), g.Group(links)),
						),
						Main(Class("col"),
							H2(g.Text(props.Title)),
							g.Group(children),
						),
					),
				),
			),
		),
	)
}

// postButton renders a one-button form, used for actions that change state.
func postButton(action, label, class string) g.Node {
	return g.El("form", Class("inline"), Method("post"), Action(action),
		Button(Type("submit"), Class(class), g.Text(label)),
	)
}
