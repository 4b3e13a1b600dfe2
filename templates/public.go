package templates

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strconv"
	"time"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"portfolio/content"
	"portfolio/database"
	"portfolio/gists"
)

const dateLayout = "Jan 2, 2006"

type HomeData struct {
	Settings         *database.Settings
	FeaturedProjects []database.Project
	FeaturedPosts    []database.BlogPost
	Technologies     []database.Technology
}

func HomePage(props LayoutProps, data HomeData) g.Node {
	return Layout(props,
		Section(Class("is-center"), Style("flex-direction: column; padding: 3rem 0;"),
			H1(g.Text(data.Settings.SiteName)),
			P(Class("text-grey"), g.Text(data.Settings.SiteDescription)),
			P(
				A(Href("/projects"), Class("button primary"), g.Text("View projects")),
				g.Text(" "),
				A(Href("/contact"), Class("button outline"), g.Text("Get in touch")),
			),
		),
		Section(
			H2(g.Text("Featured projects")),
			emptyOr(len(data.FeaturedProjects) == 0, "No featured projects yet.",
				Div(Class("row"), g.Group(projectCards(data.FeaturedProjects))),
			),
		),
		Section(
			H2(g.Text("Technologies")),
			P(g.Group(technologyChips(data.Technologies))),
		),
		Section(
			H2(g.Text("Latest writing")),
			emptyOr(len(data.FeaturedPosts) == 0, "No featured posts yet.",
				g.Group(postCards(data.FeaturedPosts)),
			),
			P(A(Href("/blog"), g.Text("All posts →"))),
		),
	)
}

type AboutData struct {
	Settings       *database.Settings
	SkillGroups    []content.Group[database.Skill]
	Technologies   []database.Technology
	Certifications []database.Certification
	Now            time.Time
}

func AboutPage(props LayoutProps, data AboutData) g.Node {
	certs := make([]g.Node, 0, len(data.Certifications))
	for _, c := range data.Certifications {
		certs = append(certs, Li(
			Strong(g.Text(c.Name)), g.Textf(" · %s ", c.Issuer),
			statusBadge(c.StatusAt(data.Now)),
		))
	}

	return Layout(props,
		H1(g.Text("About")),
		P(g.Text(data.Settings.SiteDescription)),
		contactDetails(data.Settings),
		H2(g.Text("Skills")),
		g.Group(skillGroups(data.SkillGroups)),
		H2(g.Text("Featured technologies")),
		P(g.Group(technologyChips(data.Technologies))),
		H2(g.Text("Certifications")),
		emptyOr(len(certs) == 0, "No featured certifications.", Ul(g.Group(certs))),
	)
}

func ProjectsPage(props LayoutProps, featured, others []database.Project) g.Node {
	return Layout(props,
		H1(g.Text("Projects")),
		emptyOr(len(featured)+len(others) == 0, "No projects yet.",
			g.Group([]g.Node{
				g.If(len(featured) > 0, H2(g.Text("Featured"))),
				Div(Class("row"), g.Group(projectCards(featured))),
				g.If(len(others) > 0, H2(g.Text("More projects"))),
				Div(Class("row"), g.Group(projectCards(others))),
			}),
		),
	)
}

func SkillsPage(props LayoutProps, groups []content.Group[database.Skill], technologies []database.Technology) g.Node {
	techGroups := content.GroupBy(technologies, database.Technology.GetCategory)
	techSections := make([]g.Node, 0, len(techGroups))
	for _, grp := range techGroups {
		techSections = append(techSections, Div(
			H3(g.Text(grp.Key)),
			P(g.Group(technologyChips(grp.Items))),
		))
	}

	return Layout(props,
		H1(g.Text("Skills")),
		emptyOr(len(groups) == 0, "No skills yet.", g.Group(skillGroups(groups))),
		H2(g.Text("Technologies")),
		g.Group(techSections),
	)
}

type CertificationView struct {
	Certification database.Certification
	Status        content.CertificationStatus
}

type CertificationsData struct {
	Items    []CertificationView
	Active   int
	Featured int
	Expired  int
}

func CertificationsPage(props LayoutProps, data CertificationsData) g.Node {
	cards := make([]g.Node, 0, len(data.Items))
	for _, item := range data.Items {
		c := item.Certification
		expiry := "No expiration"
		if c.ExpiryDate != nil {
			expiry = "Expires " + c.ExpiryDate.Format(dateLayout)
		}
		cards = append(cards, Div(Class("card"),
			Header(H3(g.Text(c.Name)), P(Class("meta"), g.Text(c.Issuer))),
			g.If(c.Description != "", P(g.Text(c.Description))),
			P(Class("meta"),
				g.Textf("Issued %s · %s ", c.IssueDate.Format(dateLayout), expiry),
				statusBadge(item.Status),
			),
			g.If(c.CredentialID != "", P(Class("meta"), g.Textf("Credential ID: %s", c.CredentialID))),
			g.If(c.CredentialURL != "", A(Href(c.CredentialURL), Target("_blank"), Rel("noopener"), g.Text("Verify credential"))),
		))
	}

	return Layout(props,
		H1(g.Text("Certifications")),
		Div(Class("row"),
			statBox("Active", data.Active),
			statBox("Featured", data.Featured),
			statBox("Expired", data.Expired),
		),
		emptyOr(len(cards) == 0, "No certifications yet.", g.Group(cards)),
	)
}

type BlogIndexData struct {
	Featured []database.BlogPost
	Recent   []database.BlogPost
	Tags     []string
	Query    string
	Tag      string
}

func BlogIndexPage(props LayoutProps, data BlogIndexData) g.Node {
	chips := []g.Node{tagChip("All", "/blog"+queryString(data.Query, ""), data.Tag == "")}
	for _, t := range data.Tags {
		chips = append(chips, tagChip(t, "/blog"+queryString(data.Query, t), data.Tag == t))
	}

	filtering := data.Query != "" || data.Tag != ""

	return Layout(props,
		H1(g.Text("Blog")),
		g.El("form", Method("get"), Action("/blog"), Class("row"),
			Div(Class("col"), Input(Type("search"), Name("q"), Value(data.Query), Placeholder("Search posts..."))),
			g.If(data.Tag != "", Input(Type("hidden"), Name("tag"), Value(data.Tag))),
			Div(Class("col-2"), Button(Type("submit"), Class("button"), g.Text("Search"))),
		),
		P(g.Group(chips)),
		g.If(!filtering && len(data.Featured) > 0, g.Group([]g.Node{
			H2(g.Text("Featured")),
			g.Group(postCards(data.Featured)),
		})),
		g.If(!filtering, H2(g.Text("Recent posts"))),
		emptyOr(len(data.Recent) == 0, "No posts match your search.", g.Group(postCards(data.Recent))),
	)
}

func BlogPostPage(props LayoutProps, post database.BlogPost, body template.HTML, related []database.BlogPost) g.Node {
	return Layout(props,
		Article(
			Header(
				H1(g.Text(post.Title)),
				P(Class("meta"),
					g.Textf("%s · %d min read · %d views", post.CreatedAt.Format(dateLayout), post.ReadTime, post.Views),
					g.If(!post.Published, Strong(g.Text(" · Draft"))),
				),
				P(g.Group(tagLinks(post.TagList()))),
			),
			g.If(post.Image != "", Img(Src(post.Image), Alt(post.Title))),
			Div(Class("post-body"), g.Raw(string(body))),
		),
		g.If(len(related) > 0, Section(
			H2(g.Text("Related posts")),
			g.Group(postCards(related)),
		)),
		P(A(Href("/blog"), g.Text("← Back to blog"))),
	)
}

type ContactValues struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func ContactPage(props LayoutProps, settings *database.Settings, values ContactValues, errMsg string) g.Node {
	return Layout(props,
		H1(g.Text("Contact")),
		Div(Class("row"),
			Div(Class("col-4"),
				H3(g.Text("Get in touch")),
				contactDetails(settings),
			),
			Div(Class("col"),
				errorBox(errMsg),
				formEl("/contact",
					textField("Name", "name", values.Name, true),
					typedField("email", "Email", "email", values.Email, true),
					textField("Subject", "subject", values.Subject, false),
					textArea("Message", "message", values.Message, 6, true),
					Button(Type("submit"), Class("button primary"), g.Text("Send message")),
				),
			),
		),
	)
}

func GistsPage(props LayoutProps, list []gists.Gist, totals gists.Totals) g.Node {
	cards := make([]g.Node, 0, len(list))
	for _, gist := range list {
		names := make([]string, 0, len(gist.Files))
		for name := range gist.Files {
			names = append(names, name)
		}
		sort.Strings(names)

		var files []g.Node
		for _, name := range names {
			f := gist.Files[name]
			files = append(files, Div(
				P(Strong(g.Text(name)), g.Textf(" · %s · %d bytes", f.Language, f.Size)),
				Pre(Code(g.Text(f.Content))),
			))
		}
		cards = append(cards, Div(Class("card"),
			Header(H3(A(Href(gist.HTMLURL), Target("_blank"), Rel("noopener"), g.Text(gist.Description)))),
			P(Class("meta"), g.Textf("Updated %s · %d comments", gist.UpdatedAt.Format(dateLayout), gist.Comments)),
			g.Group(files),
		))
	}

	return Layout(props,
		H1(g.Text("Gists")),
		Div(Class("row"),
			statBox("Gists", totals.Count),
			statBox("Forks", totals.Forks),
			statBox("Comments", totals.Comments),
		),
		emptyOr(len(cards) == 0, "No gists to show right now.", g.Group(cards)),
	)
}

func MaintenancePage(props LayoutProps, settings *database.Settings) g.Node {
	return Layout(props,
		Section(Class("is-center"), Style("flex-direction: column; padding: 4rem 0;"),
			H1(g.Text("Down for maintenance")),
			P(g.Textf("%s is being updated. Please check back soon.", settings.SiteName)),
			g.If(settings.Email != "", P(A(Href("mailto:"+settings.Email), g.Text(settings.Email)))),
		),
	)
}

func NotFoundPage(props LayoutProps) g.Node {
	return Layout(props,
		Section(Class("is-center"), Style("flex-direction: column; padding: 4rem 0;"),
			H1(g.Text("Page not found")),
			P(A(Href("/"), g.Text("Go home"))),
		),
	)
}

func projectCards(projects []database.Project) []g.Node {
	cards := make([]g.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, Div(Class("col-6"),
			Div(Class("card"),
				g.If(p.Image != "", Img(Src(p.Image), Alt(p.Title))),
				Header(H3(g.Text(p.Title))),
				P(g.Text(p.Description)),
				g.If(p.LongDescription != "", P(Class("meta"), g.Text(p.LongDescription))),
				P(g.Group(textChips(p.TechnologyList()))),
				Footer(Class("is-right"),
					g.If(p.GithubURL != "", A(Href(p.GithubURL), Target("_blank"), Rel("noopener"), Class("button outline"), g.Text("Code"))),
					g.If(p.LiveURL != "", A(Href(p.LiveURL), Target("_blank"), Rel("noopener"), Class("button primary"), g.Text("Live"))),
				),
			),
		))
	}
	return cards
}

func postCards(posts []database.BlogPost) []g.Node {
	cards := make([]g.Node, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, Div(Class("card"),
			Header(H3(A(Href("/blog/"+p.Slug), g.Text(p.Title)))),
			P(Class("meta"), g.Textf("%s · %d min read · %d views", p.CreatedAt.Format(dateLayout), p.ReadTime, p.Views)),
			P(g.Text(p.Excerpt)),
			P(g.Group(tagLinks(p.TagList()))),
		))
	}
	return cards
}

func skillGroups(groups []content.Group[database.Skill]) []g.Node {
	sections := make([]g.Node, 0, len(groups))
	for _, grp := range groups {
		items := make([]g.Node, 0, len(grp.Items))
		for _, s := range grp.Items {
			items = append(items, Div(Class("row"),
				Div(Class("col-4"), g.Textf("%s %s", s.Icon, s.Name)),
				Div(Class("col"),
					Div(Class("level"), g.Attr("title", strconv.Itoa(s.Level)+"%"),
						Div(Style(fmt.Sprintf("width: %d%%; background: %s;", s.Level, colorOr(s.Color)))),
					),
				),
			))
		}
		sections = append(sections, Div(Class("card"), H3(g.Text(grp.Key)), g.Group(items)))
	}
	return sections
}

func technologyChips(technologies []database.Technology) []g.Node {
	chips := make([]g.Node, 0, len(technologies))
	for _, t := range technologies {
		chip := g.El("span", Class("tag"), g.Attr("title", t.Description), g.Textf("%s %s", t.Icon, t.Name))
		if t.Website != "" {
			chip = A(Href(t.Website), Target("_blank"), Rel("noopener"), chip)
		}
		chips = append(chips, chip)
	}
	return chips
}

func textChips(values []string) []g.Node {
	chips := make([]g.Node, 0, len(values))
	for _, v := range values {
		chips = append(chips, g.El("span", Class("tag"), g.Text(v)))
	}
	return chips
}

func tagLinks(tags []string) []g.Node {
	links := make([]g.Node, 0, len(tags))
	for _, t := range tags {
		links = append(links, A(Href("/blog?tag="+url.QueryEscape(t)), Class("tag"), g.Text(t)))
	}
	return links
}

func tagChip(text, href string, active bool) g.Node {
	class := "tag"
	if active {
		class = "tag tag-active"
	}
	return A(Href(href), Class(class), g.Text(text))
}

func queryString(q, tag string) string {
	values := url.Values{}
	if q != "" {
		values.Set("q", q)
	}
	if tag != "" {
		values.Set("tag", tag)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func statusBadge(status content.CertificationStatus) g.Node {
	class := "tag"
	switch status {
	case content.StatusExpired:
		class += " bg-error text-white"
	case content.StatusExpiringSoon:
		class += " bg-warning"
	default:
		class += " bg-success text-white"
	}
	return g.El("span", Class(class), g.Text(status.Label()))
}

func statBox(label string, n int) g.Node {
	return Div(Class("col card is-center"), Style("flex-direction: column;"),
		Div(Class("stat"), g.Text(strconv.Itoa(n))),
		Div(Class("meta"), g.Text(label)),
	)
}

func contactDetails(s *database.Settings) g.Node {
	return Ul(
		g.If(s.Email != "", Li(A(Href("mailto:"+s.Email), g.Text(s.Email)))),
		g.If(s.Phone != "", Li(g.Text(s.Phone))),
		g.If(s.Location != "", Li(g.Text(s.Location))),
		g.If(s.GithubURL != "", Li(A(Href(s.GithubURL), g.Text("GitHub")))),
		g.If(s.LinkedinURL != "", Li(A(Href(s.LinkedinURL), g.Text("LinkedIn")))),
		g.If(s.TwitterURL != "", Li(A(Href(s.TwitterURL), g.Text("Twitter")))),
	)
}

func emptyOr(empty bool, message string, node g.Node) g.Node {
	if empty {
		return P(Class("text-grey"), g.Text(message))
	}
	return node
}

func colorOr(c string) string {
	if c == "" {
		return "#6366f1"
	}
	return c
}
