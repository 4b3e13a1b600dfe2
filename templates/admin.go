package templates

import (
	"fmt"
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"portfolio/analytics"
	"portfolio/constants"
	"portfolio/database"
	"portfolio/forms"
	"portfolio/uploads"
)

func LoginPage(props LayoutProps, email, errMsg string) g.Node {
	return AdminLayout(props,
		Div(Class("row"),
			Div(Class("col-6"),
				errorBox(errMsg),
				formEl("/admin/login",
					typedField("email", "Email", "email", email, true),
					typedField("password", "Password", "password", "", true),
					Button(Type("submit"), Class("button primary"), g.Text("Sign in")),
				),
			),
		),
	)
}

func DashboardPage(props LayoutProps, stats *database.DashboardStats, activity []database.ActivityItem) g.Node {
	items := make([]g.Node, 0, len(activity))
	for _, a := range activity {
		items = append(items, Li(
			g.El("span", Class("tag"), g.Text(a.Kind)),
			A(Href(a.Link), g.Text(a.Title)),
			Small(Class("meta"), g.Text(" "+a.CreatedAt.Format(dateLayout))),
		))
	}

	return AdminLayout(props,
		Div(Class("row"),
			statLink("Projects", stats.Projects, "/admin/projects"),
			statLink("Featured projects", stats.FeaturedProjects, "/admin/projects"),
			statLink("Skills", stats.Skills, "/admin/skills"),
			statLink("Technologies", stats.Technologies, "/admin/technologies"),
		),
		Div(Class("row"),
			statLink("Certifications", stats.Certifications, "/admin/certifications"),
			statLink("Blog posts", stats.Posts, "/admin/blog"),
			statLink("Total views", stats.TotalViews, "/admin/analytics"),
			statLink("Unread messages", stats.UnreadMessages, "/admin/messages"),
		),
		H3(g.Text("Recent activity")),
		emptyOr(len(items) == 0, "Nothing yet.", Ul(g.Group(items))),
	)
}

func ProjectsAdminPage(props LayoutProps, projects []database.Project) g.Node {
	rows := make([]g.Node, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, Tr(
			Td(g.Text(p.Title)),
			Td(g.Text(yesNo(p.Featured))),
			Td(g.Text(strconv.Itoa(p.Order))),
			actionsCell(fmt.Sprintf("/admin/projects/%d", p.ID)),
		))
	}
	return AdminLayout(props,
		newButton("/admin/projects/new", "New project"),
		adminTable([]string{"Title", "Featured", "Order", ""}, rows),
	)
}

func ProjectFormPage(props LayoutProps, action string, form forms.ProjectForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		formEl(action,
			textField("Title", "title", form.Title, true),
			textArea("Description", "description", form.Description, 3, true),
			textArea("Long description", "longDescription", form.LongDescription, 6, false),
			textField("Image URL", "image", form.Image, false),
			Div(Class("row"),
				Div(Class("col"), typedField("url", "GitHub URL", "githubUrl", form.GithubURL, false)),
				Div(Class("col"), typedField("url", "Live URL", "liveUrl", form.LiveURL, false)),
			),
			tagEditor("Technologies", "technologies", "newTechnology", form.Technologies, form.NewTechnology),
			Div(Class("row"),
				Div(Class("col"), numberField("Order", "order", form.Order, 0, 0)),
				Div(Class("col"), checkbox("Featured", "featured", form.Featured)),
			),
			saveButtons("/admin/projects"),
		),
	)
}

func SkillsAdminPage(props LayoutProps, skills []database.Skill) g.Node {
	rows := make([]g.Node, 0, len(skills))
	for _, s := range skills {
		rows = append(rows, Tr(
			Td(g.Textf("%s %s", s.Icon, s.Name)),
			Td(g.Text(s.Category)),
			Td(g.Textf("%d%%", s.Level)),
			Td(g.Text(strconv.Itoa(s.Order))),
			actionsCell(fmt.Sprintf("/admin/skills/%d", s.ID)),
		))
	}
	return AdminLayout(props,
		newButton("/admin/skills/new", "New skill"),
		adminTable([]string{"Name", "Category", "Level", "Order", ""}, rows),
	)
}

func SkillFormPage(props LayoutProps, action string, form forms.SkillForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		formEl(action,
			textField("Name", "name", form.Name, true),
			selectField("Category", "category", form.Category, constants.SKILL_CATEGORIES),
			numberField("Level (0-100)", "level", form.Level, 0, 100),
			Div(Class("row"),
				Div(Class("col"), textField("Icon", "icon", form.Icon, false)),
				Div(Class("col"), typedField("color", "Color", "color", form.Color, false)),
				Div(Class("col"), numberField("Order", "order", form.Order, 0, 0)),
			),
			saveButtons("/admin/skills"),
		),
	)
}

func TechnologiesAdminPage(props LayoutProps, technologies []database.Technology) g.Node {
	rows := make([]g.Node, 0, len(technologies))
	for _, t := range technologies {
		rows = append(rows, Tr(
			Td(g.Textf("%s %s", t.Icon, t.Name)),
			Td(g.Text(t.Category)),
			Td(g.Text(yesNo(t.Featured))),
			Td(g.Text(strconv.Itoa(t.Order))),
			actionsCell(fmt.Sprintf("/admin/technologies/%d", t.ID)),
		))
	}
	return AdminLayout(props,
		newButton("/admin/technologies/new", "New technology"),
		adminTable([]string{"Name", "Category", "Featured", "Order", ""}, rows),
	)
}

func TechnologyFormPage(props LayoutProps, action string, form forms.TechnologyForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		formEl(action,
			textField("Name", "name", form.Name, true),
			textField("Category", "category", form.Category, true),
			textArea("Description", "description", form.Description, 3, false),
			typedField("url", "Website", "website", form.Website, false),
			Div(Class("row"),
				Div(Class("col"), textField("Icon", "icon", form.Icon, false)),
				Div(Class("col"), typedField("color", "Color", "color", form.Color, false)),
				Div(Class("col"), numberField("Order", "order", form.Order, 0, 0)),
			),
			checkbox("Featured", "featured", form.Featured),
			saveButtons("/admin/technologies"),
		),
	)
}

func CertificationsAdminPage(props LayoutProps, certifications []database.Certification) g.Node {
	rows := make([]g.Node, 0, len(certifications))
	for _, c := range certifications {
		rows = append(rows, Tr(
			Td(g.Text(c.Name)),
			Td(g.Text(c.Issuer)),
			Td(g.Text(c.IssueDate.Format(dateLayout))),
			Td(g.Text(yesNo(c.Featured))),
			actionsCell(fmt.Sprintf("/admin/certifications/%d", c.ID)),
		))
	}
	return AdminLayout(props,
		newButton("/admin/certifications/new", "New certification"),
		adminTable([]string{"Name", "Issuer", "Issued", "Featured", ""}, rows),
	)
}

func CertificationFormPage(props LayoutProps, action string, form forms.CertificationForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		formEl(action,
			textField("Name", "name", form.Name, true),
			textField("Issuer", "issuer", form.Issuer, true),
			textArea("Description", "description", form.Description, 3, false),
			Div(Class("row"),
				Div(Class("col"), textField("Credential ID", "credentialId", form.CredentialID, false)),
				Div(Class("col"), typedField("url", "Credential URL", "credentialUrl", form.CredentialURL, false)),
			),
			Div(Class("row"),
				Div(Class("col"), typedField("date", "Issue date", "issueDate", form.IssueDate, true)),
				Div(Class("col"), typedField("date", "Expiry date (leave empty if it never expires)", "expiryDate", form.ExpiryDate, false)),
			),
			textField("Image URL", "image", form.Image, false),
			Div(Class("row"),
				Div(Class("col"), numberField("Order", "order", form.Order, 0, 0)),
				Div(Class("col"), checkbox("Featured", "featured", form.Featured)),
			),
			saveButtons("/admin/certifications"),
		),
	)
}

func BlogAdminPage(props LayoutProps, posts []database.BlogPost) g.Node {
	rows := make([]g.Node, 0, len(posts))
	for _, p := range posts {
		status := "Draft"
		if p.Published {
			status = "Published"
		}
		rows = append(rows, Tr(
			Td(A(Href("/blog/"+p.Slug), g.Text(p.Title))),
			Td(g.Text(status)),
			Td(g.Text(yesNo(p.Featured))),
			Td(g.Text(strconv.Itoa(p.Views))),
			actionsCell(fmt.Sprintf("/admin/blog/%d", p.ID)),
		))
	}
	return AdminLayout(props,
		newButton("/admin/blog/new", "New post"),
		adminTable([]string{"Title", "Status", "Featured", "Views", ""}, rows),
	)
}

func BlogPostFormPage(props LayoutProps, action string, form forms.BlogPostForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		g.If(form.Views > 0 || form.ReadTime > 0,
			P(Class("meta"), g.Textf("%d min read · %d views", form.ReadTime, form.Views)),
		),
		formEl(action,
			textField("Title", "title", form.Title, true),
			textField("Slug (derived from the title when empty)", "slug", form.Slug, false),
			textArea("Excerpt", "excerpt", form.Excerpt, 2, true),
			textArea("Content (markdown)", "content", form.Content, 16, true),
			tagEditor("Tags", "tags", "newTag", form.Tags, form.NewTag),
			textField("Image URL", "image", form.Image, false),
			Div(Class("row"),
				Div(Class("col"), checkbox("Published", "published", form.Published)),
				Div(Class("col"), checkbox("Featured", "featured", form.Featured)),
			),
			saveButtons("/admin/blog"),
		),
	)
}

func MessagesPage(props LayoutProps, contacts []database.Contact) g.Node {
	cards := make([]g.Node, 0, len(contacts))
	for _, c := range contacts {
		action, label := fmt.Sprintf("/admin/messages/%d/read", c.ID), "Mark as read"
		if c.Read {
			action, label = fmt.Sprintf("/admin/messages/%d/unread", c.ID), "Mark as unread"
		}
		cards = append(cards, Div(Class("card"),
			Header(
				Strong(g.Text(c.Name)),
				g.Text(" "),
				A(Href("mailto:"+c.Email), g.Text(c.Email)),
				g.If(!c.Read, g.El("span", Class("tag tag-active"), g.Text("new"))),
			),
			g.If(c.Subject != "", P(Strong(g.Text(c.Subject)))),
			P(g.Text(c.Message)),
			P(Class("meta"), g.Text(c.CreatedAt.Format(dateLayout+" 15:04"))),
			postButton(action, label, "button outline"),
		))
	}
	return AdminLayout(props,
		emptyOr(len(cards) == 0, "No messages yet.", g.Group(cards)),
	)
}

func SettingsPage(props LayoutProps, form forms.SettingsForm, errMsg string) g.Node {
	return AdminLayout(props,
		errorBox(errMsg),
		formEl("/admin/settings",
			H3(g.Text("Site")),
			textField("Site name", "siteName", form.SiteName, false),
			textArea("Site description", "siteDescription", form.SiteDescription, 3, false),
			H3(g.Text("Contact")),
			Div(Class("row"),
				Div(Class("col"), typedField("email", "Email", "email", form.Email, false)),
				Div(Class("col"), textField("Phone", "phone", form.Phone, false)),
				Div(Class("col"), textField("Location", "location", form.Location, false)),
			),
			H3(g.Text("Social")),
			Div(Class("row"),
				Div(Class("col"), typedField("url", "GitHub", "githubUrl", form.GithubURL, false)),
				Div(Class("col"), typedField("url", "LinkedIn", "linkedinUrl", form.LinkedinURL, false)),
				Div(Class("col"), typedField("url", "Twitter", "twitterUrl", form.TwitterURL, false)),
			),
			H3(g.Text("SEO")),
			textField("Meta title", "metaTitle", form.MetaTitle, false),
			textArea("Meta description", "metaDescription", form.MetaDescription, 2, false),
			textField("Meta keywords", "metaKeywords", form.MetaKeywords, false),
			H3(g.Text("Features")),
			checkbox("Enable analytics", "enableAnalytics", form.EnableAnalytics),
			checkbox("Maintenance mode", "maintenanceMode", form.MaintenanceMode),
			saveButtons("/admin"),
		),
	)
}

func FilesPage(props LayoutProps, files []uploads.File, maxBytes int64) g.Node {
	rows := make([]g.Node, 0, len(files))
	for _, f := range files {
		rows = append(rows, Tr(
			Td(A(Href(f.URL), Target("_blank"), g.Text(f.Name))),
			Td(Code(g.Text(f.URL))),
			Td(g.Text(humanSize(f.Size))),
			Td(postButton("/admin/files/"+f.Name+"/delete", "Delete", "button error")),
		))
	}
	return AdminLayout(props,
		multipartForm("/admin/files",
			label("file", fmt.Sprintf("Upload a file (max %s)", humanSize(maxBytes))),
			Input(Type("file"), ID("file"), Name("file"), Required()),
			Button(Type("submit"), Class("button primary"), g.Text("Upload")),
		),
		emptyOr(len(rows) == 0, "No files uploaded yet.",
			adminTable([]string{"File", "URL", "Size", ""}, rows),
		),
	)
}

func AnalyticsPage(props LayoutProps, report *analytics.Report) g.Node {
	pages := make([]g.Node, 0, len(report.TopPages))
	for _, p := range report.TopPages {
		pages = append(pages, Tr(Td(g.Text(p.Page)), Td(g.Text(strconv.Itoa(p.Views))), Td(g.Text(strconv.Itoa(p.Clicks)))))
	}
	queries := make([]g.Node, 0, len(report.SearchQueries))
	for _, q := range report.SearchQueries {
		queries = append(queries, Tr(
			Td(g.Text(q.Query)),
			Td(g.Text(strconv.Itoa(q.Impressions))),
			Td(g.Text(strconv.Itoa(q.Clicks))),
			Td(g.Textf("%.2f%%", q.CTR)),
		))
	}
	activity := make([]g.Node, 0, len(report.RecentActivity))
	for _, a := range report.RecentActivity {
		activity = append(activity, Li(g.El("span", Class("tag"), g.Text(a.Type)), g.Text(a.Description), Small(Class("meta"), g.Text(" "+a.Date))))
	}

	return AdminLayout(props,
		Div(Class("row"),
			statBox("Total views", report.TotalViews),
			statBox("Monthly views", report.MonthlyViews),
			statBox("Total visitors", report.TotalVisitors),
			statBox("Monthly visitors", report.MonthlyVisitors),
		),
		H3(g.Text("Top pages")),
		adminTable([]string{"Page", "Views", "Clicks"}, pages),
		H3(g.Text("Search queries")),
		adminTable([]string{"Query", "Impressions", "Clicks", "CTR"}, queries),
		H3(g.Text("Recent activity")),
		Ul(g.Group(activity)),
	)
}

type ImportResult struct {
	Imported []string
	Skipped  []string
	Failed   []string
}

func ImportPage(props LayoutProps, result *ImportResult) g.Node {
	return AdminLayout(props,
		P(g.Text("Upload markdown files. Front matter may set title, slug, excerpt, tags, image, published and featured.")),
		multipartForm("/admin/blog/import",
			label("posts", "Markdown files"),
			Input(Type("file"), ID("posts"), Name("posts"), g.Attr("accept", ".md,.markdown"), g.Attr("multiple", ""), Required()),
			checkbox("Overwrite posts with the same slug", "overwriteExisting", false),
			Button(Type("submit"), Class("button primary"), g.Text("Import")),
		),
		g.Group(importSummary(result)),
	)
}

func importSummary(result *ImportResult) []g.Node {
	if result == nil {
		return nil
	}
	list := func(title string, items []string) g.Node {
		if len(items) == 0 {
			return nil
		}
		lis := make([]g.Node, 0, len(items))
		for _, item := range items {
			lis = append(lis, Li(g.Text(item)))
		}
		return Div(H3(g.Textf("%s (%d)", title, len(items))), Ul(g.Group(lis)))
	}
	return []g.Node{
		list("Imported", result.Imported),
		list("Skipped", result.Skipped),
		list("Failed", result.Failed),
	}
}

func adminTable(headers []string, rows []g.Node) g.Node {
	ths := make([]g.Node, 0, len(headers))
	for _, h := range headers {
		ths = append(ths, Th(g.Text(h)))
	}
	return Table(Class("striped"),
		THead(Tr(g.Group(ths))),
		TBody(g.Group(rows)),
	)
}

func actionsCell(base string) g.Node {
	return Td(Class("is-right"),
		A(Href(base), Class("button outline"), g.Text("Edit")),
		g.El("form", Class("inline"), Method("post"), Action(base+"/delete"),
			g.Attr("onsubmit", "return confirm('Delete this item?')"),
			Button(Type("submit"), Class("button error"), g.Text("Delete")),
		),
	)
}

func newButton(href, text string) g.Node {
	return P(A(Href(href), Class("button primary"), g.Text(text)))
}

func statLink[N ~int | ~int64](label string, n N, href string) g.Node {
	return Div(Class("col card is-center"), Style("flex-direction: column;"),
		Div(Class("stat"), g.Text(strconv.FormatInt(int64(n), 10))),
		A(Href(href), Class("meta"), g.Text(label)),
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
