package forms

import (
	"net/url"

	"portfolio/database"
)

type ProjectForm struct {
	Title           string
	Description     string
	LongDescription string
	Image           string
	GithubURL       string
	LiveURL         string
	Technologies    TagList
	NewTechnology   string
	Featured        bool
	Order           int
}

func NewProjectForm(p *database.Project) ProjectForm {
	if p == nil {
		return ProjectForm{}
	}
	return ProjectForm{
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Image:           p.Image,
		GithubURL:       p.GithubURL,
		LiveURL:         p.LiveURL,
		Technologies:    TagList(p.TechnologyList()),
		Featured:        p.Featured,
		Order:           p.Order,
	}
}

func (f *ProjectForm) Bind(values url.Values) (Op, error) {
	op := ParseOp(values.Get(FieldOp))

	f.Title = formString(values, "title")
	f.Description = formString(values, "description")
	f.LongDescription = formString(values, "longDescription")
	f.Image = formString(values, "image")
	f.GithubURL = formString(values, "githubUrl")
	f.LiveURL = formString(values, "liveUrl")
	f.Featured = formBool(values, "featured")
	f.Technologies, f.NewTechnology = bindTags(values, "technologies", "newTechnology", op)

	order, err := formInt(values, "order")
	f.Order = order
	return op, err
}

func (f ProjectForm) Input() database.ProjectInput {
	return database.ProjectInput{
		Title:           f.Title,
		Description:     f.Description,
		LongDescription: f.LongDescription,
		Image:           f.Image,
		GithubURL:       f.GithubURL,
		LiveURL:         f.LiveURL,
		Technologies:    f.Technologies.Strings(),
		Featured:        f.Featured,
		Order:           f.Order,
	}
}
