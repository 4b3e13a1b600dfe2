package forms

import (
	"net/url"

	"portfolio/database"
)

type TechnologyForm struct {
	Name        string
	Category    string
	Description string
	Icon        string
	Color       string
	Website     string
	Featured    bool
	Order       int
}

func NewTechnologyForm(t *database.Technology) TechnologyForm {
	if t == nil {
		return TechnologyForm{Color: "#3b82f6"}
	}
	return TechnologyForm{
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Icon:        t.Icon,
		Color:       t.Color,
		Website:     t.Website,
		Featured:    t.Featured,
		Order:       t.Order,
	}
}

func (f *TechnologyForm) Bind(values url.Values) (Op, error) {
	f.Name = formString(values, "name")
	f.Category = formString(values, "category")
	f.Description = formString(values, "description")
	f.Icon = formString(values, "icon")
	f.Color = formString(values, "color")
	f.Website = formString(values, "website")
	f.Featured = formBool(values, "featured")

	order, err := formInt(values, "order")
	f.Order = order
	return ParseOp(values.Get(FieldOp)), err
}

func (f TechnologyForm) Input() database.TechnologyInput {
	return database.TechnologyInput{
		Name:        f.Name,
		Category:    f.Category,
		Description: f.Description,
		Icon:        f.Icon,
		Color:       f.Color,
		Website:     f.Website,
		Featured:    f.Featured,
		Order:       f.Order,
	}
}
