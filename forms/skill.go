package forms

import (
	"net/url"

	"portfolio/constants"
	"portfolio/database"
)

const defaultSkillLevel = 50

type SkillForm struct {
	Name     string
	Category string
	Level    int
	Icon     string
	Color    string
	Order    int
}

func NewSkillForm(s *database.Skill) SkillForm {
	if s == nil {
		return SkillForm{
			Category: constants.SKILL_CATEGORIES[0],
			Level:    defaultSkillLevel,
			Color:    "#3b82f6",
		}
	}
	return SkillForm{
		Name:     s.Name,
		Category: s.Category,
		Level:    s.Level,
		Icon:     s.Icon,
		Color:    s.Color,
		Order:    s.Order,
	}
}

func (f *SkillForm) Bind(values url.Values) (Op, error) {
	f.Name = formString(values, "name")
	f.Category = formString(values, "category")
	f.Icon = formString(values, "icon")
	f.Color = formString(values, "color")

	var err error
	if f.Level, err = formInt(values, "level"); err != nil {
		return Op{}, err
	}
	if f.Order, err = formInt(values, "order"); err != nil {
		return Op{}, err
	}
	return ParseOp(values.Get(FieldOp)), nil
}

func (f SkillForm) Input() database.SkillInput {
	return database.SkillInput{
		Name:     f.Name,
		Category: f.Category,
		Level:    f.Level,
		Icon:     f.Icon,
		Color:    f.Color,
		Order:    f.Order,
	}
}
