package database

import (
	"context"

	"portfolio/content"
)

func (s *Store) ListSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := s.db.WithContext(ctx).
		Order("category ASC").
		Order("sort_order ASC").
		Order("name ASC").
		Find(&skills).Error
	return skills, err
}

// ListSkillsGrouped returns skills partitioned by category.
func (s *Store) ListSkillsGrouped(ctx context.Context) ([]content.Group[Skill], error) {
	skills, err := s.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	return content.GroupSkills(skills), nil
}

func (s *Store) GetSkill(ctx context.Context, id uint) (*Skill, error) {
	return getByID[Skill](ctx, s.db, id)
}

func (s *Store) CreateSkill(ctx context.Context, in SkillInput) (*Skill, error) {
	skill := Skill{
		Name:     in.Name,
		Category: in.Category,
		Level:    in.Level,
		Icon:     in.Icon,
		Color:    in.Color,
		Order:    in.Order,
	}
	if err := s.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *Store) UpdateSkill(ctx context.Context, id uint, patch SkillPatch) (*Skill, error) {
	return updateByID[Skill](ctx, s.db, id, patch.updates())
}

func (s *Store) DeleteSkill(ctx context.Context, id uint) error {
	return deleteByID[Skill](ctx, s.db, id)
}
