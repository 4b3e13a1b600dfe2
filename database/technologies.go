package database

import "context"

func (s *Store) ListTechnologies(ctx context.Context) ([]Technology, error) {
	var technologies []Technology
	err := s.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&technologies).Error
	return technologies, err
}

func (s *Store) ListFeaturedTechnologies(ctx context.Context) ([]Technology, error) {
	var technologies []Technology
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&technologies).Error
	return technologies, err
}

func (s *Store) GetTechnology(ctx context.Context, id uint) (*Technology, error) {
	return getByID[Technology](ctx, s.db, id)
}

func (s *Store) CreateTechnology(ctx context.Context, in TechnologyInput) (*Technology, error) {
	technology := Technology{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		Website:     in.Website,
		Featured:    in.Featured,
		Order:       in.Order,
	}
	if err := s.db.WithContext(ctx).Create(&technology).Error; err != nil {
		return nil, err
	}
	return &technology, nil
}

func (s *Store) UpdateTechnology(ctx context.Context, id uint, patch TechnologyPatch) (*Technology, error) {
	return updateByID[Technology](ctx, s.db, id, patch.updates())
}

func (s *Store) DeleteTechnology(ctx context.Context, id uint) error {
	return deleteByID[Technology](ctx, s.db, id)
}
