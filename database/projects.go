package database

import (
	"context"

	"portfolio/constants"
)

func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := s.db.WithContext(ctx).
		Order("featured DESC").
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *Store) ListFeaturedProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC").
		Order("created_at DESC").
		Limit(constants.FEATURED_PROJECTS_TO_SHOW).
		Find(&projects).Error
	return projects, err
}

func (s *Store) GetProject(ctx context.Context, id uint) (*Project, error) {
	return getByID[Project](ctx, s.db, id)
}

func (s *Store) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	project := Project{
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Image:           in.Image,
		GithubURL:       in.GithubURL,
		LiveURL:         in.LiveURL,
		Technologies:    encodeList(in.Technologies),
		Featured:        in.Featured,
		Order:           in.Order,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Store) UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (*Project, error) {
	return updateByID[Project](ctx, s.db, id, patch.updates())
}

func (s *Store) DeleteProject(ctx context.Context, id uint) error {
	return deleteByID[Project](ctx, s.db, id)
}
