package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"portfolio/constants"
)

type DashboardStats struct {
	Projects         int64
	FeaturedProjects int64
	Skills           int64
	Technologies     int64
	Certifications   int64
	Posts            int64
	PublishedPosts   int64
	TotalViews       int64
	Messages         int64
	UnreadMessages   int64
}

// ActivityItem is one line of the dashboard's recent activity feed.
type ActivityItem struct {
	Kind      string
	Title     string
	Link      string
	CreatedAt time.Time
}

func (s *Store) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	db := s.db.WithContext(ctx)

	counts := []struct {
		model any
		where map[string]any
		dst   *int64
	}{
		{&Project{}, nil, &stats.Projects},
		{&Project{}, map[string]any{"featured": true}, &stats.FeaturedProjects},
		{&Skill{}, nil, &stats.Skills},
		{&Technology{}, nil, &stats.Technologies},
		{&Certification{}, nil, &stats.Certifications},
		{&BlogPost{}, nil, &stats.Posts},
		{&BlogPost{}, map[string]any{"published": true}, &stats.PublishedPosts},
		{&Contact{}, nil, &stats.Messages},
		{&Contact{}, map[string]any{"read": false}, &stats.UnreadMessages},
	}
	for _, c := range counts {
		query := db.Model(c.model)
		if c.where != nil {
			query = query.Where(c.where)
		}
		if err := query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&BlogPost{}).Select("COALESCE(SUM(views), 0)").Scan(&stats.TotalViews).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// RecentActivity merges the latest posts and projects, newest first.
func (s *Store) RecentActivity(ctx context.Context) ([]ActivityItem, error) {
	const perKind = 2

	var posts []BlogPost
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(perKind).Find(&posts).Error; err != nil {
		return nil, err
	}
	var projects []Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(perKind).Find(&projects).Error; err != nil {
		return nil, err
	}

	var items []ActivityItem
	for _, p := range posts {
		items = append(items, ActivityItem{Kind: "post", Title: p.Title, Link: fmt.Sprintf("/admin/blog/%d", p.ID), CreatedAt: p.CreatedAt})
	}
	for _, p := range projects {
		items = append(items, ActivityItem{Kind: "project", Title: p.Title, Link: fmt.Sprintf("/admin/projects/%d", p.ID), CreatedAt: p.CreatedAt})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > constants.RECENT_ACTIVITY_TO_SHOW {
		items = items[:constants.RECENT_ACTIVITY_TO_SHOW]
	}
	return items, nil
}
