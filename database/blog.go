package database

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"portfolio/constants"
	"portfolio/content"
)

func (s *Store) ListBlogPosts(ctx context.Context, includeDrafts bool) ([]BlogPost, error) {
	var posts []BlogPost
	query := s.db.WithContext(ctx)
	if !includeDrafts {
		query = query.Where("published = ?", true)
	}
	err := query.
		Order("featured DESC").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *Store) ListFeaturedBlogPosts(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	err := s.db.WithContext(ctx).
		Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Limit(constants.FEATURED_POSTS_TO_SHOW).
		Find(&posts).Error
	return posts, err
}

// ListRelatedBlogPosts returns published posts sharing the most tags with
// post, newest first among equals. Posts without a shared tag are left out.
func (s *Store) ListRelatedBlogPosts(ctx context.Context, post *BlogPost, limit int) ([]BlogPost, error) {
	published, err := s.ListBlogPosts(ctx, false)
	if err != nil {
		return nil, err
	}

	tags := post.TagList()
	type scored struct {
		post   BlogPost
		shared int
	}
	var candidates []scored
	for _, p := range published {
		if p.ID == post.ID {
			continue
		}
		if n := content.SharedTags(tags, p.TagList()); n > 0 {
			candidates = append(candidates, scored{post: p, shared: n})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].shared != candidates[j].shared {
			return candidates[i].shared > candidates[j].shared
		}
		return candidates[i].post.CreatedAt.After(candidates[j].post.CreatedAt)
	})

	related := make([]BlogPost, 0, limit)
	for _, c := range candidates {
		if len(related) == limit {
			break
		}
		related = append(related, c.post)
	}
	return related, nil
}

func (s *Store) GetBlogPost(ctx context.Context, id uint) (*BlogPost, error) {
	return getByID[BlogPost](ctx, s.db, id)
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	var post BlogPost
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementBlogPostViews adds one view in a single UPDATE so concurrent
// readers never lose a count.
func (s *Store) IncrementBlogPostViews(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ViewBlogPost loads a post by slug and records one view.
func (s *Store) ViewBlogPost(ctx context.Context, slug string) (*BlogPost, error) {
	post, err := s.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.IncrementBlogPostViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++
	return post, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	slug, err := s.resolveSlug(ctx, in.Slug, in.Title, 0)
	if err != nil {
		return nil, err
	}

	post := BlogPost{
		Title:     in.Title,
		Slug:      slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Tags:      encodeList(in.Tags),
		Published: in.Published,
		Featured:  in.Featured,
		Image:     in.Image,
		ReadTime:  content.ReadingTime(in.Content),
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, translateSlugError(err)
	}
	return &post, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id uint, patch BlogPostPatch) (*BlogPost, error) {
	existing, err := s.GetBlogPost(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := patch.updates()
	if patch.Slug != nil {
		title := existing.Title
		if patch.Title != nil {
			title = *patch.Title
		}
		slug, err := s.resolveSlug(ctx, *patch.Slug, title, id)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}

	post, err := updateByID[BlogPost](ctx, s.db, id, updates)
	if err != nil {
		return nil, translateSlugError(err)
	}
	return post, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id uint) error {
	return deleteByID[BlogPost](ctx, s.db, id)
}

// resolveSlug normalises the requested slug, falling back to the title, and
// makes sure no other post uses it.
func (s *Store) resolveSlug(ctx context.Context, requested, title string, selfID uint) (string, error) {
	slug := content.Slugify(requested)
	if slug == "" {
		slug = content.Slugify(title)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&BlogPost{}).
		Where("slug = ? AND id <> ?", slug, selfID).
		Count(&count).Error
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrDuplicateSlug
	}
	return slug, nil
}

func translateSlugError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	return err
}
