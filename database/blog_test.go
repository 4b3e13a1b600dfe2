package database

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestCreateBlogPostDerivesSlugAndReadTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post, err := store.CreateBlogPost(ctx, BlogPostInput{
		Title:   "Building Microservices",
		Excerpt: "e",
		Content: strings.Repeat("word ", 450),
		Tags:    []string{"go"},
	})
	if err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	if post.Slug != "building-microservices" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if post.ReadTime != 3 {
		t.Errorf("ReadTime = %d, want 3", post.ReadTime)
	}
	if post.Views != 0 {
		t.Errorf("Views = %d, want 0", post.Views)
	}
}

func TestCreateBlogPostDuplicateSlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := BlogPostInput{Title: "Same", Slug: "same", Excerpt: "e", Content: "c"}
	if _, err := store.CreateBlogPost(ctx, in); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}
	if _, err := store.CreateBlogPost(ctx, in); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}

	if _, err := store.CreateBlogPost(ctx, BlogPostInput{Title: "!!!", Excerpt: "e", Content: "c"}); !errors.Is(err, ErrEmptySlug) {
		t.Errorf("expected ErrEmptySlug, got %v", err)
	}
}

func TestUpdateBlogPost(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, _ := store.CreateBlogPost(ctx, BlogPostInput{Title: "A", Excerpt: "e", Content: "one"})
	b, _ := store.CreateBlogPost(ctx, BlogPostInput{Title: "B", Excerpt: "e", Content: "two"})

	updated, err := store.UpdateBlogPost(ctx, a.ID, BlogPostPatch{Content: ptr(strings.Repeat("w ", 201))})
	if err != nil {
		t.Fatalf("UpdateBlogPost: %v", err)
	}
	if updated.ReadTime != 2 {
		t.Errorf("ReadTime = %d, want 2", updated.ReadTime)
	}
	if updated.Slug != "a" || updated.Title != "A" {
		t.Errorf("unexpected fields changed: %+v", updated)
	}

	if _, err := store.UpdateBlogPost(ctx, a.ID, BlogPostPatch{Slug: ptr(b.Slug)}); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}

	// keeping its own slug is not a conflict
	if _, err := store.UpdateBlogPost(ctx, a.ID, BlogPostPatch{Slug: ptr("a")}); err != nil {
		t.Errorf("UpdateBlogPost with own slug: %v", err)
	}

	renamed, err := store.UpdateBlogPost(ctx, a.ID, BlogPostPatch{Title: ptr("Brand New"), Slug: ptr("")})
	if err != nil {
		t.Fatalf("UpdateBlogPost: %v", err)
	}
	if renamed.Slug != "brand-new" {
		t.Errorf("Slug = %q, want brand-new", renamed.Slug)
	}
}

func TestViewBlogPostIncrementsViews(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post, _ := store.CreateBlogPost(ctx, BlogPostInput{Title: "My Post", Excerpt: "e", Content: "c", Published: true})

	for i := 0; i < 2; i++ {
		if _, err := store.ViewBlogPost(ctx, "my-post"); err != nil {
			t.Fatalf("ViewBlogPost: %v", err)
		}
	}

	got, _ := store.GetBlogPost(ctx, post.ID)
	if got.Views != 2 {
		t.Errorf("Views = %d, want 2", got.Views)
	}
}

func TestIncrementBlogPostViewsConcurrently(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post, _ := store.CreateBlogPost(ctx, BlogPostInput{Title: "Busy", Excerpt: "e", Content: "c", Published: true})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.IncrementBlogPostViews(ctx, post.ID); err != nil {
				t.Errorf("IncrementBlogPostViews: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := store.GetBlogPost(ctx, post.ID)
	if got.Views != 10 {
		t.Errorf("Views = %d, want 10", got.Views)
	}
}

func TestListBlogPostsVisibility(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.CreateBlogPost(ctx, BlogPostInput{Title: "Draft", Excerpt: "e", Content: "c"})
	for i, title := range []string{"One", "Two", "Three", "Four"} {
		store.CreateBlogPost(ctx, BlogPostInput{Title: title, Excerpt: "e", Content: "c", Published: true, Featured: i > 0})
	}

	published, _ := store.ListBlogPosts(ctx, false)
	if len(published) != 4 {
		t.Errorf("expected 4 published posts, got %d", len(published))
	}
	all, _ := store.ListBlogPosts(ctx, true)
	if len(all) != 5 {
		t.Errorf("expected 5 posts with drafts, got %d", len(all))
	}
	if !published[0].Featured {
		t.Error("featured posts should come first")
	}

	featured, _ := store.ListFeaturedBlogPosts(ctx)
	if len(featured) != 3 {
		t.Errorf("expected 3 featured posts, got %d", len(featured))
	}
}

func TestListRelatedBlogPosts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post, _ := store.CreateBlogPost(ctx, BlogPostInput{Title: "Base", Excerpt: "e", Content: "c", Published: true, Tags: []string{"go", "docker"}})
	store.CreateBlogPost(ctx, BlogPostInput{Title: "One Shared", Excerpt: "e", Content: "c", Published: true, Tags: []string{"go"}})
	store.CreateBlogPost(ctx, BlogPostInput{Title: "Two Shared", Excerpt: "e", Content: "c", Published: true, Tags: []string{"docker", "go"}})
	store.CreateBlogPost(ctx, BlogPostInput{Title: "Unrelated", Excerpt: "e", Content: "c", Published: true, Tags: []string{"css"}})
	store.CreateBlogPost(ctx, BlogPostInput{Title: "Hidden Draft", Excerpt: "e", Content: "c", Tags: []string{"go"}})

	related, err := store.ListRelatedBlogPosts(ctx, post, 3)
	if err != nil {
		t.Fatalf("ListRelatedBlogPosts: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related posts, got %d", len(related))
	}
	if related[0].Title != "Two Shared" {
		t.Errorf("most similar post should come first, got %q", related[0].Title)
	}
}
