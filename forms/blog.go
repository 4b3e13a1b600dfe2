package forms

import (
	"net/url"

	"portfolio/database"
)

type BlogPostForm struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	Tags      TagList
	NewTag    string
	Published bool
	Featured  bool
	Image     string
	// ReadTime and Views are shown read-only on the edit screen.
	ReadTime int
	Views    int
}

func NewBlogPostForm(p *database.BlogPost) BlogPostForm {
	if p == nil {
		return BlogPostForm{}
	}
	return BlogPostForm{
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Tags:      TagList(p.TagList()),
		Published: p.Published,
		Featured:  p.Featured,
		Image:     p.Image,
		ReadTime:  p.ReadTime,
		Views:     p.Views,
	}
}

func (f *BlogPostForm) Bind(values url.Values) (Op, error) {
	op := ParseOp(values.Get(FieldOp))

	f.Title = formString(values, "title")
	f.Slug = formString(values, "slug")
	f.Excerpt = formString(values, "excerpt")
	f.Content = values.Get("content")
	f.Image = formString(values, "image")
	f.Published = formBool(values, "published")
	f.Featured = formBool(values, "featured")
	f.Tags, f.NewTag = bindTags(values, "tags", "newTag", op)

	return op, nil
}

func (f BlogPostForm) Input() database.BlogPostInput {
	return database.BlogPostInput{
		Title:     f.Title,
		Slug:      f.Slug,
		Excerpt:   f.Excerpt,
		Content:   f.Content,
		Tags:      f.Tags.Strings(),
		Published: f.Published,
		Featured:  f.Featured,
		Image:     f.Image,
	}
}
