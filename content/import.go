package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrEmptyPost = errors.New("post has no content")

const excerptLength = 160

// ImportedPost is a blog post read from a markdown file with optional
// YAML, TOML or JSON front matter.
type ImportedPost struct {
	Title     string   `yaml:"title" toml:"title" json:"title"`
	Slug      string   `yaml:"slug" toml:"slug" json:"slug"`
	Excerpt   string   `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Tags      []string `yaml:"tags" toml:"tags" json:"tags"`
	Image     string   `yaml:"image" toml:"image" json:"image"`
	Published bool     `yaml:"published" toml:"published" json:"published"`
	Featured  bool     `yaml:"featured" toml:"featured" json:"featured"`
	Content   string   `yaml:"-" toml:"-" json:"-"`
}

// ParseMarkdownPost reads one post. Missing metadata is derived: the title
// from the file name, the slug from the title and the excerpt from the
// first paragraph.
func ParseMarkdownPost(r io.Reader, filename string) (ImportedPost, error) {
	var post ImportedPost

	body, err := frontmatter.Parse(r, &post)
	if err != nil {
		return post, fmt.Errorf("parse front matter of %s: %w", filename, err)
	}

	post.Content = strings.TrimSpace(string(body))
	if post.Content == "" {
		return post, fmt.Errorf("%s: %w", filename, ErrEmptyPost)
	}

	if post.Title == "" {
		post.Title = TitleFromFilename(filename)
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	} else {
		post.Slug = Slugify(post.Slug)
	}
	if post.Excerpt == "" {
		post.Excerpt = firstParagraph(post.Content)
	}

	return post, nil
}

// TitleFromFilename turns "my-first_post.md" into "My First Post".
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

func firstParagraph(markdownStr string) string {
	for _, block := range bytes.Split([]byte(markdownStr), []byte("\n\n")) {
		text := strings.TrimSpace(string(block))
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "```") {
			continue
		}
		text = strings.Join(strings.Fields(text), " ")
		if utf8.RuneCountInString(text) > excerptLength {
			runes := []rune(text)
			text = strings.TrimSpace(string(runes[:excerptLength])) + "..."
		}
		return text
	}
	return ""
}
