package content

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMarkdownPostWithFrontMatter(t *testing.T) {
	src := `---
title: Building Microservices
slug: Microservices With Go
tags: [go, architecture]
published: true
featured: true
---

# Intro

Microservices split a system into small deployable units.
`

	post, err := ParseMarkdownPost(strings.NewReader(src), "ignored.md")
	if err != nil {
		t.Fatalf("ParseMarkdownPost: %v", err)
	}

	if post.Title != "Building Microservices" {
		t.Errorf("Title = %q", post.Title)
	}
	if post.Slug != "microservices-with-go" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if !post.Published || !post.Featured {
		t.Errorf("flags not read: published=%v featured=%v", post.Published, post.Featured)
	}
	if len(post.Tags) != 2 || post.Tags[0] != "go" {
		t.Errorf("Tags = %v", post.Tags)
	}
	if post.Excerpt != "Microservices split a system into small deployable units." {
		t.Errorf("Excerpt = %q", post.Excerpt)
	}
	if !strings.HasPrefix(post.Content, "# Intro") {
		t.Errorf("Content should start with the body, got %q", post.Content)
	}
}

func TestParseMarkdownPostWithoutFrontMatter(t *testing.T) {
	post, err := ParseMarkdownPost(strings.NewReader("Just a body."), "docker_tips-and-tricks.md")
	if err != nil {
		t.Fatalf("ParseMarkdownPost: %v", err)
	}

	if post.Title != "Docker Tips And Tricks" {
		t.Errorf("Title = %q", post.Title)
	}
	if post.Slug != "docker-tips-and-tricks" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if post.Published {
		t.Error("posts without front matter are imported as drafts")
	}
}

func TestParseMarkdownPostEmpty(t *testing.T) {
	_, err := ParseMarkdownPost(strings.NewReader("---\ntitle: Empty\n---\n\n"), "empty.md")
	if !errors.Is(err, ErrEmptyPost) {
		t.Errorf("expected ErrEmptyPost, got %v", err)
	}
}

func TestFirstParagraphTruncates(t *testing.T) {
	long := strings.Repeat("lorem ", 60)
	got := firstParagraph(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated excerpt, got %q", got)
	}
	if len([]rune(got)) > excerptLength+3 {
		t.Errorf("excerpt too long: %d runes", len([]rune(got)))
	}
}
