package content

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t ", 0},
		{"one word", "hello", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words", strings.Repeat("word ", 201), 2},
		{"400 words with newlines", strings.Repeat("word\n", 400), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.content); got != tt.want {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Building   Microservices  ", "building-microservices"},
		{"snake_case_title", "snake-case-title"},
		{"Docker & Kubernetes", "docker-and-kubernetes"},
		{"--already-a-slug--", "already-a-slug"},
		{"Next.js 14!", "next-js-14"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got != "" && !slugPattern.MatchString(got) {
				t.Errorf("Slugify(%q) = %q does not match slug pattern", tt.in, got)
			}
			if again := Slugify(got); again != got {
				t.Errorf("Slugify is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCertificationStatusAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name   string
		expiry *time.Time
		want   CertificationStatus
	}{
		{"no expiry", nil, StatusActive},
		{"zero expiry", at(time.Time{}), StatusActive},
		{"expired yesterday", at(now.AddDate(0, 0, -1)), StatusExpired},
		{"expires now", at(now), StatusExpired},
		{"expires next month", at(now.AddDate(0, 1, 0)), StatusExpiringSoon},
		{"expires in exactly three months", at(now.AddDate(0, 3, 0)), StatusExpiringSoon},
		{"expires next year", at(now.AddDate(1, 0, 0)), StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CertificationStatusAt(tt.expiry, now); got != tt.want {
				t.Errorf("CertificationStatusAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

type skill struct {
	name, category string
}

func (s skill) GetCategory() string { return s.category }

func TestGroupSkills(t *testing.T) {
	skills := []skill{
		{"Go", "Backend"},
		{"React", "Frontend"},
		{"Postgres", "Database"},
		{"Node", "Backend"},
	}

	groups := GroupSkills(skills)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantKeys := []string{"Backend", "Frontend", "Database"}
	for i, key := range wantKeys {
		if groups[i].Key != key {
			t.Errorf("group %d key = %q, want %q", i, groups[i].Key, key)
		}
	}

	backend := groups[0].Items
	if len(backend) != 2 || backend[0].name != "Go" || backend[1].name != "Node" {
		t.Errorf("backend group lost input order: %+v", backend)
	}
}

type post struct {
	title, excerpt string
	tags           []string
}

func (p post) FilterFields() (string, string, []string) { return p.title, p.excerpt, p.tags }

func TestFilterPosts(t *testing.T) {
	posts := []post{
		{"Building Microservices", "Go services at scale", []string{"go", "architecture"}},
		{"Docker Tips", "Smaller images", []string{"docker", "devops"}},
		{"Kubernetes Intro", "Pods and services", []string{"kubernetes", "devops"}},
	}

	tests := []struct {
		name      string
		term, tag string
		want      []string
	}{
		{"no filters", "", "", []string{"Building Microservices", "Docker Tips", "Kubernetes Intro"}},
		{"title is case insensitive", "docker", "", []string{"Docker Tips"}},
		{"matches excerpt", "SERVICES", "", []string{"Building Microservices", "Kubernetes Intro"}},
		{"matches tag text", "archi", "", []string{"Building Microservices"}},
		{"exact tag", "", "devops", []string{"Docker Tips", "Kubernetes Intro"}},
		{"tag is not a substring match", "", "dev", nil},
		{"term and tag combined", "pods", "devops", []string{"Kubernetes Intro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPosts(posts, tt.term, tt.tag)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d posts, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].title != tt.want[i] {
					t.Errorf("post %d = %q, want %q", i, got[i].title, tt.want[i])
				}
			}
		})
	}
}

func TestDistinctTags(t *testing.T) {
	got := DistinctTags([]string{"go", "devops"}, []string{"devops", "", "docker"})
	want := []string{"devops", "docker", "go"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("DistinctTags() = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-03-15", "2024-03-15T10:30:00Z", "2024-03-15 10:30:00", " 2024-03-15T10:30 "} {
		d, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", in, err)
			continue
		}
		if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
			t.Errorf("ParseDate(%q) = %v", in, d)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("expected an error for an invalid date")
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"2023-01-15"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got := FormatInputDate(&d.Time); got != "2023-01-15" {
		t.Errorf("FormatInputDate() = %q", got)
	}

	if err := d.UnmarshalJSON([]byte(`12`)); err == nil {
		t.Error("expected an error for a non-string date")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("# Title\n\nSome *text* and a [link](https://example.com)."))

	for _, want := range []string{`<h1 id="title">Title</h1>`, "<em>text</em>", `target="_blank"`} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, out)
		}
	}
}
