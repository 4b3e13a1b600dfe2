package forms

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"portfolio/database"
)

func TestTagList(t *testing.T) {
	var tags TagList

	if !tags.Add("go") || !tags.Add(" docker ") {
		t.Fatal("expected new tags to be added")
	}
	if tags.Add("go") {
		t.Error("duplicate tag should not be added")
	}
	if tags.Add("   ") {
		t.Error("blank tag should not be added")
	}
	if strings.Join(tags, ",") != "go,docker" {
		t.Errorf("tags = %v", tags)
	}

	if !tags.Remove("go") {
		t.Error("expected go to be removed")
	}
	if tags.Remove("missing") {
		t.Error("removing an absent tag should report false")
	}
	if strings.Join(tags, ",") != "docker" {
		t.Errorf("tags = %v", tags)
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		button string
		want   Op
	}{
		{"", Op{Kind: OpSave}},
		{"save", Op{Kind: OpSave}},
		{"add-tag", Op{Kind: OpAddTag}},
		{"remove-tag:go", Op{Kind: OpRemoveTag, Value: "go"}},
		{"remove-tag:a:b", Op{Kind: OpRemoveTag, Value: "a:b"}},
	}
	for _, tt := range tests {
		if got := ParseOp(tt.button); got != tt.want {
			t.Errorf("ParseOp(%q) = %+v, want %+v", tt.button, got, tt.want)
		}
	}
}

func TestBlogPostFormTagOps(t *testing.T) {
	var form BlogPostForm

	op, err := form.Bind(url.Values{
		"title":  {"Hello"},
		"tags":   {"go", "devops"},
		"newTag": {"docker"},
		"op":     {"add-tag"},
	})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if op.Saves() {
		t.Error("adding a tag must not save")
	}
	if strings.Join(form.Tags, ",") != "go,devops,docker" || form.NewTag != "" {
		t.Errorf("after add: tags=%v newTag=%q", form.Tags, form.NewTag)
	}

	op, _ = form.Bind(url.Values{
		"title":  {"Hello"},
		"tags":   {"go", "devops", "docker"},
		"newTag": {"half typed"},
		"op":     {"remove-tag:devops"},
	})
	if op.Saves() {
		t.Error("removing a tag must not save")
	}
	if strings.Join(form.Tags, ",") != "go,docker" {
		t.Errorf("after remove: tags=%v", form.Tags)
	}
	if form.NewTag != "half typed" {
		t.Errorf("pending tag input should survive a remove, got %q", form.NewTag)
	}

	op, _ = form.Bind(url.Values{
		"title":     {"Hello"},
		"excerpt":   {"Short"},
		"content":   {"# Body"},
		"tags":      {"go"},
		"published": {"on"},
		"op":        {"save"},
	})
	if !op.Saves() {
		t.Error("expected save")
	}

	in := form.Input()
	if in.Title != "Hello" || in.Content != "# Body" || !in.Published || in.Featured {
		t.Errorf("unexpected input: %+v", in)
	}
	if len(in.Tags) != 1 || in.Tags[0] != "go" {
		t.Errorf("Tags = %v", in.Tags)
	}
}

func TestProjectFormFromRecord(t *testing.T) {
	p := &database.Project{Title: "Site", Description: "d", Featured: true, Order: 3}
	p.Technologies = []byte(`["Go","chi"]`)

	form := NewProjectForm(p)
	if form.Title != "Site" || !form.Featured || form.Order != 3 {
		t.Errorf("unexpected form: %+v", form)
	}
	if strings.Join(form.Technologies, ",") != "Go,chi" {
		t.Errorf("Technologies = %v", form.Technologies)
	}

	empty := NewProjectForm(nil)
	if empty.Title != "" || len(empty.Technologies) != 0 {
		t.Errorf("defaults should be empty: %+v", empty)
	}
}

func TestProjectFormBadOrder(t *testing.T) {
	var form ProjectForm
	if _, err := form.Bind(url.Values{"title": {"x"}, "order": {"first"}}); err == nil {
		t.Error("expected an error for a non numeric order")
	}
}

func TestSkillFormDefaults(t *testing.T) {
	form := NewSkillForm(nil)
	if form.Level != 50 || form.Category != "Frontend" {
		t.Errorf("unexpected defaults: %+v", form)
	}

	if _, err := form.Bind(url.Values{"name": {"Go"}, "category": {"Backend"}, "level": {"95"}}); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	in := form.Input()
	if in.Name != "Go" || in.Level != 95 {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestCertificationFormDates(t *testing.T) {
	expiry := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	form := NewCertificationForm(&database.Certification{
		Name:       "CKA",
		IssueDate:  time.Date(2023, 8, 20, 0, 0, 0, 0, time.UTC),
		ExpiryDate: &expiry,
	})
	if form.IssueDate != "2023-08-20" || form.ExpiryDate != "2026-08-20" {
		t.Errorf("dates = %q, %q", form.IssueDate, form.ExpiryDate)
	}

	form.ExpiryDate = ""
	in, err := form.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.IssueDate == nil || in.IssueDate.Year() != 2023 {
		t.Errorf("IssueDate = %v", in.IssueDate)
	}
	if in.ExpiryDate != nil {
		t.Errorf("empty expiry should mean no expiry, got %v", in.ExpiryDate)
	}

	// editing with no expiry date clears it
	if patch := in.Patch(); patch.ExpiryDate == nil || !patch.ExpiryDate.IsZero() {
		t.Errorf("expected a zero expiry date in the patch, got %v", patch.ExpiryDate)
	}

	form.IssueDate = "someday"
	if _, err := form.Input(); err == nil {
		t.Error("expected an error for an invalid issue date")
	}
}

func TestSettingsFormPatch(t *testing.T) {
	var form SettingsForm
	form.Bind(url.Values{"siteName": {"Mine"}, "maintenanceMode": {"on"}})

	patch := form.Patch()
	if *patch.SiteName != "Mine" || !*patch.MaintenanceMode || *patch.EnableAnalytics {
		t.Errorf("unexpected patch values")
	}
	if patch.Email == nil || *patch.Email != "" {
		t.Error("every settings field should be present in the patch")
	}
}
