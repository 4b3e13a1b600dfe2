package database

import (
	"time"

	"portfolio/content"
)

// Inputs are the create payloads accepted at the boundary. Patches carry
// pointer fields so that only the provided fields are written on update.

type ProjectInput struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl"`
	Technologies    []string `json:"technologies"`
	Featured        bool     `json:"featured"`
	Order           int      `json:"order"`
}

func (in ProjectInput) Patch() ProjectPatch {
	return ProjectPatch{
		Title:           &in.Title,
		Description:     &in.Description,
		LongDescription: &in.LongDescription,
		Image:           &in.Image,
		GithubURL:       &in.GithubURL,
		LiveURL:         &in.LiveURL,
		Technologies:    &in.Technologies,
		Featured:        &in.Featured,
		Order:           &in.Order,
	}
}

type ProjectPatch struct {
	Title           *string   `json:"title" validate:"omitempty,min=1"`
	Description     *string   `json:"description" validate:"omitempty,min=1"`
	LongDescription *string   `json:"longDescription"`
	Image           *string   `json:"image"`
	GithubURL       *string   `json:"githubUrl"`
	LiveURL         *string   `json:"liveUrl"`
	Technologies    *[]string `json:"technologies"`
	Featured        *bool     `json:"featured"`
	Order           *int      `json:"order"`
}

func (p ProjectPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "title", p.Title)
	setIf(u, "description", p.Description)
	setIf(u, "long_description", p.LongDescription)
	setIf(u, "image", p.Image)
	setIf(u, "github_url", p.GithubURL)
	setIf(u, "live_url", p.LiveURL)
	if p.Technologies != nil {
		u["technologies"] = encodeList(*p.Technologies)
	}
	setIf(u, "featured", p.Featured)
	setIf(u, "sort_order", p.Order)
	return u
}

type SkillInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Level    int    `json:"level" validate:"min=0,max=100"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Order    int    `json:"order"`
}

func (in SkillInput) Patch() SkillPatch {
	return SkillPatch{
		Name:     &in.Name,
		Category: &in.Category,
		Level:    &in.Level,
		Icon:     &in.Icon,
		Color:    &in.Color,
		Order:    &in.Order,
	}
}

type SkillPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
	Level    *int    `json:"level" validate:"omitempty,min=0,max=100"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color"`
	Order    *int    `json:"order"`
}

func (p SkillPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "name", p.Name)
	setIf(u, "category", p.Category)
	setIf(u, "level", p.Level)
	setIf(u, "icon", p.Icon)
	setIf(u, "color", p.Color)
	setIf(u, "sort_order", p.Order)
	return u
}

type TechnologyInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Website     string `json:"website"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

func (in TechnologyInput) Patch() TechnologyPatch {
	return TechnologyPatch{
		Name:        &in.Name,
		Category:    &in.Category,
		Description: &in.Description,
		Icon:        &in.Icon,
		Color:       &in.Color,
		Website:     &in.Website,
		Featured:    &in.Featured,
		Order:       &in.Order,
	}
}

type TechnologyPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Website     *string `json:"website"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`
}

func (p TechnologyPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "name", p.Name)
	setIf(u, "category", p.Category)
	setIf(u, "description", p.Description)
	setIf(u, "icon", p.Icon)
	setIf(u, "color", p.Color)
	setIf(u, "website", p.Website)
	setIf(u, "featured", p.Featured)
	setIf(u, "sort_order", p.Order)
	return u
}

type CertificationInput struct {
	Name          string        `json:"name" validate:"required"`
	Issuer        string        `json:"issuer" validate:"required"`
	Description   string        `json:"description"`
	CredentialID  string        `json:"credentialId"`
	CredentialURL string        `json:"credentialUrl"`
	IssueDate     *content.Date `json:"issueDate" validate:"required"`
	ExpiryDate    *content.Date `json:"expiryDate"`
	Image         string        `json:"image"`
	Featured      bool          `json:"featured"`
	Order         int           `json:"order"`
}

func (in CertificationInput) Patch() CertificationPatch {
	expiry := in.ExpiryDate
	if expiry == nil {
		expiry = &content.Date{}
	}
	return CertificationPatch{
		Name:          &in.Name,
		Issuer:        &in.Issuer,
		Description:   &in.Description,
		CredentialID:  &in.CredentialID,
		CredentialURL: &in.CredentialURL,
		IssueDate:     in.IssueDate,
		ExpiryDate:    expiry,
		Image:         &in.Image,
		Featured:      &in.Featured,
		Order:         &in.Order,
	}
}

// CertificationPatch clears the expiry date when ExpiryDate is present but
// zero, which is what an empty string decodes to.
type CertificationPatch struct {
	Name          *string       `json:"name" validate:"omitempty,min=1"`
	Issuer        *string       `json:"issuer" validate:"omitempty,min=1"`
	Description   *string       `json:"description"`
	CredentialID  *string       `json:"credentialId"`
	CredentialURL *string       `json:"credentialUrl"`
	IssueDate     *content.Date `json:"issueDate"`
	ExpiryDate    *content.Date `json:"expiryDate"`
	Image         *string       `json:"image"`
	Featured      *bool         `json:"featured"`
	Order         *int          `json:"order"`
}

func (p CertificationPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "name", p.Name)
	setIf(u, "issuer", p.Issuer)
	setIf(u, "description", p.Description)
	setIf(u, "credential_id", p.CredentialID)
	setIf(u, "credential_url", p.CredentialURL)
	if p.IssueDate != nil && !p.IssueDate.IsZero() {
		u["issue_date"] = p.IssueDate.Time
	}
	if p.ExpiryDate != nil {
		if p.ExpiryDate.IsZero() {
			u["expiry_date"] = nil
		} else {
			u["expiry_date"] = p.ExpiryDate.Time
		}
	}
	setIf(u, "image", p.Image)
	setIf(u, "featured", p.Featured)
	setIf(u, "sort_order", p.Order)
	return u
}

type BlogPostInput struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Image     string   `json:"image"`
}

func (in BlogPostInput) Patch() BlogPostPatch {
	return BlogPostPatch{
		Title:     &in.Title,
		Slug:      &in.Slug,
		Excerpt:   &in.Excerpt,
		Content:   &in.Content,
		Tags:      &in.Tags,
		Published: &in.Published,
		Featured:  &in.Featured,
		Image:     &in.Image,
	}
}

type BlogPostPatch struct {
	Title     *string   `json:"title" validate:"omitempty,min=1"`
	Slug      *string   `json:"slug"`
	Excerpt   *string   `json:"excerpt" validate:"omitempty,min=1"`
	Content   *string   `json:"content" validate:"omitempty,min=1"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
	Image     *string   `json:"image"`
}

func (p BlogPostPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "title", p.Title)
	setIf(u, "excerpt", p.Excerpt)
	if p.Content != nil {
		u["content"] = *p.Content
		u["read_time"] = content.ReadingTime(*p.Content)
	}
	if p.Tags != nil {
		u["tags"] = encodeList(*p.Tags)
	}
	setIf(u, "published", p.Published)
	setIf(u, "featured", p.Featured)
	setIf(u, "image", p.Image)
	return u
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type SettingsPatch struct {
	SiteName        *string `json:"siteName"`
	SiteDescription *string `json:"siteDescription"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	GithubURL       *string `json:"githubUrl"`
	LinkedinURL     *string `json:"linkedinUrl"`
	TwitterURL      *string `json:"twitterUrl"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	MetaKeywords    *string `json:"metaKeywords"`
	EnableAnalytics *bool   `json:"enableAnalytics"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
}

func (p SettingsPatch) updates() map[string]any {
	u := map[string]any{}
	setIf(u, "site_name", p.SiteName)
	setIf(u, "site_description", p.SiteDescription)
	setIf(u, "email", p.Email)
	setIf(u, "phone", p.Phone)
	setIf(u, "location", p.Location)
	setIf(u, "github_url", p.GithubURL)
	setIf(u, "linkedin_url", p.LinkedinURL)
	setIf(u, "twitter_url", p.TwitterURL)
	setIf(u, "meta_title", p.MetaTitle)
	setIf(u, "meta_description", p.MetaDescription)
	setIf(u, "meta_keywords", p.MetaKeywords)
	setIf(u, "enable_analytics", p.EnableAnalytics)
	setIf(u, "maintenance_mode", p.MaintenanceMode)
	return u
}

func setIf[T any](updates map[string]any, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}

func dateOrNil(d *content.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
