package database

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"portfolio/content"
)

type Project struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	LongDescription string         `gorm:"type:text" json:"longDescription"`
	Image           string         `json:"image"`
	GithubURL       string         `json:"githubUrl"`
	LiveURL         string         `json:"liveUrl"`
	Technologies    datatypes.JSON `json:"technologies"`
	Featured        bool           `gorm:"index" json:"featured"`
	Order           int            `gorm:"column:sort_order" json:"order"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (p Project) TechnologyList() []string {
	return decodeList(p.Technologies)
}

type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"index;not null" json:"category"`
	Level     int       `json:"level"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Order     int       `gorm:"column:sort_order" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Skill) GetCategory() string {
	return s.Category
}

type Technology struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Website     string    `json:"website"`
	Featured    bool      `gorm:"index" json:"featured"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t Technology) GetCategory() string {
	return t.Category
}

type Certification struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Issuer        string     `gorm:"not null" json:"issuer"`
	Description   string     `gorm:"type:text" json:"description"`
	CredentialID  string     `json:"credentialId"`
	CredentialURL string     `json:"credentialUrl"`
	IssueDate     time.Time  `gorm:"not null" json:"issueDate"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	Image         string     `json:"image"`
	Featured      bool       `gorm:"index" json:"featured"`
	Order         int        `gorm:"column:sort_order" json:"order"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (c Certification) StatusAt(now time.Time) content.CertificationStatus {
	return content.CertificationStatusAt(c.ExpiryDate, now)
}

type BlogPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt   string         `gorm:"type:text;not null" json:"excerpt"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Tags      datatypes.JSON `json:"tags"`
	Published bool           `gorm:"index" json:"published"`
	Featured  bool           `json:"featured"`
	Image     string         `json:"image"`
	ReadTime  int            `json:"readTime"`
	Views     int            `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (p BlogPost) TagList() []string {
	return decodeList(p.Tags)
}

func (p BlogPost) FilterFields() (string, string, []string) {
	return p.Title, p.Excerpt, p.TagList()
}

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"index" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings is a single row holding site wide configuration.
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SiteName        string    `json:"siteName"`
	SiteDescription string    `gorm:"type:text" json:"siteDescription"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	GithubURL       string    `json:"githubUrl"`
	LinkedinURL     string    `json:"linkedinUrl"`
	TwitterURL      string    `json:"twitterUrl"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `gorm:"type:text" json:"metaDescription"`
	MetaKeywords    string    `json:"metaKeywords"`
	EnableAnalytics bool      `json:"enableAnalytics"`
	MaintenanceMode bool      `json:"maintenanceMode"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AdminUser struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	Name             string
	PasswordHash     []byte `gorm:"not null"`
	SessionToken     string `gorm:"index"`
	SessionExpiresAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func encodeList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

func decodeList(raw datatypes.JSON) []string {
	var values []string
	if len(raw) == 0 {
		return values
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
