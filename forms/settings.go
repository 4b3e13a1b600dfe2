package forms

import (
	"net/url"

	"portfolio/database"
)

type SettingsForm struct {
	SiteName        string
	SiteDescription string
	Email           string
	Phone           string
	Location        string
	GithubURL       string
	LinkedinURL     string
	TwitterURL      string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	EnableAnalytics bool
	MaintenanceMode bool
}

func NewSettingsForm(s *database.Settings) SettingsForm {
	if s == nil {
		defaults := database.DefaultSettings()
		s = &defaults
	}
	return SettingsForm{
		SiteName:        s.SiteName,
		SiteDescription: s.SiteDescription,
		Email:           s.Email,
		Phone:           s.Phone,
		Location:        s.Location,
		GithubURL:       s.GithubURL,
		LinkedinURL:     s.LinkedinURL,
		TwitterURL:      s.TwitterURL,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
		EnableAnalytics: s.EnableAnalytics,
		MaintenanceMode: s.MaintenanceMode,
	}
}

func (f *SettingsForm) Bind(values url.Values) (Op, error) {
	f.SiteName = formString(values, "siteName")
	f.SiteDescription = formString(values, "siteDescription")
	f.Email = formString(values, "email")
	f.Phone = formString(values, "phone")
	f.Location = formString(values, "location")
	f.GithubURL = formString(values, "githubUrl")
	f.LinkedinURL = formString(values, "linkedinUrl")
	f.TwitterURL = formString(values, "twitterUrl")
	f.MetaTitle = formString(values, "metaTitle")
	f.MetaDescription = formString(values, "metaDescription")
	f.MetaKeywords = formString(values, "metaKeywords")
	f.EnableAnalytics = formBool(values, "enableAnalytics")
	f.MaintenanceMode = formBool(values, "maintenanceMode")
	return ParseOp(values.Get(FieldOp)), nil
}

// Patch sets every field, since the settings screen always posts all of them.
func (f SettingsForm) Patch() database.SettingsPatch {
	return database.SettingsPatch{
		SiteName:        &f.SiteName,
		SiteDescription: &f.SiteDescription,
		Email:           &f.Email,
		Phone:           &f.Phone,
		Location:        &f.Location,
		GithubURL:       &f.GithubURL,
		LinkedinURL:     &f.LinkedinURL,
		TwitterURL:      &f.TwitterURL,
		MetaTitle:       &f.MetaTitle,
		MetaDescription: &f.MetaDescription,
		MetaKeywords:    &f.MetaKeywords,
		EnableAnalytics: &f.EnableAnalytics,
		MaintenanceMode: &f.MaintenanceMode,
	}
}
