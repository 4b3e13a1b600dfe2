package forms

import (
	"fmt"
	"net/url"

	"portfolio/content"
	"portfolio/database"
)

// CertificationForm keeps dates as the yyyy-mm-dd strings of the date inputs.
type CertificationForm struct {
	Name          string
	Issuer        string
	Description   string
	CredentialID  string
	CredentialURL string
	IssueDate     string
	ExpiryDate    string
	Image         string
	Featured      bool
	Order         int
}

func NewCertificationForm(c *database.Certification) CertificationForm {
	if c == nil {
		return CertificationForm{}
	}
	return CertificationForm{
		Name:          c.Name,
		Issuer:        c.Issuer,
		Description:   c.Description,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		IssueDate:     content.FormatInputDate(&c.IssueDate),
		ExpiryDate:    content.FormatInputDate(c.ExpiryDate),
		Image:         c.Image,
		Featured:      c.Featured,
		Order:         c.Order,
	}
}

func (f *CertificationForm) Bind(values url.Values) (Op, error) {
	f.Name = formString(values, "name")
	f.Issuer = formString(values, "issuer")
	f.Description = formString(values, "description")
	f.CredentialID = formString(values, "credentialId")
	f.CredentialURL = formString(values, "credentialUrl")
	f.IssueDate = formString(values, "issueDate")
	f.ExpiryDate = formString(values, "expiryDate")
	f.Image = formString(values, "image")
	f.Featured = formBool(values, "featured")

	order, err := formInt(values, "order")
	f.Order = order
	return ParseOp(values.Get(FieldOp)), err
}

// Input parses the dates. An empty issue date is left nil for validation to
// reject; an empty expiry date means the certification does not expire.
func (f CertificationForm) Input() (database.CertificationInput, error) {
	in := database.CertificationInput{
		Name:          f.Name,
		Issuer:        f.Issuer,
		Description:   f.Description,
		CredentialID:  f.CredentialID,
		CredentialURL: f.CredentialURL,
		Image:         f.Image,
		Featured:      f.Featured,
		Order:         f.Order,
	}

	if f.IssueDate != "" {
		t, err := content.ParseDate(f.IssueDate)
		if err != nil {
			return in, fmt.Errorf("issue date: %w", err)
		}
		in.IssueDate = content.NewDate(t)
	}
	if f.ExpiryDate != "" {
		t, err := content.ParseDate(f.ExpiryDate)
		if err != nil {
			return in, fmt.Errorf("expiry date: %w", err)
		}
		in.ExpiryDate = content.NewDate(t)
	}
	return in, nil
}
