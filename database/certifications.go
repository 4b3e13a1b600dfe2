package database

import "context"

func (s *Store) ListCertifications(ctx context.Context) ([]Certification, error) {
	var certifications []Certification
	err := s.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("issue_date DESC").
		Find(&certifications).Error
	return certifications, err
}

func (s *Store) ListFeaturedCertifications(ctx context.Context) ([]Certification, error) {
	var certifications []Certification
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC").
		Order("issue_date DESC").
		Find(&certifications).Error
	return certifications, err
}

func (s *Store) GetCertification(ctx context.Context, id uint) (*Certification, error) {
	return getByID[Certification](ctx, s.db, id)
}

func (s *Store) CreateCertification(ctx context.Context, in CertificationInput) (*Certification, error) {
	certification := Certification{
		Name:          in.Name,
		Issuer:        in.Issuer,
		Description:   in.Description,
		CredentialID:  in.CredentialID,
		CredentialURL: in.CredentialURL,
		ExpiryDate:    dateOrNil(in.ExpiryDate),
		Image:         in.Image,
		Featured:      in.Featured,
		Order:         in.Order,
	}
	if in.IssueDate != nil {
		certification.IssueDate = in.IssueDate.Time
	}
	if err := s.db.WithContext(ctx).Create(&certification).Error; err != nil {
		return nil, err
	}
	return &certification, nil
}

func (s *Store) UpdateCertification(ctx context.Context, id uint, patch CertificationPatch) (*Certification, error) {
	return updateByID[Certification](ctx, s.db, id, patch.updates())
}

func (s *Store) DeleteCertification(ctx context.Context, id uint) error {
	return deleteByID[Certification](ctx, s.db, id)
}
