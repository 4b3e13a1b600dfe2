package database

import (
	"context"
	"strings"
)

func (s *Store) CreateContact(ctx context.Context, in ContactInput) (*Contact, error) {
	contact := Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (s *Store) GetContact(ctx context.Context, id uint) (*Contact, error) {
	return getByID[Contact](ctx, s.db, id)
}

func (s *Store) MarkContactRead(ctx context.Context, id uint, read bool) (*Contact, error) {
	contact, err := s.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(contact).Update("read", read).Error; err != nil {
		return nil, err
	}
	contact.Read = read
	return contact, nil
}

func (s *Store) CountUnreadContacts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Contact{}).Where("read = ?", false).Count(&count).Error
	return count, err
}
