package store

import (
	"context"
	errs "errors"

	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (s *Store) ListUsers(ctx context.Context) ([]types.User, error) {
	ret := []types.User{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	return ret, nil
}

func (s *Store) FindUser(ctx context.Context, id string) (types.User, error) {
	var user types.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return types.User{}, errors.Wrapf(notFound(err), "finding user %q", id)
	}
	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	user.ID = ""
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errs.Is(err, gorm.ErrDuplicatedKey) {
			return types.User{}, errors.Wrapf(ErrDuplicate, "user %q", user.Username)
		}
		return types.User{}, errors.Wrap(err, "saving user to db")
	}
	return user, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) (types.User, error) {
	var user types.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return types.User{}, errors.Wrapf(err, "deleting user %q", id)
	}
	return user, nil
}
