package service

import (
	"context"
	"fmt"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"go.uber.org/zap"
)

type userService struct {
	dm  contract.DataManager
	log *zap.Logger
}

func newUser(dm contract.DataManager, log *zap.Logger) *userService {
	return &userService{dm: dm, log: log}
}

func (s *userService) CreateUser(name, docket string) (*entity.User, error) {
	user := &entity.User{
		Name:   name,
		Docket: docket,
	}

	if err := s.dm.User().Create(user); err != nil {
		return nil, err
	}

	s.log.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("docket", user.Docket),
	)
	return user, nil
}

func (s *userService) ListUsers() ([]*entity.User, error) {
	return s.dm.User().ListAll()
}

func (s *userService) GetUser(id int64) (*entity.User, error) {
	return s.dm.User().GetByID(id)
}

func (s *userService) UpdateUser(id int64, name, docket string) error {
	user, err := s.dm.User().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	user.Name = name
	user.Docket = docket
	if err := s.dm.User().Update(user); err != nil {
		return err
	}

	s.log.Info("user updated", zap.Int64("user_id", id))
	return nil
}

// DeleteUser removes the user and all their records in one transaction.
// Records go first so no record is ever left pointing at a missing user.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.dm.User().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Record().DeleteAllByUser(id); err != nil {
			return err
		}
		return tx.User().Delete(id)
	})
	if err != nil {
		return err
	}

	s.log.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

func (s *userService) ExistsByName(name string) (bool, error) {
	return s.dm.User().ExistsByName(name)
}
