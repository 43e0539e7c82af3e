package service

import (
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"go.uber.org/zap"
)

type Services struct {
	Assignment contract.AssignmentService
	User       contract.UserService
}

func New(dm contract.DataManager, notifier contract.Notifier, log *zap.Logger) *Services {
	return &Services{
		Assignment: newAssignment(dm, notifier, log),
		User:       newUser(dm, log),
	}
}
