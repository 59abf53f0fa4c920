package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	ucauth "job-portal/internal/usecase/auth"
)

var ErrInternal = errors.New("internal error")

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.ID.Hex(), string(usr.Role))
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.ID.Hex(), string(usr.Role))
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}
