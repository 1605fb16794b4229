package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type ParentService struct {
	repo repository.ParentsRepositoryI
}

func NewParentService(parentsRepo repository.ParentsRepositoryI) *ParentService {
	return &ParentService{
		repo: parentsRepo,
	}
}

func (ps *ParentService) Register(ctx context.Context, req *RegisterRequest) (*entity.Parent, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrValidation, validationError)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = ps.repo.Create(ctx, &entity.Parent{
		Name:         req.Name,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	parent, err := ps.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return parent, nil
}

func (ps *ParentService) Login(ctx context.Context, name, password string) (*entity.Parent, error) {
	parent, err := ps.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(parent.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return parent, nil
}

func (ps *ParentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error) {
	parent, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return parent, nil
}

func (ps *ParentService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	parent, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(parent.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = ps.repo.Delete(ctx, parent.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
