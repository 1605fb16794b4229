package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/pkg/entity"
)

type ChildrenService struct {
	repo repository.ChildrenRepositoryI
}

func NewChildrenService(childrenRepo repository.ChildrenRepositoryI) *ChildrenService {
	if childrenRepo == nil {
		log.Fatal("provided nil childrenRepo")
	}
	return &ChildrenService{
		repo: childrenRepo,
	}
}

func (cs *ChildrenService) CreateChild(ctx context.Context, parentID uuid.UUID, req *CreateChildRequest) (*entity.Child, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrValidation, validationError)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	id, err := cs.repo.Create(ctx, &entity.Child{
		ParentID: parentID,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrParentNotFound) {
			return nil, err
		}
		return nil, errors.New("children repository error: " + err.Error())
	}
	child, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return nil, err
		}
		return nil, errors.New("children repository error: " + err.Error())
	}
	return child, nil
}

func (cs *ChildrenService) GetParentChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	children, err := cs.repo.GetByParentID(ctx, parentID)
	if err != nil {
		return nil, errors.New("children repository error: " + err.Error())
	}
	return children, nil
}

func (cs *ChildrenService) GetChild(ctx context.Context, childID, parentID uuid.UUID) (*entity.Child, error) {
	child, err := cs.repo.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return nil, err
		}
		return nil, errors.New("children repository error: " + err.Error())
	}
	if child.ParentID != parentID {
		return nil, errorvalues.ErrWrongOwner
	}
	return child, nil
}

func (cs *ChildrenService) DeleteChild(ctx context.Context, childID, parentID uuid.UUID) error {
	child, err := cs.repo.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return err
		}
		return errors.New("children repository error: " + err.Error())
	}
	if child.ParentID != parentID {
		return errorvalues.ErrWrongOwner
	}
	err = cs.repo.Delete(ctx, childID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return err
		}
		return errors.New("children repository error: " + err.Error())
	}
	return nil
}
