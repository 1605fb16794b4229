package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/repository/mocks"
	"github.com/lumipath/challenges/internal/service"
	"github.com/lumipath/challenges/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateChild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	childrenRepo := mocks.NewMockChildrenRepositoryI(ctrl)

	serv := service.NewChildrenService(childrenRepo)
	parentID := uuid.New()
	childID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.CreateChildRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Error:   nil,
			Request: &service.CreateChildRequest{Name: "Alex"},
			MockPrepFunc: func() {
				childrenRepo.EXPECT().Create(gomock.Any(), &entity.Child{
					ParentID: parentID,
					Name:     "Alex",
				}).Return(childID, nil)
				childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(&entity.Child{
					ID:       childID,
					ParentID: parentID,
					Name:     "Alex",
				}, nil)
			},
		},
		{
			Desc:         "error empty name",
			Error:        errorvalues.ErrValidation,
			Request:      &service.CreateChildRequest{Name: ""},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "error parent doesn't exist",
			Error:   errorvalues.ErrParentNotFound,
			Request: &service.CreateChildRequest{Name: "Alex"},
			MockPrepFunc: func() {
				childrenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrParentNotFound)
			},
		},
		{
			Desc:    "db error",
			Error:   errors.New("children repository error: db error"),
			Request: &service.CreateChildRequest{Name: "Alex"},
			MockPrepFunc: func() {
				childrenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			child, err := serv.CreateChild(context.Background(), parentID, tc.Request)
			if tc.Error != nil {
				assert.ErrorContains(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, childID, child.ID)
			assert.Equal(t, parentID, child.ParentID)
		})
	}
}

func TestGetChild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	childrenRepo := mocks.NewMockChildrenRepositoryI(ctrl)

	serv := service.NewChildrenService(childrenRepo)
	parentID := uuid.New()
	childID := uuid.New()
	child := &entity.Child{ID: childID, ParentID: parentID, Name: "Alex"}

	t.Run("success", func(t *testing.T) {
		childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(child, nil)
		res, err := serv.GetChild(context.Background(), childID, parentID)
		assert.NoError(t, err)
		assert.Equal(t, *child, *res)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(child, nil)
		_, err := serv.GetChild(context.Background(), childID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error child doesn't exist", func(t *testing.T) {
		childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(nil, errorvalues.ErrChildNotFound)
		_, err := serv.GetChild(context.Background(), childID, parentID)
		assert.ErrorIs(t, err, errorvalues.ErrChildNotFound)
	})
}

func TestGetParentChildren(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	childrenRepo := mocks.NewMockChildrenRepositoryI(ctrl)

	serv := service.NewChildrenService(childrenRepo)
	parentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		childrenRepo.EXPECT().GetByParentID(gomock.Any(), parentID).Return([]*entity.Child{
			{ID: uuid.New(), ParentID: parentID, Name: "Alex"},
			{ID: uuid.New(), ParentID: parentID, Name: "Maria"},
		}, nil)
		children, err := serv.GetParentChildren(context.Background(), parentID)
		assert.NoError(t, err)
		assert.Len(t, children, 2)
	})
	t.Run("db error", func(t *testing.T) {
		childrenRepo.EXPECT().GetByParentID(gomock.Any(), parentID).Return(nil, errors.New("db error"))
		_, err := serv.GetParentChildren(context.Background(), parentID)
		assert.EqualError(t, err, "children repository error: db error")
	})
}

func TestDeleteChild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	childrenRepo := mocks.NewMockChildrenRepositoryI(ctrl)

	serv := service.NewChildrenService(childrenRepo)
	parentID := uuid.New()
	childID := uuid.New()
	child := &entity.Child{ID: childID, ParentID: parentID, Name: "Alex"}

	t.Run("success", func(t *testing.T) {
		childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(child, nil)
		childrenRepo.EXPECT().Delete(gomock.Any(), childID).Return(nil)
		assert.NoError(t, serv.DeleteChild(context.Background(), childID, parentID))
	})
	t.Run("error wrong owner", func(t *testing.T) {
		childrenRepo.EXPECT().GetByID(gomock.Any(), childID).Return(child, nil)
		err := serv.DeleteChild(context.Background(), childID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
