package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/service"
	"github.com/lumipath/challenges/pkg/entity"
	"github.com/lumipath/challenges/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateChildRequest struct {
	Name string `json:"name"`
}

type ProgressRequest struct {
	ActionType string `json:"action_type"`
	Value      int    `json:"value"`
	QuizScore  *int   `json:"quiz_score,omitempty"`
}

type ProgressResponse struct {
	Success            bool                       `json:"success"`
	CompletedNow       []entity.ChallengeInstance `json:"completed_now"`
	TotalPointsAwarded int                        `json:"total_points_awarded"`
}

type GetChildrenResponse struct {
	ParentID string          `json:"parent_id"`
	Children []*entity.Child `json:"children"`
}

type TodayChallengesResponse struct {
	ChildID    string                     `json:"child_id"`
	Challenges []entity.ChallengeInstance `json:"challenges"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	parent, err := s.parentService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrParentExists):
			logger.Error("registering error: existed parent")
			httputil.WriteErrorResponse(w, http.StatusConflict, "parent with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteValidationErrorResponse(w, "invalid credentials format", validationFields(err))
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": parent.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	parent, err := s.parentService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrParentNotFound):
			logger.Error("login error: unexist parent")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "parent with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid name or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(parent)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   parent.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CreateChild(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	parentID, err := GetParentIDFromContext(r)
	if err != nil {
		logger.Error("create child error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChildRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create child error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	child, err := s.childrenService.CreateChild(ctx, parentID, &service.CreateChildRequest{
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create child error: invalid name")
			httputil.WriteValidationErrorResponse(w, "invalid child name", validationFields(err))
		case errors.Is(err, errorvalues.ErrParentNotFound):
			logger.Error("create child error: unexist parent")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create child: parent doesn't exist", nil)
		default:
			logger.Error("create child error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating child", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"child_id": child.ID.String()})
	logger.Info("child created")
}

func (s *Server) GetChildren(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	parentID, err := GetParentIDFromContext(r)
	if err != nil {
		logger.Error("get children error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	children, err := s.childrenService.GetParentChildren(ctx, parentID)
	if err != nil {
		logger.Error("getting children list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting children list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChildrenResponse{
		ParentID: parentID.String(),
		Children: children,
	})
	logger.Info("children provided")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	parentID, err := GetParentIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	childID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenges error: invalid child id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid child id in path value", nil)
		return
	}
	history, _ := strconv.ParseBool(r.URL.Query().Get("history"))
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		days = 7
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if history {
		summary, err := s.challengeService.GetHistory(ctx, childID, parentID, days)
		if err != nil {
			writeChallengeError(w, logger, "get history", err)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, summary)
		logger.Info("history provided")
		return
	}
	challenges, err := s.challengeService.GetTodayChallenges(ctx, childID, parentID)
	if err != nil {
		writeChallengeError(w, logger, "get challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayChallengesResponse{
		ChildID:    childID.String(),
		Challenges: challenges,
	})
	logger.Info("today's challenges provided")
}

func (s *Server) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	parentID, err := GetParentIDFromContext(r)
	if err != nil {
		logger.Error("record progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	childID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("record progress error: invalid child id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid child id in path value", nil)
		return
	}
	var req ProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("record progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Value == 0 {
		req.Value = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.challengeService.RecordProgress(ctx, childID, parentID, &service.ProgressRequest{
		ActionType: entity.ActionType(req.ActionType),
		Value:      req.Value,
		QuizScore:  req.QuizScore,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("record progress error: invalid event")
			httputil.WriteValidationErrorResponse(w, "invalid progress event", validationFields(err))
			return
		}
		writeChallengeError(w, logger, "record progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProgressResponse{
		Success:            true,
		CompletedNow:       result.CompletedNow,
		TotalPointsAwarded: result.TotalPointsAwarded,
	})
	logger.Info("progress recorded")
}

// writeChallengeError maps service errors common to the challenge endpoints.
// A foreign-owned child answers 404 same as a missing one
func writeChallengeError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrChildNotFound):
		logger.Error(op + " error: unexist child")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "child doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: child has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "child doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func validationFields(err error) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	fields := make([]string, 0, len(vErrs))
	for _, fieldErr := range vErrs {
		fields = append(fields, fieldErr.Field())
	}
	return fields
}
