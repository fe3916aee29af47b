package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// TeamService handles admin-side team management.
type TeamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewTeamService(repo *repository.Repository, logger *zap.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) Create(ctx context.Context, adminID string, req *dto.CreateTeamRequest) (*model.Team, error) {
	if req.LeaderUserID != nil {
		leader, err := s.repo.User.GetByID(ctx, *req.LeaderUserID)
		if err != nil {
			return nil, fmt.Errorf("get leader: %w", err)
		}
		if leader == nil {
			return nil, fmt.Errorf("%w: leader user", ErrNotFound)
		}
		if leader.Role != model.RoleKetuaTim {
			return nil, fmt.Errorf("%w: leader harus berperan ketua_tim", ErrValidation)
		}
	}

	team := &model.Team{
		Name:         req.Name,
		Description:  req.Description,
		LeaderUserID: req.LeaderUserID,
		CreatedBy:    adminID,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	s.logger.Info("team created", zap.String("team_id", team.ID))
	return team, nil
}

func (s *TeamService) GetByID(ctx context.Context, id string) (*model.Team, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if team == nil {
		return nil, fmt.Errorf("%w: team", ErrNotFound)
	}
	return team, nil
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	return s.repo.Team.List(ctx)
}

func (s *TeamService) Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*model.Team, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if team == nil {
		return nil, fmt.Errorf("%w: team", ErrNotFound)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}
	if req.LeaderUserID != nil {
		leader, err := s.repo.User.GetByID(ctx, *req.LeaderUserID)
		if err != nil {
			return nil, fmt.Errorf("get leader: %w", err)
		}
		if leader == nil {
			return nil, fmt.Errorf("%w: leader user", ErrNotFound)
		}
		if leader.Role != model.RoleKetuaTim {
			return nil, fmt.Errorf("%w: leader harus berperan ketua_tim", ErrValidation)
		}
		team.LeaderUserID = req.LeaderUserID
	}

	if err := s.repo.Team.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}
	return team, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if team == nil {
		return fmt.Errorf("%w: team", ErrNotFound)
	}
	return s.repo.Team.Delete(ctx, id)
}
