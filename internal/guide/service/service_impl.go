package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/internal/guide/domain"
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.GuideService {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("guide.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateServiceRequest) (domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Service{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	service := domain.Service{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		VideoURL:    strings.TrimSpace(req.VideoURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	service.Steps = buildSteps(s.genID, service.ID, req.Steps, now)

	if err := s.repo.Insert(ctx, s.db, &service); err != nil {
		return domain.Service{}, err
	}
	return service, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateServiceRequest) (domain.Service, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Service{}, err
	}

	service, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Service{}, err
	}
	if service == nil {
		return domain.Service{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Service{}, domain.ErrInvalidName
		}
		service.Name = name
	}
	if req.Description != nil {
		service.Description = strings.TrimSpace(*req.Description)
	}
	if req.VideoURL != nil {
		service.VideoURL = strings.TrimSpace(*req.VideoURL)
	}
	service.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, service); err != nil {
		return domain.Service{}, err
	}

	if req.Steps != nil {
		steps := buildSteps(s.genID, service.ID, req.Steps, service.UpdatedAt)
		if err := s.repo.ReplaceSteps(ctx, s.db, service.ID, steps); err != nil {
			return domain.Service{}, err
		}
		service.Steps = steps
	}

	return *service, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	service, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) List(ctx context.Context, req domain.ListServicesRequest) (domain.ListServicesResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListServicesFilter{
		Name: strings.TrimSpace(req.Name),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListServicesResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(service *domain.Service) string {
		cursor, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        service.ID.String(),
			CreatedAt: service.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return cursor
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	services := make([]domain.Service, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		services = append(services, *item)
	}

	resp := domain.ListServicesResponse{Services: services}
	if pageInfo != nil {
		resp.NextPageToken = pageInfo.NextPageToken
		resp.HasMore = pageInfo.HasMore
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetServiceRequest) (domain.Service, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Service{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Service{}, err
	}
	if item == nil {
		return domain.Service{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func buildSteps(genID *snowflake.Node, serviceID snowflake.ID, inputs []domain.StepInput, now time.Time) []domain.Step {
	steps := make([]domain.Step, 0, len(inputs))
	for i, input := range inputs {
		title := strings.TrimSpace(input.Title)
		if title == "" {
			continue
		}
		steps = append(steps, domain.Step{
			ID:        genID.Generate(),
			ServiceID: serviceID,
			Position:  i + 1,
			Title:     title,
			Body:      strings.TrimSpace(input.Body),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return steps
}
