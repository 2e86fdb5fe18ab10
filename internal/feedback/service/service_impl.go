package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uniguide/uniguide/internal/feedback/domain"
	guidedomain "github.com/uniguide/uniguide/internal/guide/domain"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Guides guidedomain.GuideService
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	guides guidedomain.GuideService
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("feedback.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		guides: p.Guides,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (domain.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.Feedback{}, domain.ErrInvalidRating
	}

	guide, err := s.guides.GetByID(ctx, guidedomain.GetServiceRequest{ID: req.ServiceID})
	if err != nil {
		if err == guidedomain.ErrInvalidID || err == guidedomain.ErrNotFound {
			return domain.Feedback{}, domain.ErrInvalidService
		}
		return domain.Feedback{}, err
	}

	feedback := domain.Feedback{
		ID:          s.genID.Generate(),
		ServiceID:   guide.ID,
		ServiceName: guide.Name,
		StepNumber:  req.StepNumber,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if req.UserID != 0 {
		id := req.UserID
		feedback.UserID = &id
	}
	if email := strings.TrimSpace(req.UserEmail); email != "" {
		feedback.UserEmail = &email
	}

	if err := s.repo.Insert(ctx, s.db, &feedback); err != nil {
		return domain.Feedback{}, err
	}

	s.log.Info("feedback submitted",
		zap.String("service_id", feedback.ServiceID.String()),
		zap.Int("rating", feedback.Rating),
	)
	return feedback, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Feedback, error) {
	serviceID, err := s.parseID(req.ServiceID)
	if err != nil {
		return nil, err
	}

	var stepNumber *int
	if step := strings.TrimSpace(req.StepID); step != "" {
		n, err := strconv.Atoi(step)
		if err != nil || n <= 0 {
			return nil, domain.ErrInvalidID
		}
		stepNumber = &n
	}

	return s.repo.ListByService(ctx, s.db, serviceID, stepNumber)
}

func (s *Service) ListAll(ctx context.Context, rawServiceID string) ([]domain.Feedback, error) {
	var serviceID *snowflake.ID
	if raw := strings.TrimSpace(rawServiceID); raw != "" {
		id, err := s.parseID(raw)
		if err != nil {
			return nil, err
		}
		serviceID = &id
	}
	return s.repo.ListAll(ctx, s.db, serviceID)
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
