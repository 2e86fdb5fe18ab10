package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/internal/carousel/domain"
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

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("carousel.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateImageRequest) (domain.Image, error) {
	url := strings.TrimSpace(req.ImageURL)
	if url == "" {
		return domain.Image{}, domain.ErrInvalidURL
	}

	now := time.Now().UTC()
	image := domain.Image{
		ID:        s.genID.Generate(),
		Title:     strings.TrimSpace(req.Title),
		ImageURL:  url,
		Position:  req.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &image); err != nil {
		return domain.Image{}, err
	}
	return image, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateImageRequest) (domain.Image, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Image{}, err
	}

	image, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Image{}, err
	}
	if image == nil {
		return domain.Image{}, domain.ErrNotFound
	}

	if req.Title != nil {
		image.Title = strings.TrimSpace(*req.Title)
	}
	if req.ImageURL != nil {
		url := strings.TrimSpace(*req.ImageURL)
		if url == "" {
			return domain.Image{}, domain.ErrInvalidURL
		}
		image.ImageURL = url
	}
	if req.Position != nil {
		image.Position = *req.Position
	}
	image.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, image); err != nil {
		return domain.Image{}, err
	}
	return *image, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	image, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Image, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
