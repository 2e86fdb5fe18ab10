package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/auth/otp"
	"github.com/uniguide/uniguide/internal/auth/password"
	"github.com/uniguide/uniguide/internal/auth/token"
	"github.com/uniguide/uniguide/internal/providers/email"
	"github.com/uniguide/uniguide/pkg/db"
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	OTP    *otp.Manager
	Email  email.Provider
	Issuer *token.Issuer
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	otp    *otp.Manager
	email  email.Provider
	issuer *token.Issuer
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("auth.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		otp:    p.OTP,
		email:  p.Email,
		issuer: p.Issuer,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	emailAddr := normalizeEmail(req.Email)
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil, domain.ErrInvalidCredentials
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           s.genID.Generate(),
		Email:        emailAddr,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: &hashed,
		Role:         domain.RoleUser,
		Metadata:     datatypes.JSONMap{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, s.db, user); err != nil {
		// Concurrent signups for the same email can pass the lookup above
		// and collide on the unique index.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	if err := s.sendOTP(ctx, otp.PurposeVerifyEmail, emailAddr, "Verify your email"); err != nil {
		// The account exists; the code can be re-requested.
		s.log.Warn("send verification code failed", zap.Error(err))
	}

	return user, nil
}

func (s *Service) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) (*domain.LoginResult, error) {
	emailAddr := normalizeEmail(req.Email)
	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.otp.Verify(ctx, otp.PurposeVerifyEmail, emailAddr, strings.TrimSpace(req.Code)); err != nil {
		return nil, err
	}

	if !user.EmailVerified {
		user.EmailVerified = true
		user.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, s.db, user); err != nil {
			return nil, err
		}
	}

	return s.issueSession(user)
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	emailAddr := normalizeEmail(req.Email)
	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(req.Password, *user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	s.log.Info("user login",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", req.IPAddress),
	)

	return s.issueSession(user)
}

func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the address is registered.
		return nil
	}

	return s.sendOTP(ctx, otp.PurposePasswordReset, emailAddr, "Reset your password")
}

func (s *Service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	emailAddr := normalizeEmail(req.Email)
	if len(req.NewPassword) < 8 {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, s.db, emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := s.otp.Verify(ctx, otp.PurposePasswordReset, emailAddr, strings.TrimSpace(req.Code)); err != nil {
		return err
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hashed
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, s.db, user)
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Claims, error) {
	_ = ctx
	return s.issuer.Decode(rawToken)
}

func (s *Service) CurrentUser(ctx context.Context, userID snowflake.ID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, req domain.ListUsersRequest) (domain.ListUsersResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListUsersFilter{
		Email: normalizeEmail(req.Email),
		Role:  strings.TrimSpace(req.Role),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListUsersResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(user *domain.User) string {
		cursor, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        user.ID.String(),
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return cursor
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		users = append(users, *item)
	}

	resp := domain.ListUsersResponse{Users: users}
	if pageInfo != nil {
		resp.NextPageToken = pageInfo.NextPageToken
		resp.HasMore = pageInfo.HasMore
	}
	return resp, nil
}

func (s *Service) UpdateRole(ctx context.Context, userID snowflake.ID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID snowflake.ID) error {
	user, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return s.repo.Delete(ctx, s.db, userID)
}

func (s *Service) issueSession(user *domain.User) (*domain.LoginResult, error) {
	raw, expiresAt, err := s.issuer.Issue(user, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &domain.LoginResult{
		User:      user,
		RawToken:  raw,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) sendOTP(ctx context.Context, purpose, emailAddr, subject string) error {
	code, err := s.otp.Issue(ctx, purpose, emailAddr)
	if err != nil {
		return err
	}
	body := "<p>Your UniGuide verification code is <strong>" + code + "</strong>. It expires in 10 minutes.</p>"
	return s.email.Send(ctx, []string{emailAddr}, subject, body)
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
