package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/auth/otp"
	"github.com/uniguide/uniguide/internal/auth/repository"
	"github.com/uniguide/uniguide/internal/auth/token"
	"github.com/uniguide/uniguide/pkg/db"
)

var codePattern = regexp.MustCompile(`[0-9]{6}`)

// recordingEmail captures outbound mail so tests can read issued codes.
type recordingEmail struct {
	lastTo      string
	lastSubject string
	lastBody    string
	sends       int
}

func (r *recordingEmail) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	r.sends++
	if len(to) > 0 {
		r.lastTo = to[0]
	}
	r.lastSubject = subject
	r.lastBody = htmlBody
	return nil
}

func (r *recordingEmail) lastCode() string {
	return codePattern.FindString(r.lastBody)
}

func newTestService(t *testing.T) (domain.Service, *recordingEmail, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	assert.NoError(t, err)
	assert.NoError(t, conn.AutoMigrate(&domain.User{}))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	mail := &recordingEmail{}
	svc := New(Params{
		DB:     conn,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repository.Provide(),
		OTP:    otp.NewManager(otp.NewMemoryStore()),
		Email:  mail,
		Issuer: token.NewIssuer("test-secret", time.Hour),
	})
	return svc, mail, conn
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	svc, mail, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{
		Email:    "Student@Campus.EDU",
		Name:     "Student",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
	assert.Equal(t, "student@campus.edu", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, 1, mail.sends)

	// Login is gated until the address is verified.
	_, err = svc.Login(ctx, domain.LoginRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	result, err := svc.VerifyEmail(ctx, domain.VerifyEmailRequest{
		Email: "student@campus.edu",
		Code:  mail.lastCode(),
	})
	assert.NoError(t, err)
	assert.True(t, result.User.EmailVerified)
	assert.NotEmpty(t, result.RawToken)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)

	claims, err := svc.Authenticate(ctx, login.RawToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestSignupRejectsDuplicatesAndWeakInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "not-an-email", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "other@campus.edu", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mail, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)
	_, err = svc.VerifyEmail(ctx, domain.VerifyEmailRequest{Email: "student@campus.edu", Code: mail.lastCode()})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "student@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@campus.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mail, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)
	_, err = svc.VerifyEmail(ctx, domain.VerifyEmailRequest{Email: "student@campus.edu", Code: mail.lastCode()})
	assert.NoError(t, err)

	// Unknown addresses are silently accepted.
	assert.NoError(t, svc.RequestPasswordReset(ctx, "nobody@campus.edu"))
	sendsBefore := mail.sends

	assert.NoError(t, svc.RequestPasswordReset(ctx, "student@campus.edu"))
	assert.Equal(t, sendsBefore+1, mail.sends)

	assert.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{
		Email:       "student@campus.edu",
		Code:        mail.lastCode(),
		NewPassword: "brand-new-secret",
	}))

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "student@campus.edu", Password: "brand-new-secret"})
	assert.NoError(t, err)
}

func TestUserAdministration(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)

	updated, err := svc.UpdateRole(ctx, user.ID, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)

	_, err = svc.UpdateRole(ctx, user.ID, "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	resp, err := svc.ListUsers(ctx, domain.ListUsersRequest{})
	assert.NoError(t, err)
	assert.Len(t, resp.Users, 1)

	assert.NoError(t, svc.DeleteUser(ctx, user.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, user.ID), domain.ErrUserNotFound)

	_, err = svc.CurrentUser(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// blindLookupRepository reports every email as unregistered so inserts
// race straight into the unique index, as concurrent signups can.
type blindLookupRepository struct {
	domain.Repository
}

func (blindLookupRepository) FindByEmail(ctx context.Context, conn *gorm.DB, email string) (*domain.User, error) {
	return nil, nil
}

func TestSignupDuplicateInsertMapsToUserExists(t *testing.T) {
	conn, err := db.NewTest()
	assert.NoError(t, err)
	assert.NoError(t, conn.AutoMigrate(&domain.User{}))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	svc := New(Params{
		DB:     conn,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   blindLookupRepository{repository.Provide()},
		OTP:    otp.NewManager(otp.NewMemoryStore()),
		Email:  &recordingEmail{},
		Issuer: token.NewIssuer("test-secret", time.Hour),
	})
	ctx := context.Background()

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.NoError(t, err)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "student@campus.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}
