package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*LoginResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Authenticate(ctx context.Context, rawToken string) (*Claims, error)
	CurrentUser(ctx context.Context, userID snowflake.ID) (*User, error)

	// Admin user management.
	ListUsers(ctx context.Context, req ListUsersRequest) (ListUsersResponse, error)
	UpdateRole(ctx context.Context, userID snowflake.ID, role string) (*User, error)
	DeleteUser(ctx context.Context, userID snowflake.ID) error
}

// Claims is the role claim set decoded from a session token.
type Claims struct {
	UserID snowflake.ID
	Email  string
	Role   string
}

type SignupRequest struct {
	Email    string
	Name     string
	Password string
}

type VerifyEmailRequest struct {
	Email string
	Code  string
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type ResetPasswordRequest struct {
	Email       string
	Code        string
	NewPassword string
}

type LoginResult struct {
	User      *User
	RawToken  string
	ExpiresAt time.Time
}

type ListUsersRequest struct {
	PageToken string
	PageSize  int32
	Email     string
	Role      string
}

type ListUsersResponse struct {
	Users         []User `json:"users"`
	NextPageToken string `json:"next_page_token"`
	HasMore       bool   `json:"has_more"`
}
