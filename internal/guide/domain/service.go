package domain

import (
	"context"
	"errors"
)

type ListServicesRequest struct {
	PageToken string
	PageSize  int32
	Name      string
}

type ListServicesResponse struct {
	Services      []Service `json:"services"`
	NextPageToken string    `json:"next_page_token"`
	HasMore       bool      `json:"has_more"`
}

type CreateServiceRequest struct {
	Name        string
	Description string
	VideoURL    string
	Steps       []StepInput
}

type UpdateServiceRequest struct {
	ID          string
	Name        *string
	Description *string
	VideoURL    *string
	Steps       []StepInput
}

// StepInput replaces a service's ordered steps wholesale on write.
type StepInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type GetServiceRequest struct {
	ID string
}

type GuideService interface {
	Create(context.Context, CreateServiceRequest) (Service, error)
	Update(context.Context, UpdateServiceRequest) (Service, error)
	Delete(ctx context.Context, id string) error
	List(context.Context, ListServicesRequest) (ListServicesResponse, error)
	GetByID(context.Context, GetServiceRequest) (Service, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
