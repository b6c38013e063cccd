package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/logging"
	"github.com/tmorris/bizlink-admin/internal/models"
)

// AdminClient is the slice of the API client the admin service uses.
type AdminClient interface {
	ListUsers(ctx context.Context, p models.UserListParams) (*models.UserPage, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListNZBNRequests(ctx context.Context, p models.NZBNListParams) (*models.NZBNPage, error)
	ApproveNZBNRequest(ctx context.Context, id string) (*models.NZBNRequest, error)
	DeclineNZBNRequest(ctx context.Context, id, reason string) (*models.NZBNRequest, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	GetJobLimits(ctx context.Context) (*models.JobLimits, error)
	UpdateJobLimits(ctx context.Context, limits models.JobLimits) (*models.JobLimits, error)
}

// AdminService exposes the moderation operations of the console: user
// management, NZBN approvals, category management and job-limit
// configuration. Input validation happens here so the CLI stays thin.
type AdminService interface {
	ListUsers(ctx context.Context, p models.UserListParams) (*models.UserPage, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	SuspendUser(ctx context.Context, id string) (*models.User, error)
	ActivateUser(ctx context.Context, id string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListNZBNRequests(ctx context.Context, p models.NZBNListParams) (*models.NZBNPage, error)
	ApproveNZBN(ctx context.Context, id string) (*models.NZBNRequest, error)
	DeclineNZBN(ctx context.Context, id, reason string) (*models.NZBNRequest, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	JobLimits(ctx context.Context) (*models.JobLimits, error)
	SetJobLimits(ctx context.Context, limits models.JobLimits) (*models.JobLimits, error)
}

type adminService struct {
	client AdminClient
	log    logging.Logger
}

func NewAdminService(client AdminClient, log logging.Logger) AdminService {
	return &adminService{client: client, log: log}
}

func (s *adminService) ListUsers(ctx context.Context, p models.UserListParams) (*models.UserPage, error) {
	return s.client.ListUsers(ctx, p)
}

func (s *adminService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.GetUser(ctx, id)
}

func (s *adminService) SuspendUser(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.UpdateUserStatus(ctx, id, models.UserStatusSuspended)
}

func (s *adminService) ActivateUser(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.UpdateUserStatus(ctx, id, models.UserStatusActive)
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("user id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.DeleteUser(ctx, id)
}

func (s *adminService) ListNZBNRequests(ctx context.Context, p models.NZBNListParams) (*models.NZBNPage, error) {
	if p.Status == "" {
		p.Status = models.NZBNStatusPending
	}
	return s.client.ListNZBNRequests(ctx, p)
}

func (s *adminService) ApproveNZBN(ctx context.Context, id string) (*models.NZBNRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("request id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.ApproveNZBNRequest(ctx, id)
}

func (s *adminService) DeclineNZBN(ctx context.Context, id, reason string) (*models.NZBNRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("request id is required: %w", common.ErrInvalidArgument)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("decline reason is required: %w", common.ErrInvalidArgument)
	}
	return s.client.DeclineNZBNRequest(ctx, id, reason)
}

func (s *adminService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.client.ListCategories(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", common.ErrInvalidArgument)
	}
	return s.client.CreateCategory(ctx, name)
}

func (s *adminService) RenameCategory(ctx context.Context, id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(id) == "" || name == "" {
		return nil, fmt.Errorf("category id and name are required: %w", common.ErrInvalidArgument)
	}
	return s.client.UpdateCategory(ctx, id, name)
}

func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("category id is required: %w", common.ErrInvalidArgument)
	}
	return s.client.DeleteCategory(ctx, id)
}

func (s *adminService) JobLimits(ctx context.Context) (*models.JobLimits, error) {
	return s.client.GetJobLimits(ctx)
}

func (s *adminService) SetJobLimits(ctx context.Context, limits models.JobLimits) (*models.JobLimits, error) {
	if limits.FreeTierLimit < 0 || limits.StandardTierLimit < 0 || limits.PremiumTierLimit < 0 {
		return nil, fmt.Errorf("limits must be non-negative: %w", common.ErrInvalidArgument)
	}
	if limits.WindowDays <= 0 {
		return nil, fmt.Errorf("window must be at least one day: %w", common.ErrInvalidArgument)
	}
	return s.client.UpdateJobLimits(ctx, limits)
}
