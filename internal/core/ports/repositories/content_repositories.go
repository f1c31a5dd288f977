package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// TeamMemberRepositoryFacade covers team member persistence. Team members
// carry no slug, so there is no SlugChecker here.
type TeamMemberRepositoryFacade interface {
	FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, status *domain.Status, page ListParams) ([]domain.TeamMember, int, error)
	SaveTeamMember(ctx context.Context, member domain.TeamMember) error
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) error
	DeleteTeamMember(ctx context.Context, teamMemberID string, deletedBy string) error
}

// TestimonialRepositoryFacade covers testimonial persistence.
type TestimonialRepositoryFacade interface {
	FindTestimonialByID(ctx context.Context, testimonialID string) (*domain.Testimonial, error)
	ListTestimonials(ctx context.Context, status *domain.Status, page ListParams) ([]domain.Testimonial, int, error)
	SaveTestimonial(ctx context.Context, testimonial domain.Testimonial) error
	UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, testimonialID string, deletedBy string) error
}

// SocialMediaLinkRepositoryFacade covers social link persistence.
type SocialMediaLinkRepositoryFacade interface {
	FindSocialMediaLinkByID(ctx context.Context, linkID string) (*domain.SocialMediaLink, error)
	ListSocialMediaLinks(ctx context.Context, activeOnly bool) ([]domain.SocialMediaLink, error)
	SaveSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error
	UpdateSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error
	UpdateSocialMediaLinkSortOrder(ctx context.Context, linkID string, sortOrder int, updatedBy string) error
	DeleteSocialMediaLink(ctx context.Context, linkID string, deletedBy string) error
}

// SettingRepositoryFacade covers the single site settings row.
type SettingRepositoryFacade interface {
	FindActiveSetting(ctx context.Context) (*domain.Setting, error)
	SaveSetting(ctx context.Context, setting domain.Setting) error
	UpdateSetting(ctx context.Context, setting domain.Setting) error
}
