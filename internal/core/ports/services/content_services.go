package services

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// BlogSvcFacade covers blog article management.
type BlogSvcFacade interface {
	GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	GetBlogBySlug(ctx context.Context, locale, slug string) (*domain.Blog, error)
	ListBlogs(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Blog, int, error)
	CreateBlog(ctx context.Context, req dto.CreateBlogRequest, creatorUserID string) (*domain.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, req dto.UpdateBlogRequest, updaterUserID string) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, blogID string, deleterUserID string) error
	UpdateBlogStatus(ctx context.Context, blogID string, status string, updaterUserID string) (*domain.Blog, error)
	ToggleBlogFeatured(ctx context.Context, blogID string, updaterUserID string) (*domain.Blog, error)
}

// AreaGuideSvcFacade covers area guide management.
type AreaGuideSvcFacade interface {
	GetAreaGuideByID(ctx context.Context, areaGuideID string) (*domain.AreaGuide, error)
	GetAreaGuideBySlug(ctx context.Context, locale, slug string) (*domain.AreaGuide, error)
	ListAreaGuides(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.AreaGuide, int, error)
	CreateAreaGuide(ctx context.Context, req dto.CreateAreaGuideRequest, creatorUserID string) (*domain.AreaGuide, error)
	UpdateAreaGuide(ctx context.Context, areaGuideID string, req dto.UpdateAreaGuideRequest, updaterUserID string) (*domain.AreaGuide, error)
	DeleteAreaGuide(ctx context.Context, areaGuideID string, deleterUserID string) error
	UpdateAreaGuideStatus(ctx context.Context, areaGuideID string, status string, updaterUserID string) (*domain.AreaGuide, error)
	ToggleAreaGuidePopular(ctx context.Context, areaGuideID string, updaterUserID string) (*domain.AreaGuide, error)
	SyncAreaGuideProjects(ctx context.Context, areaGuideID string, projectIDs []string) error
}

// ServiceSvcFacade covers service offering management.
type ServiceSvcFacade interface {
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	GetServiceBySlug(ctx context.Context, locale, slug string) (*domain.Service, error)
	ListServices(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Service, int, error)
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterUserID string) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string, deleterUserID string) error
}

// TeamMemberSvcFacade covers team member management.
type TeamMemberSvcFacade interface {
	GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.TeamMember, int, error)
	CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest, creatorUserID string) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterUserID string) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, teamMemberID string, deleterUserID string) error
}

// TestimonialSvcFacade covers testimonial management.
type TestimonialSvcFacade interface {
	GetTestimonialByID(ctx context.Context, testimonialID string) (*domain.Testimonial, error)
	ListTestimonials(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Testimonial, int, error)
	CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest, creatorUserID string) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonialID string, req dto.UpdateTestimonialRequest, updaterUserID string) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, testimonialID string, deleterUserID string) error
}

// SocialMediaLinkSvcFacade covers social link management.
type SocialMediaLinkSvcFacade interface {
	GetSocialMediaLinkByID(ctx context.Context, linkID string) (*domain.SocialMediaLink, error)
	ListSocialMediaLinks(ctx context.Context, activeOnly bool) ([]domain.SocialMediaLink, error)
	CreateSocialMediaLink(ctx context.Context, req dto.CreateSocialMediaLinkRequest, creatorUserID string) (*domain.SocialMediaLink, error)
	UpdateSocialMediaLink(ctx context.Context, linkID string, req dto.UpdateSocialMediaLinkRequest, updaterUserID string) (*domain.SocialMediaLink, error)
	ReorderSocialMediaLinks(ctx context.Context, req dto.ReorderSocialMediaLinksRequest, updaterUserID string) error
	DeleteSocialMediaLink(ctx context.Context, linkID string, deleterUserID string) error
}

// ContactSvcFacade covers the public contact form and the admin inbox.
type ContactSvcFacade interface {
	SubmitContact(ctx context.Context, req dto.CreateContactRequest, ipAddress string) (*domain.Contact, error)
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, filter portsrepo.ContactFilter, page portsrepo.ListParams) ([]domain.Contact, int, error)
	UpdateContactStatus(ctx context.Context, contactID string, status string, updaterUserID string) (*domain.Contact, error)
	MarkContactRead(ctx context.Context, contactID string, updaterUserID string) (*domain.Contact, error)
	MarkContactClosed(ctx context.Context, contactID string, updaterUserID string) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID string, deleterUserID string) error
}

// SettingSvcFacade covers the single site settings row.
type SettingSvcFacade interface {
	GetSetting(ctx context.Context) (*domain.Setting, error)
	UpsertSetting(ctx context.Context, req dto.UpsertSettingRequest, updaterUserID string) (*domain.Setting, error)
}
