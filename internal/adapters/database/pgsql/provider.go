package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CurrencyRateRepo:    NewPgxCurrencyRateRepository(pool),
		ProjectRepo:         NewPgxProjectRepository(pool),
		BlogRepo:            NewPgxBlogRepository(pool),
		AreaGuideRepo:       NewPgxAreaGuideRepository(pool),
		ServiceRepo:         NewPgxServiceRepository(pool),
		TeamMemberRepo:      NewPgxTeamMemberRepository(pool),
		TestimonialRepo:     NewPgxTestimonialRepository(pool),
		SocialMediaLinkRepo: NewPgxSocialMediaLinkRepository(pool),
		SettingRepo:         NewPgxSettingRepository(pool),
		ContactRepo:         NewPgxContactRepository(pool),
	}
}
