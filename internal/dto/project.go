package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a project.
// Translatable fields accept either a plain string or a locale→text object.
// Price is in the base currency and area in sqm; the API never accepts
// pre-converted figures.
type CreateProjectRequest struct {
	Name             LocalizedInput `json:"name" binding:"required"`
	ShortDescription LocalizedInput `json:"short_description"`
	Description      LocalizedInput `json:"description"`
	Overview         LocalizedInput `json:"overview"`
	Location         LocalizedInput `json:"location"`
	DeveloperName    LocalizedInput `json:"developer_name"`
	DeveloperInfo    LocalizedInput `json:"developer_info"`
	Amenities        LocalizedInput `json:"amenities"`
	PaymentPlan      LocalizedInput `json:"payment_plan"`
	MetaTitle        LocalizedInput `json:"meta_title"`
	MetaDescription  LocalizedInput `json:"meta_description"`

	FeaturedImage string   `json:"featured_image"`
	Gallery       []string `json:"gallery"`
	FloorPlans    []string `json:"floor_plans"`

	PriceAED decimal.Decimal `json:"price_aed"`
	AreaSqm  decimal.Decimal `json:"area_sqm"`

	Latitude     decimal.Decimal `json:"latitude"`
	Longitude    decimal.Decimal `json:"longitude"`
	MapEmbed     string          `json:"map_embed"`
	ROI          decimal.Decimal `json:"roi"`
	PropertyType string          `json:"property_type" binding:"omitempty,oneof=apartment villa townhouse penthouse studio other"`
	DeliveryDate *time.Time      `json:"delivery_date"`

	IsFeatured bool   `json:"is_featured"`
	Status     string `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder  int    `json:"sort_order"`
}

// UpdateProjectRequest carries a partial project update. Only translatable
// fields present in the payload are touched; slugs are recomputed exactly
// for the locales present in the incoming name.
type UpdateProjectRequest struct {
	Name             LocalizedInput `json:"name"`
	ShortDescription LocalizedInput `json:"short_description"`
	Description      LocalizedInput `json:"description"`
	Overview         LocalizedInput `json:"overview"`
	Location         LocalizedInput `json:"location"`
	DeveloperName    LocalizedInput `json:"developer_name"`
	DeveloperInfo    LocalizedInput `json:"developer_info"`
	Amenities        LocalizedInput `json:"amenities"`
	PaymentPlan      LocalizedInput `json:"payment_plan"`
	MetaTitle        LocalizedInput `json:"meta_title"`
	MetaDescription  LocalizedInput `json:"meta_description"`

	FeaturedImage *string  `json:"featured_image"`
	Gallery       []string `json:"gallery"`
	FloorPlans    []string `json:"floor_plans"`

	PriceAED *decimal.Decimal `json:"price_aed"`
	AreaSqm  *decimal.Decimal `json:"area_sqm"`

	Latitude     *decimal.Decimal `json:"latitude"`
	Longitude    *decimal.Decimal `json:"longitude"`
	MapEmbed     *string          `json:"map_embed"`
	ROI          *decimal.Decimal `json:"roi"`
	PropertyType *string          `json:"property_type" binding:"omitempty,oneof=apartment villa townhouse penthouse studio other"`
	DeliveryDate *time.Time       `json:"delivery_date"`

	IsFeatured *bool   `json:"is_featured"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder  *int    `json:"sort_order"`
}

// UpdateStatusRequest sets an entity's publication status. Validation of
// the closed status set happens in the service so invalid transitions get a
// consistent error shape.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProjectPricing is the converted price block. BasePriceAED always carries
// the raw stored value so clients can re-derive or audit the conversion.
type ProjectPricing struct {
	Currency     string  `json:"currency"`
	Price        float64 `json:"price"`
	BasePriceAED float64 `json:"base_price_aed"`
}

// ProjectAreaBlock is the converted area block; BaseValueSqm is the raw
// stored value.
type ProjectAreaBlock struct {
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	BaseValueSqm float64 `json:"base_value_sqm"`
}

// ProjectResponse is the public serialization of a project, resolved to one
// locale and one display currency/unit.
type ProjectResponse struct {
	ProjectID        string `json:"project_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	Overview         string `json:"overview"`
	Location         string `json:"location"`
	DeveloperName    string `json:"developer_name"`
	DeveloperInfo    string `json:"developer_info"`
	Amenities        string `json:"amenities"`
	PaymentPlan      string `json:"payment_plan"`
	MetaTitle        string `json:"meta_title"`
	MetaDescription  string `json:"meta_description"`

	FeaturedImage string   `json:"featured_image"`
	Gallery       []string `json:"gallery"`
	FloorPlans    []string `json:"floor_plans"`

	Pricing ProjectPricing   `json:"pricing"`
	Area    ProjectAreaBlock `json:"area"`

	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MapEmbed     string  `json:"map_embed"`
	ROI          float64 `json:"roi"`
	PropertyType string  `json:"property_type"`
	DeliveryDate string  `json:"delivery_date,omitempty"`

	IsFeatured bool      `json:"is_featured"`
	Status     string    `json:"status"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToProjectResponse renders a project for one request. price and area are
// the already-converted display values; the raw base figures always ride
// along in the pricing/area blocks.
func ToProjectResponse(p *domain.Project, rc RenderContext, price, area decimal.Decimal) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:        p.ProjectID,
		Name:             p.Name.Resolve(rc.Locale, rc.DefaultLocale),
		Slug:             p.Slug.Resolve(rc.Locale, rc.DefaultLocale),
		ShortDescription: p.ShortDescription.Resolve(rc.Locale, rc.DefaultLocale),
		Description:      p.Description.Resolve(rc.Locale, rc.DefaultLocale),
		Overview:         p.Overview.Resolve(rc.Locale, rc.DefaultLocale),
		Location:         p.Location.Resolve(rc.Locale, rc.DefaultLocale),
		DeveloperName:    p.DeveloperName.Resolve(rc.Locale, rc.DefaultLocale),
		DeveloperInfo:    p.DeveloperInfo.Resolve(rc.Locale, rc.DefaultLocale),
		Amenities:        p.Amenities.Resolve(rc.Locale, rc.DefaultLocale),
		PaymentPlan:      p.PaymentPlan.Resolve(rc.Locale, rc.DefaultLocale),
		MetaTitle:        p.MetaTitle.Resolve(rc.Locale, rc.DefaultLocale),
		MetaDescription:  p.MetaDescription.Resolve(rc.Locale, rc.DefaultLocale),
		FeaturedImage:    p.FeaturedImage,
		Gallery:          p.Gallery,
		FloorPlans:       p.FloorPlans,
		Pricing: ProjectPricing{
			Currency:     rc.Currency,
			Price:        price.InexactFloat64(),
			BasePriceAED: p.PriceAED.InexactFloat64(),
		},
		Area: ProjectAreaBlock{
			Value:        area.InexactFloat64(),
			Unit:         rc.AreaUnit,
			BaseValueSqm: p.AreaSqm.InexactFloat64(),
		},
		Latitude:     p.Latitude.InexactFloat64(),
		Longitude:    p.Longitude.InexactFloat64(),
		MapEmbed:     p.MapEmbed,
		ROI:          p.ROI.InexactFloat64(),
		PropertyType: string(p.PropertyType),
		IsFeatured:   p.IsFeatured,
		Status:       p.Status.String(),
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.LastUpdatedAt,
	}
	if p.DeliveryDate != nil {
		resp.DeliveryDate = p.DeliveryDate.Format("2006-01-02")
	}
	return resp
}
