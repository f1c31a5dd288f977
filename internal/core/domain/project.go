package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType classifies a project listing.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyPenthouse PropertyType = "penthouse"
	PropertyStudio    PropertyType = "studio"
	PropertyOther     PropertyType = "other"
)

// Project is a real-estate development listing. Monetary values are stored
// in the base currency and areas in square meters; converted figures are
// derived at read time and never persisted.
type Project struct {
	ProjectID        string    `json:"projectID"`
	Name             Localized `json:"name"`
	Slug             Localized `json:"slug"`
	ShortDescription Localized `json:"shortDescription"`
	Description      Localized `json:"description"`
	Overview         Localized `json:"overview"`
	Location         Localized `json:"location"`
	DeveloperName    Localized `json:"developerName"`
	DeveloperInfo    Localized `json:"developerInfo"`
	Amenities        Localized `json:"amenities"`
	PaymentPlan      Localized `json:"paymentPlan"`
	MetaTitle        Localized `json:"metaTitle"`
	MetaDescription  Localized `json:"metaDescription"`

	FeaturedImage string   `json:"featuredImage"`
	Gallery       []string `json:"gallery"`
	FloorPlans    []string `json:"floorPlans"`

	PriceAED decimal.Decimal `json:"priceAED"` // base currency amount
	AreaSqm  decimal.Decimal `json:"areaSqm"`  // base unit amount

	Latitude     decimal.Decimal `json:"latitude"`
	Longitude    decimal.Decimal `json:"longitude"`
	MapEmbed     string          `json:"mapEmbed"`
	ROI          decimal.Decimal `json:"roi"`
	PropertyType PropertyType    `json:"propertyType"`
	DeliveryDate *time.Time      `json:"deliveryDate"`

	IsFeatured bool   `json:"isFeatured"`
	Status     Status `json:"status"`
	SortOrder  int    `json:"sortOrder"`
	AuditFields
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status       *Status
	PropertyType *PropertyType
	IsFeatured   *bool
	AreaGuideID  string
}
