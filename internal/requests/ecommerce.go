package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ecommercePlatforms = []string{"Shopify", "WooCommerce", "Magento", "Custom Build", "No Preference"}
	ecommerceFeatures  = []string{
		"Product Catalog", "Shopping Cart", "Payment Gateway", "Inventory Management",
		"Order Tracking", "Discount Codes", "Wishlist", "Product Reviews",
		"Abandoned Cart Recovery", "Multi-Currency", "Subscriptions", "Marketplace (Multi-Vendor)",
	}
	ecommerceProductCounts = []string{"Under 50", "50-500", "500-5,000", "5,000+"}
	ecommerceTimelines     = []string{TimelineASAP, "1 Month", "2-3 Months", "3-6 Months", "Flexible"}

	ecommerceBudgetRanges    = []string{"Under $2,000", "$2,000 - $8,000", "$8,000 - $20,000", "$20,000 - $50,000", "$50,000+"}
	ecommerceBudgetMidpoints = map[string]int{
		"Under $2,000":      1000,
		"$2,000 - $8,000":   5000,
		"$8,000 - $20,000":  14000,
		"$20,000 - $50,000": 35000,
		"$50,000+":          65000,
	}
	ecommerceHighValueRanges = []string{"$20,000 - $50,000", "$50,000+"}
)

const (
	ecommerceComplexityThreshold = 8
	ecommerceCustomBuild         = "Custom Build"
)

type EcommerceRequest struct {
	Lead                    `bson:",inline"`
	StoreName               string   `bson:"storeName" json:"storeName"`
	BusinessDescription     string   `bson:"businessDescription" json:"businessDescription"`
	PlatformPreference      string   `bson:"platformPreference" json:"platformPreference"`
	Features                []string `bson:"features" json:"features"`
	ProductCount            string   `bson:"productCount" json:"productCount"`
	NeedsPaymentIntegration bool     `bson:"needsPaymentIntegration" json:"needsPaymentIntegration"`
	BudgetRange             string   `bson:"budgetRange" json:"budgetRange"`
	Timeline                string   `bson:"timeline" json:"timeline"`
	UrgencyLevel            string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r EcommerceRequest) WithDerived() EcommerceRequest {
	r.EstimatedBudget = estimateBudget(ecommerceBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(ecommerceHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.Features, ecommerceComplexityThreshold) ||
		r.PlatformPreference == ecommerceCustomBuild
	return r
}

type EcommercePayload struct {
	ContactPayload
	StoreName               string   `json:"storeName" validate:"required,max=200"`
	BusinessDescription     string   `json:"businessDescription" validate:"required,max=5000"`
	PlatformPreference      string   `json:"platformPreference" validate:"required,enum=ecommercePlatform"`
	Features                []string `json:"features" validate:"required,min=1,dive,enum=ecommerceFeature"`
	ProductCount            string   `json:"productCount" validate:"required,enum=ecommerceProductCount"`
	NeedsPaymentIntegration *bool    `json:"needsPaymentIntegration"`
	BudgetRange             string   `json:"budgetRange" validate:"required,enum=ecommerceBudgetRange"`
	Timeline                string   `json:"timeline" validate:"required,enum=ecommerceTimeline"`
	UrgencyLevel            string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p EcommercePayload) Document(id string, now time.Time) EcommerceRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return EcommerceRequest{
		Lead:                    p.ContactPayload.lead(id, now),
		StoreName:               trimmed(p.StoreName),
		BusinessDescription:     trimmed(p.BusinessDescription),
		PlatformPreference:      trimmed(p.PlatformPreference),
		Features:                trimmedAll(p.Features),
		ProductCount:            trimmed(p.ProductCount),
		NeedsPaymentIntegration: boolDefault(p.NeedsPaymentIntegration, true),
		BudgetRange:             trimmed(p.BudgetRange),
		Timeline:                trimmed(p.Timeline),
		UrgencyLevel:            urgency,
	}
}

func newEcommerceHandler(col *mongo.Collection, deps Deps) *Handler[EcommercePayload, EcommerceRequest] {
	def := Definition{
		Slug:  "ecommerce-requests",
		Label: "Ecommerce",
		Filters: baseFilters(map[string]FilterKind{
			"platformPreference": FilterExact,
			"features":           FilterSet,
			"productCount":       FilterExact,
			"budgetRange":        FilterExact,
			"urgencyLevel":       FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[EcommercePayload, EcommerceRequest](def, NewRepository[EcommerceRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
