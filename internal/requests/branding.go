package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	brandingDesignTypes = []string{
		"Logo Design", "Banner Design", "UI/UX Design", "Website Design",
		"Business Card Design", "Social Media Kit", "Brochure Design", "Packaging Design",
	}
	brandingDeliverables = []string{
		"Logo Pack (PNG, JPG, SVG)", "Brand Guidelines PDF", "Source Files (AI, PSD)",
		"Social Media Templates", "Stationery Set",
	}
	brandingStyles    = []string{"Minimalist", "Modern", "Classic", "Playful", "Luxury", "Custom Style"}
	brandingTimelines = []string{TimelineASAP, "1-2 Weeks", "1 Month", "Flexible"}

	brandingBudgetRanges    = []string{"Under $500", "$500 - $1,500", "$1,500 - $5,000", "$5,000 - $10,000", "$10,000+"}
	brandingBudgetMidpoints = map[string]int{
		"Under $500":       250,
		"$500 - $1,500":    1000,
		"$1,500 - $5,000":  3250,
		"$5,000 - $10,000": 7500,
		"$10,000+":         15000,
	}
	brandingHighValueRanges = []string{"$5,000 - $10,000", "$10,000+"}
)

const (
	brandingComplexityThreshold = 3
	brandingCustomStyle         = "Custom Style"
)

type BrandingRequest struct {
	Lead                 `bson:",inline"`
	BusinessName         string       `bson:"businessName" json:"businessName"`
	Industry             string       `bson:"industry" json:"industry"`
	BrandDescription     string       `bson:"brandDescription" json:"brandDescription"`
	DesignType           []string     `bson:"designType" json:"designType"`
	DeliverablesRequired []string     `bson:"deliverablesRequired" json:"deliverablesRequired"`
	BrandStyle           string       `bson:"brandStyle" json:"brandStyle"`
	HasExistingBranding  bool         `bson:"hasExistingBranding" json:"hasExistingBranding"`
	Attachments          []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	BudgetRange          string       `bson:"budgetRange" json:"budgetRange"`
	Timeline             string       `bson:"timeline" json:"timeline"`
	UrgencyLevel         string       `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r BrandingRequest) WithDerived() BrandingRequest {
	r.EstimatedBudget = estimateBudget(brandingBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(brandingHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.DesignType, brandingComplexityThreshold) ||
		r.BrandStyle == brandingCustomStyle
	return r
}

type BrandingPayload struct {
	ContactPayload
	BusinessName         string       `json:"businessName" validate:"required,max=200"`
	Industry             string       `json:"industry" validate:"omitempty,max=100"`
	BrandDescription     string       `json:"brandDescription" validate:"required,max=5000"`
	DesignType           []string     `json:"designType" validate:"required,min=1,dive,enum=brandingDesignType"`
	DeliverablesRequired []string     `json:"deliverablesRequired" validate:"required,min=1,dive,enum=brandingDeliverable"`
	BrandStyle           string       `json:"brandStyle" validate:"required,enum=brandingStyle"`
	HasExistingBranding  bool         `json:"hasExistingBranding"`
	Attachments          []Attachment `json:"attachments" validate:"omitempty,dive"`
	BudgetRange          string       `json:"budgetRange" validate:"required,enum=brandingBudgetRange"`
	Timeline             string       `json:"timeline" validate:"required,enum=brandingTimeline"`
	UrgencyLevel         string       `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p BrandingPayload) Document(id string, now time.Time) BrandingRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return BrandingRequest{
		Lead:                 p.ContactPayload.lead(id, now),
		BusinessName:         trimmed(p.BusinessName),
		Industry:             trimmed(p.Industry),
		BrandDescription:     trimmed(p.BrandDescription),
		DesignType:           trimmedAll(p.DesignType),
		DeliverablesRequired: trimmedAll(p.DeliverablesRequired),
		BrandStyle:           trimmed(p.BrandStyle),
		HasExistingBranding:  p.HasExistingBranding,
		Attachments:          stampAttachments(p.Attachments, now),
		BudgetRange:          trimmed(p.BudgetRange),
		Timeline:             trimmed(p.Timeline),
		UrgencyLevel:         urgency,
	}
}

func newBrandingHandler(col *mongo.Collection, deps Deps) *Handler[BrandingPayload, BrandingRequest] {
	def := Definition{
		Slug:  "branding-requests",
		Label: "Branding",
		Filters: baseFilters(map[string]FilterKind{
			"designType":   FilterSet,
			"brandStyle":   FilterExact,
			"budgetRange":  FilterExact,
			"urgencyLevel": FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[BrandingPayload, BrandingRequest](def, NewRepository[BrandingRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
