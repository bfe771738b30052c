package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	websiteTypes    = []string{"Business", "E-commerce", "Portfolio", "Blog", "Landing Page", "Web Application", "Other"}
	websiteFeatures = []string{
		"Contact Form", "Live Chat", "Blog", "Newsletter", "SEO Optimization",
		"Analytics Integration", "Payment Gateway", "User Accounts", "Booking System",
		"Multilingual Support", "Admin Dashboard", "API Integration",
	}
	websitePageCounts        = []string{"1-5", "6-10", "11-20", "20+"}
	websiteDesignPreferences = []string{"Template Based", "Semi Custom", "Fully Custom"}
	websiteTimelines         = []string{TimelineASAP, "1-2 Weeks", "1 Month", "2-3 Months", "Flexible"}

	websiteBudgetRanges    = []string{"Under $1,000", "$1,000 - $5,000", "$5,000 - $10,000", "$10,000 - $25,000", "$25,000+"}
	websiteBudgetMidpoints = map[string]int{
		"Under $1,000":      500,
		"$1,000 - $5,000":   3000,
		"$5,000 - $10,000":  7500,
		"$10,000 - $25,000": 17500,
		"$25,000+":          35000,
	}
	websiteHighValueRanges = []string{"$10,000 - $25,000", "$25,000+"}
)

const (
	websiteComplexityThreshold = 5
	websiteFullyCustom         = "Fully Custom"
)

type WebsiteRequest struct {
	Lead               `bson:",inline"`
	ProjectName        string   `bson:"projectName" json:"projectName"`
	ProjectDescription string   `bson:"projectDescription" json:"projectDescription"`
	WebsiteType        string   `bson:"websiteType" json:"websiteType"`
	Features           []string `bson:"features" json:"features"`
	PageCount          string   `bson:"pageCount" json:"pageCount"`
	DesignPreference   string   `bson:"designPreference" json:"designPreference"`
	NeedsHosting       bool     `bson:"needsHosting" json:"needsHosting"`
	NeedsDomain        bool     `bson:"needsDomain" json:"needsDomain"`
	NeedsMaintenance   bool     `bson:"needsMaintenance" json:"needsMaintenance"`
	BudgetRange        string   `bson:"budgetRange" json:"budgetRange"`
	Timeline           string   `bson:"timeline" json:"timeline"`
	UrgencyLevel       string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r WebsiteRequest) WithDerived() WebsiteRequest {
	r.EstimatedBudget = estimateBudget(websiteBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(websiteHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.Features, websiteComplexityThreshold) ||
		r.DesignPreference == websiteFullyCustom
	return r
}

type WebsitePayload struct {
	ContactPayload
	ProjectName        string   `json:"projectName" validate:"required,max=200"`
	ProjectDescription string   `json:"projectDescription" validate:"required,max=5000"`
	WebsiteType        string   `json:"websiteType" validate:"required,enum=websiteType"`
	Features           []string `json:"features" validate:"required,min=1,dive,enum=websiteFeature"`
	PageCount          string   `json:"pageCount" validate:"required,enum=websitePageCount"`
	DesignPreference   string   `json:"designPreference" validate:"required,enum=websiteDesignPreference"`
	NeedsHosting       bool     `json:"needsHosting"`
	NeedsDomain        bool     `json:"needsDomain"`
	NeedsMaintenance   *bool    `json:"needsMaintenance"`
	BudgetRange        string   `json:"budgetRange" validate:"required,enum=websiteBudgetRange"`
	Timeline           string   `json:"timeline" validate:"required,enum=websiteTimeline"`
	UrgencyLevel       string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p WebsitePayload) Document(id string, now time.Time) WebsiteRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return WebsiteRequest{
		Lead:               p.ContactPayload.lead(id, now),
		ProjectName:        trimmed(p.ProjectName),
		ProjectDescription: trimmed(p.ProjectDescription),
		WebsiteType:        trimmed(p.WebsiteType),
		Features:           trimmedAll(p.Features),
		PageCount:          trimmed(p.PageCount),
		DesignPreference:   trimmed(p.DesignPreference),
		NeedsHosting:       p.NeedsHosting,
		NeedsDomain:        p.NeedsDomain,
		NeedsMaintenance:   boolDefault(p.NeedsMaintenance, true),
		BudgetRange:        trimmed(p.BudgetRange),
		Timeline:           trimmed(p.Timeline),
		UrgencyLevel:       urgency,
	}
}

func newWebsiteHandler(col *mongo.Collection, deps Deps) *Handler[WebsitePayload, WebsiteRequest] {
	def := Definition{
		Slug:  "website-requests",
		Label: "Website",
		Filters: baseFilters(map[string]FilterKind{
			"websiteType":      FilterExact,
			"features":         FilterSet,
			"designPreference": FilterExact,
			"budgetRange":      FilterExact,
			"urgencyLevel":     FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[WebsitePayload, WebsiteRequest](def, NewRepository[WebsiteRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
