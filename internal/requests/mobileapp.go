package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	mobileAppPlatforms = []string{"iOS", "Android", "Web (PWA)"}
	mobileAppTypes     = []string{"Native", "Hybrid", "Cross-Platform"}
	mobileAppFeatures  = []string{
		"Push Notifications", "In-App Purchases", "Offline Mode", "GPS/Maps",
		"Camera Integration", "Social Login", "Chat/Messaging", "Payment Integration",
		"Analytics", "AR Features", "Video Streaming", "Biometric Auth",
	}
	mobileAppDesignPreferences = []string{"Template Based", "Semi Custom", "Fully Custom"}
	mobileAppTimelines         = []string{TimelineASAP, "1 Month", "2-3 Months", "3-6 Months", "Flexible"}

	mobileAppBudgetRanges    = []string{"Under $5,000", "$5,000 - $15,000", "$15,000 - $30,000", "$30,000 - $75,000", "$75,000+"}
	mobileAppBudgetMidpoints = map[string]int{
		"Under $5,000":      2500,
		"$5,000 - $15,000":  10000,
		"$15,000 - $30,000": 22500,
		"$30,000 - $75,000": 52500,
		"$75,000+":          100000,
	}
	mobileAppHighValueRanges = []string{"$30,000 - $75,000", "$75,000+"}
)

const (
	mobileAppComplexityThreshold = 8
	mobileAppFullyCustom         = "Fully Custom"
)

type MobileAppRequest struct {
	Lead             `bson:",inline"`
	AppName          string   `bson:"appName" json:"appName"`
	AppDescription   string   `bson:"appDescription" json:"appDescription"`
	Platforms        []string `bson:"platforms" json:"platforms"`
	AppType          string   `bson:"appType" json:"appType"`
	Features         []string `bson:"features" json:"features"`
	DesignPreference string   `bson:"designPreference" json:"designPreference"`
	HasExistingAPI   bool     `bson:"hasExistingApi" json:"hasExistingApi"`
	BudgetRange      string   `bson:"budgetRange" json:"budgetRange"`
	Timeline         string   `bson:"timeline" json:"timeline"`
	UrgencyLevel     string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r MobileAppRequest) WithDerived() MobileAppRequest {
	r.EstimatedBudget = estimateBudget(mobileAppBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(mobileAppHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.Features, mobileAppComplexityThreshold) ||
		r.DesignPreference == mobileAppFullyCustom
	return r
}

type MobileAppPayload struct {
	ContactPayload
	AppName          string   `json:"appName" validate:"required,max=200"`
	AppDescription   string   `json:"appDescription" validate:"required,max=5000"`
	Platforms        []string `json:"platforms" validate:"required,min=1,dive,enum=mobileAppPlatform"`
	AppType          string   `json:"appType" validate:"required,enum=mobileAppType"`
	Features         []string `json:"features" validate:"required,min=1,dive,enum=mobileAppFeature"`
	DesignPreference string   `json:"designPreference" validate:"required,enum=mobileAppDesignPreference"`
	HasExistingAPI   bool     `json:"hasExistingApi"`
	BudgetRange      string   `json:"budgetRange" validate:"required,enum=mobileAppBudgetRange"`
	Timeline         string   `json:"timeline" validate:"required,enum=mobileAppTimeline"`
	UrgencyLevel     string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p MobileAppPayload) Document(id string, now time.Time) MobileAppRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return MobileAppRequest{
		Lead:             p.ContactPayload.lead(id, now),
		AppName:          trimmed(p.AppName),
		AppDescription:   trimmed(p.AppDescription),
		Platforms:        trimmedAll(p.Platforms),
		AppType:          trimmed(p.AppType),
		Features:         trimmedAll(p.Features),
		DesignPreference: trimmed(p.DesignPreference),
		HasExistingAPI:   p.HasExistingAPI,
		BudgetRange:      trimmed(p.BudgetRange),
		Timeline:         trimmed(p.Timeline),
		UrgencyLevel:     urgency,
	}
}

func newMobileAppHandler(col *mongo.Collection, deps Deps) *Handler[MobileAppPayload, MobileAppRequest] {
	def := Definition{
		Slug:  "mobile-app-requests",
		Label: "Mobile App",
		Filters: baseFilters(map[string]FilterKind{
			"appType":      FilterExact,
			"platforms":    FilterSet,
			"features":     FilterSet,
			"budgetRange":  FilterExact,
			"urgencyLevel": FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[MobileAppPayload, MobileAppRequest](def, NewRepository[MobileAppRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
