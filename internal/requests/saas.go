package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	saasTypes        = []string{"B2B", "B2C", "B2B2C", "Internal Tool"}
	saasCoreFeatures = []string{
		"User Authentication", "Subscription Billing", "Multi-Tenancy", "Admin Dashboard",
		"API Access", "Webhooks", "File Storage", "Team Collaboration", "Notifications",
		"Analytics Dashboard", "Audit Logs", "Role-Based Access", "Integrations Marketplace",
		"White Labeling",
	}
	saasTechStacks    = []string{"No Preference", "MERN", "Go + React", "Python + Vue", "Fully Custom"}
	saasExpectedUsers = []string{"Under 100", "100-1,000", "1,000-10,000", "10,000+"}
	saasTimelines     = []string{TimelineASAP, "1-3 Months", "3-6 Months", "6-12 Months", "Flexible"}

	saasBudgetRanges    = []string{"Under $10,000", "$10,000 - $25,000", "$25,000 - $50,000", "$50,000 - $100,000", "$100,000+"}
	saasBudgetMidpoints = map[string]int{
		"Under $10,000":      5000,
		"$10,000 - $25,000":  17500,
		"$25,000 - $50,000":  37500,
		"$50,000 - $100,000": 75000,
		"$100,000+":          150000,
	}
	saasHighValueRanges = []string{"$50,000 - $100,000", "$100,000+"}
)

const (
	saasComplexityThreshold = 10
	saasFullyCustom         = "Fully Custom"
)

type SaaSRequest struct {
	Lead               `bson:",inline"`
	ProductName        string   `bson:"productName" json:"productName"`
	ProductDescription string   `bson:"productDescription" json:"productDescription"`
	SaaSType           string   `bson:"saasType" json:"saasType"`
	CoreFeatures       []string `bson:"coreFeatures" json:"coreFeatures"`
	PreferredTechStack string   `bson:"preferredTechStack" json:"preferredTechStack"`
	ExpectedUsers      string   `bson:"expectedUsers" json:"expectedUsers"`
	NeedsMVPFirst      bool     `bson:"needsMvpFirst" json:"needsMvpFirst"`
	BudgetRange        string   `bson:"budgetRange" json:"budgetRange"`
	Timeline           string   `bson:"timeline" json:"timeline"`
	UrgencyLevel       string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexProject   bool `bson:"-" json:"isComplexProject"`
}

func (r SaaSRequest) WithDerived() SaaSRequest {
	r.EstimatedBudget = estimateBudget(saasBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(saasHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexProject = exceedsThreshold(r.CoreFeatures, saasComplexityThreshold) ||
		r.PreferredTechStack == saasFullyCustom
	return r
}

type SaaSPayload struct {
	ContactPayload
	ProductName        string   `json:"productName" validate:"required,max=200"`
	ProductDescription string   `json:"productDescription" validate:"required,max=5000"`
	SaaSType           string   `json:"saasType" validate:"required,enum=saasType"`
	CoreFeatures       []string `json:"coreFeatures" validate:"required,min=1,dive,enum=saasCoreFeature"`
	PreferredTechStack string   `json:"preferredTechStack" validate:"required,enum=saasTechStack"`
	ExpectedUsers      string   `json:"expectedUsers" validate:"required,enum=saasExpectedUsers"`
	NeedsMVPFirst      bool     `json:"needsMvpFirst"`
	BudgetRange        string   `json:"budgetRange" validate:"required,enum=saasBudgetRange"`
	Timeline           string   `json:"timeline" validate:"required,enum=saasTimeline"`
	UrgencyLevel       string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p SaaSPayload) Document(id string, now time.Time) SaaSRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return SaaSRequest{
		Lead:               p.ContactPayload.lead(id, now),
		ProductName:        trimmed(p.ProductName),
		ProductDescription: trimmed(p.ProductDescription),
		SaaSType:           trimmed(p.SaaSType),
		CoreFeatures:       trimmedAll(p.CoreFeatures),
		PreferredTechStack: trimmed(p.PreferredTechStack),
		ExpectedUsers:      trimmed(p.ExpectedUsers),
		NeedsMVPFirst:      p.NeedsMVPFirst,
		BudgetRange:        trimmed(p.BudgetRange),
		Timeline:           trimmed(p.Timeline),
		UrgencyLevel:       urgency,
	}
}

func newSaaSHandler(col *mongo.Collection, deps Deps) *Handler[SaaSPayload, SaaSRequest] {
	def := Definition{
		Slug:  "saas-requests",
		Label: "SaaS",
		Filters: baseFilters(map[string]FilterKind{
			"saasType":           FilterExact,
			"coreFeatures":       FilterSet,
			"preferredTechStack": FilterExact,
			"expectedUsers":      FilterExact,
			"budgetRange":        FilterExact,
			"urgencyLevel":       FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[SaaSPayload, SaaSRequest](def, NewRepository[SaaSRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
