package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	lmsTypes = []string{
		"Corporate Training", "Educational Institution", "Online Course Marketplace",
		"Certification Body", "Internal Training",
	}
	lmsFeatures = []string{
		"Course Builder", "Video Hosting", "Live Classes", "Quizzes & Assessments",
		"Certificates", "Discussion Forums", "Gamification", "SCORM Compliance",
		"Progress Tracking", "Mobile App", "E-commerce Integration", "AI Recommendations",
	}
	lmsUserCounts = []string{"Under 100", "100-500", "500-2,000", "2,000-10,000", "10,000+"}
	lmsTimelines  = []string{TimelineASAP, "1 Month", "2-3 Months", "3-6 Months", "Flexible"}

	lmsBudgetRanges    = []string{"Under $5,000", "$5,000 - $15,000", "$15,000 - $40,000", "$40,000 - $80,000", "$80,000+"}
	lmsBudgetMidpoints = map[string]int{
		"Under $5,000":      2500,
		"$5,000 - $15,000":  10000,
		"$15,000 - $40,000": 27500,
		"$40,000 - $80,000": 60000,
		"$80,000+":          100000,
	}
	lmsHighValueRanges = []string{"$40,000 - $80,000", "$80,000+"}

	// These LMS flavors are institutional builds regardless of how few
	// features the form ticks.
	lmsComplexTypes = []string{"Educational Institution", "Online Course Marketplace"}

	lmsEnterpriseUserCounts = []string{"2,000-10,000", "10,000+"}
)

const lmsComplexityThreshold = 8

type LMSRequest struct {
	Lead             `bson:",inline"`
	OrganizationName string   `bson:"organizationName" json:"organizationName"`
	LMSType          string   `bson:"lmsType" json:"lmsType"`
	Features         []string `bson:"features" json:"features"`
	NumberOfUsers    string   `bson:"numberOfUsers" json:"numberOfUsers"`
	ContentMigration bool     `bson:"contentMigration" json:"contentMigration"`
	BudgetRange      string   `bson:"budgetRange" json:"budgetRange"`
	Timeline         string   `bson:"timeline" json:"timeline"`
	UrgencyLevel     string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget     int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject  bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest     bool `bson:"-" json:"isUrgentRequest"`
	IsComplexProject    bool `bson:"-" json:"isComplexProject"`
	IsEnterpriseProject bool `bson:"-" json:"isEnterpriseProject"`
}

func (r LMSRequest) WithDerived() LMSRequest {
	r.EstimatedBudget = estimateBudget(lmsBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(lmsHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.Timeline)
	r.IsComplexProject = exceedsThreshold(r.Features, lmsComplexityThreshold) ||
		oneOf(r.LMSType, lmsComplexTypes...)
	r.IsEnterpriseProject = oneOf(r.NumberOfUsers, lmsEnterpriseUserCounts...) ||
		isHighValue(lmsHighValueRanges, r.BudgetRange)
	return r
}

type LMSPayload struct {
	ContactPayload
	OrganizationName string   `json:"organizationName" validate:"required,max=200"`
	LMSType          string   `json:"lmsType" validate:"required,enum=lmsType"`
	Features         []string `json:"features" validate:"required,min=1,dive,enum=lmsFeature"`
	NumberOfUsers    string   `json:"numberOfUsers" validate:"required,enum=lmsUserCount"`
	ContentMigration bool     `json:"contentMigration"`
	BudgetRange      string   `json:"budgetRange" validate:"required,enum=lmsBudgetRange"`
	Timeline         string   `json:"timeline" validate:"required,enum=lmsTimeline"`
	UrgencyLevel     string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p LMSPayload) Document(id string, now time.Time) LMSRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return LMSRequest{
		Lead:             p.ContactPayload.lead(id, now),
		OrganizationName: trimmed(p.OrganizationName),
		LMSType:          trimmed(p.LMSType),
		Features:         trimmedAll(p.Features),
		NumberOfUsers:    trimmed(p.NumberOfUsers),
		ContentMigration: p.ContentMigration,
		BudgetRange:      trimmed(p.BudgetRange),
		Timeline:         trimmed(p.Timeline),
		UrgencyLevel:     urgency,
	}
}

func newLMSHandler(col *mongo.Collection, deps Deps) *Handler[LMSPayload, LMSRequest] {
	def := Definition{
		Slug:  "lms-requests",
		Label: "LMS",
		Filters: baseFilters(map[string]FilterKind{
			"lmsType":       FilterExact,
			"features":      FilterSet,
			"numberOfUsers": FilterExact,
			"budgetRange":   FilterExact,
			"urgencyLevel":  FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[LMSPayload, LMSRequest](def, NewRepository[LMSRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
