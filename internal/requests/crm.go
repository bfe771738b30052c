package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	crmTypes   = []string{"Sales CRM", "Marketing CRM", "Support CRM", "All-in-One", "Fully Custom"}
	crmModules = []string{
		"Lead Management", "Contact Management", "Deal Pipeline", "Email Campaigns",
		"Reporting & Analytics", "Task Management", "Call Tracking", "Workflow Automation",
		"Customer Support", "Inventory",
	}
	crmTeamSizes    = []string{"1-10", "11-50", "51-200", "200+"}
	crmIntegrations = []string{"Email", "Calendar", "Accounting", "E-commerce", "Telephony", "Social Media"}
	crmTimelines    = []string{TimelineASAP, "1 Month", "2-3 Months", "3-6 Months", "Flexible"}

	crmBudgetRanges    = []string{"Under $2,000", "$2,000 - $10,000", "$10,000 - $30,000", "$30,000 - $60,000", "$60,000+"}
	crmBudgetMidpoints = map[string]int{
		"Under $2,000":      1000,
		"$2,000 - $10,000":  6000,
		"$10,000 - $30,000": 20000,
		"$30,000 - $60,000": 45000,
		"$60,000+":          80000,
	}
	crmHighValueRanges = []string{"$30,000 - $60,000", "$60,000+"}
)

const (
	crmComplexityThreshold = 5
	crmFullyCustom         = "Fully Custom"
)

type CRMRequest struct {
	Lead                `bson:",inline"`
	CompanyName         string   `bson:"companyName" json:"companyName"`
	BusinessDescription string   `bson:"businessDescription" json:"businessDescription"`
	CRMType             string   `bson:"crmType" json:"crmType"`
	ModulesRequired     []string `bson:"modulesRequired" json:"modulesRequired"`
	TeamSize            string   `bson:"teamSize" json:"teamSize"`
	Integrations        []string `bson:"integrations,omitempty" json:"integrations,omitempty"`
	BudgetRange         string   `bson:"budgetRange" json:"budgetRange"`
	Timeline            string   `bson:"timeline" json:"timeline"`
	Priority            string   `bson:"priority" json:"priority"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r CRMRequest) WithDerived() CRMRequest {
	r.EstimatedBudget = estimateBudget(crmBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(crmHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.Priority, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.ModulesRequired, crmComplexityThreshold) ||
		r.CRMType == crmFullyCustom
	return r
}

type CRMPayload struct {
	ContactPayload
	CompanyName         string   `json:"companyName" validate:"required,max=200"`
	BusinessDescription string   `json:"businessDescription" validate:"required,max=5000"`
	CRMType             string   `json:"crmType" validate:"required,enum=crmType"`
	ModulesRequired     []string `json:"modulesRequired" validate:"required,min=1,dive,enum=crmModule"`
	TeamSize            string   `json:"teamSize" validate:"required,enum=crmTeamSize"`
	Integrations        []string `json:"integrations" validate:"omitempty,dive,enum=crmIntegration"`
	BudgetRange         string   `json:"budgetRange" validate:"required,enum=crmBudgetRange"`
	Timeline            string   `json:"timeline" validate:"required,enum=crmTimeline"`
	Priority            string   `json:"priority" validate:"omitempty,enum=urgencyLevel"`
}

func (p CRMPayload) Document(id string, now time.Time) CRMRequest {
	priority := trimmed(p.Priority)
	if priority == "" {
		priority = UrgencyMedium
	}
	return CRMRequest{
		Lead:                p.ContactPayload.lead(id, now),
		CompanyName:         trimmed(p.CompanyName),
		BusinessDescription: trimmed(p.BusinessDescription),
		CRMType:             trimmed(p.CRMType),
		ModulesRequired:     trimmedAll(p.ModulesRequired),
		TeamSize:            trimmed(p.TeamSize),
		Integrations:        trimmedAll(p.Integrations),
		BudgetRange:         trimmed(p.BudgetRange),
		Timeline:            trimmed(p.Timeline),
		Priority:            priority,
	}
}

func newCRMHandler(col *mongo.Collection, deps Deps) *Handler[CRMPayload, CRMRequest] {
	def := Definition{
		Slug:  "crm-requests",
		Label: "CRM",
		Filters: baseFilters(map[string]FilterKind{
			"crmType":         FilterExact,
			"modulesRequired": FilterSet,
			"teamSize":        FilterExact,
			"budgetRange":     FilterExact,
			"priority":        FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "priority"),
	}
	svc := NewService[CRMPayload, CRMRequest](def, NewRepository[CRMRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
