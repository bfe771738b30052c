package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	hrmsCompanySizes = []string{"1-50", "51-200", "201-1,000", "1,000+"}
	hrmsModules      = []string{
		"Payroll", "Attendance", "Recruitment", "Performance Reviews",
		"Employee Self-Service", "Leave Management", "Training", "Benefits Administration",
		"Onboarding", "Time Tracking",
	}
	hrmsDeploymentTypes = []string{"Cloud", "On-Premise", "Hybrid", "Fully Custom"}
	hrmsTimelines       = []string{TimelineASAP, "1 Month", "2-3 Months", "3-6 Months", "Flexible"}

	hrmsBudgetRanges    = []string{"Under $3,000", "$3,000 - $10,000", "$10,000 - $25,000", "$25,000 - $50,000", "$50,000+"}
	hrmsBudgetMidpoints = map[string]int{
		"Under $3,000":      1500,
		"$3,000 - $10,000":  6500,
		"$10,000 - $25,000": 17500,
		"$25,000 - $50,000": 37500,
		"$50,000+":          65000,
	}
	hrmsHighValueRanges = []string{"$25,000 - $50,000", "$50,000+"}
)

const (
	hrmsComplexityThreshold = 5
	hrmsFullyCustom         = "Fully Custom"
)

type HRMSRequest struct {
	Lead            `bson:",inline"`
	CompanyName     string   `bson:"companyName" json:"companyName"`
	CompanySize     string   `bson:"companySize" json:"companySize"`
	ModulesRequired []string `bson:"modulesRequired" json:"modulesRequired"`
	DeploymentType  string   `bson:"deploymentType" json:"deploymentType"`
	PayrollRegions  string   `bson:"payrollRegions,omitempty" json:"payrollRegions,omitempty"`
	BudgetRange     string   `bson:"budgetRange" json:"budgetRange"`
	Timeline        string   `bson:"timeline" json:"timeline"`
	Priority        string   `bson:"priority" json:"priority"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r HRMSRequest) WithDerived() HRMSRequest {
	r.EstimatedBudget = estimateBudget(hrmsBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(hrmsHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.Priority, r.Timeline)
	r.IsComplexRequest = exceedsThreshold(r.ModulesRequired, hrmsComplexityThreshold) ||
		r.DeploymentType == hrmsFullyCustom
	return r
}

type HRMSPayload struct {
	ContactPayload
	CompanyName     string   `json:"companyName" validate:"required,max=200"`
	CompanySize     string   `json:"companySize" validate:"required,enum=hrmsCompanySize"`
	ModulesRequired []string `json:"modulesRequired" validate:"required,min=1,dive,enum=hrmsModule"`
	DeploymentType  string   `json:"deploymentType" validate:"required,enum=hrmsDeploymentType"`
	PayrollRegions  string   `json:"payrollRegions" validate:"omitempty,max=500"`
	BudgetRange     string   `json:"budgetRange" validate:"required,enum=hrmsBudgetRange"`
	Timeline        string   `json:"timeline" validate:"required,enum=hrmsTimeline"`
	Priority        string   `json:"priority" validate:"omitempty,enum=urgencyLevel"`
}

func (p HRMSPayload) Document(id string, now time.Time) HRMSRequest {
	priority := trimmed(p.Priority)
	if priority == "" {
		priority = UrgencyMedium
	}
	return HRMSRequest{
		Lead:            p.ContactPayload.lead(id, now),
		CompanyName:     trimmed(p.CompanyName),
		CompanySize:     trimmed(p.CompanySize),
		ModulesRequired: trimmedAll(p.ModulesRequired),
		DeploymentType:  trimmed(p.DeploymentType),
		PayrollRegions:  trimmed(p.PayrollRegions),
		BudgetRange:     trimmed(p.BudgetRange),
		Timeline:        trimmed(p.Timeline),
		Priority:        priority,
	}
}

func newHRMSHandler(col *mongo.Collection, deps Deps) *Handler[HRMSPayload, HRMSRequest] {
	def := Definition{
		Slug:  "hrms-requests",
		Label: "HRMS",
		Filters: baseFilters(map[string]FilterKind{
			"companySize":     FilterExact,
			"modulesRequired": FilterSet,
			"deploymentType":  FilterExact,
			"budgetRange":     FilterExact,
			"priority":        FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "priority"),
	}
	svc := NewService[HRMSPayload, HRMSRequest](def, NewRepository[HRMSRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
