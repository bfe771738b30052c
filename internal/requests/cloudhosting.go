package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	cloudHostingTypes    = []string{"Shared", "VPS", "Dedicated", "Managed Cloud", "Serverless"}
	cloudHostingServices = []string{
		"Compute", "Storage", "CDN", "Database", "Load Balancing",
		"Backup & Recovery", "Monitoring", "CI/CD Pipeline", "Container Orchestration",
	}
	cloudHostingProviders = []string{"AWS", "Google Cloud", "Azure", "DigitalOcean", "No Preference"}
	cloudHostingTraffic   = []string{"Under 10k visits/mo", "10k-100k visits/mo", "100k-1M visits/mo", "1M+ visits/mo"}
	cloudHostingTimelines = []string{TimelineASAP, "2 Weeks", "1 Month", "Flexible"}

	cloudHostingBudgetRanges    = []string{"Under $100/mo", "$100 - $500/mo", "$500 - $2,000/mo", "$2,000 - $10,000/mo", "$10,000+/mo"}
	cloudHostingBudgetMidpoints = map[string]int{
		"Under $100/mo":       50,
		"$100 - $500/mo":      300,
		"$500 - $2,000/mo":    1250,
		"$2,000 - $10,000/mo": 6000,
		"$10,000+/mo":         15000,
	}
	cloudHostingHighValueRanges = []string{"$2,000 - $10,000/mo", "$10,000+/mo"}
)

const (
	cloudHostingComplexityThreshold = 3
	cloudHostingManagedCloud        = "Managed Cloud"
)

type CloudHostingRequest struct {
	Lead               `bson:",inline"`
	CompanyName        string   `bson:"companyName" json:"companyName"`
	ProjectDescription string   `bson:"projectDescription" json:"projectDescription"`
	HostingType        string   `bson:"hostingType" json:"hostingType"`
	ServicesRequired   []string `bson:"servicesRequired" json:"servicesRequired"`
	CloudProvider      string   `bson:"cloudProvider" json:"cloudProvider"`
	ExpectedTraffic    string   `bson:"expectedTraffic" json:"expectedTraffic"`
	MigrationNeeded    bool     `bson:"migrationNeeded" json:"migrationNeeded"`
	BudgetRange        string   `bson:"budgetRange" json:"budgetRange"`
	DesiredTimeline    string   `bson:"desiredTimeline" json:"desiredTimeline"`
	UrgencyLevel       string   `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r CloudHostingRequest) WithDerived() CloudHostingRequest {
	r.EstimatedBudget = estimateBudget(cloudHostingBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(cloudHostingHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.DesiredTimeline)
	r.IsComplexRequest = exceedsThreshold(r.ServicesRequired, cloudHostingComplexityThreshold) ||
		r.HostingType == cloudHostingManagedCloud
	return r
}

type CloudHostingPayload struct {
	ContactPayload
	CompanyName        string   `json:"companyName" validate:"required,max=200"`
	ProjectDescription string   `json:"projectDescription" validate:"required,max=5000"`
	HostingType        string   `json:"hostingType" validate:"required,enum=cloudHostingType"`
	ServicesRequired   []string `json:"servicesRequired" validate:"required,min=1,dive,enum=cloudHostingService"`
	CloudProvider      string   `json:"cloudProvider" validate:"required,enum=cloudHostingProvider"`
	ExpectedTraffic    string   `json:"expectedTraffic" validate:"required,enum=cloudHostingTraffic"`
	MigrationNeeded    bool     `json:"migrationNeeded"`
	BudgetRange        string   `json:"budgetRange" validate:"required,enum=cloudHostingBudgetRange"`
	DesiredTimeline    string   `json:"desiredTimeline" validate:"required,enum=cloudHostingTimeline"`
	UrgencyLevel       string   `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p CloudHostingPayload) Document(id string, now time.Time) CloudHostingRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return CloudHostingRequest{
		Lead:               p.ContactPayload.lead(id, now),
		CompanyName:        trimmed(p.CompanyName),
		ProjectDescription: trimmed(p.ProjectDescription),
		HostingType:        trimmed(p.HostingType),
		ServicesRequired:   trimmedAll(p.ServicesRequired),
		CloudProvider:      trimmed(p.CloudProvider),
		ExpectedTraffic:    trimmed(p.ExpectedTraffic),
		MigrationNeeded:    p.MigrationNeeded,
		BudgetRange:        trimmed(p.BudgetRange),
		DesiredTimeline:    trimmed(p.DesiredTimeline),
		UrgencyLevel:       urgency,
	}
}

func newCloudHostingHandler(col *mongo.Collection, deps Deps) *Handler[CloudHostingPayload, CloudHostingRequest] {
	def := Definition{
		Slug:  "cloud-hosting-requests",
		Label: "Cloud Hosting",
		Filters: baseFilters(map[string]FilterKind{
			"hostingType":      FilterExact,
			"servicesRequired": FilterSet,
			"cloudProvider":    FilterExact,
			"budgetRange":      FilterExact,
			"urgencyLevel":     FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[CloudHostingPayload, CloudHostingRequest](def, NewRepository[CloudHostingRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
