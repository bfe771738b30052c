package requests

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	aiContentTypes = []string{
		"Blog Articles", "Product Descriptions", "Social Media Posts", "Email Campaigns",
		"Technical Documentation", "Ad Copy", "Video Scripts", "Website Copy",
	}
	aiIntegrationLevels = []string{
		"Human-Written with AI Assistance", "AI-Drafted with Human Editing",
		"Fully Automated Pipeline",
	}
	aiMonthlyVolumes = []string{
		"Under 10 pieces", "10-50 pieces", "50-200 pieces", "200+ pieces",
	}
	aiTimelines = []string{TimelineASAP, "Within 2 Weeks", "Within a Month", "Flexible"}

	aiBudgetRanges    = []string{"Under $1,000/mo", "$1,000 - $3,000/mo", "$3,000 - $8,000/mo", "$8,000+/mo"}
	aiBudgetMidpoints = map[string]int{
		"Under $1,000/mo":    500,
		"$1,000 - $3,000/mo": 2000,
		"$3,000 - $8,000/mo": 5500,
		"$8,000+/mo":         12000,
	}
	aiHighValueRanges = []string{"$3,000 - $8,000/mo", "$8,000+/mo"}
)

const (
	aiComplexityThreshold = 5
	aiFullyAutomated      = "Fully Automated Pipeline"
)

type AIContentRequest struct {
	Lead               `bson:",inline"`
	BusinessName       string       `bson:"businessName" json:"businessName"`
	Industry           string       `bson:"industry" json:"industry"`
	ContentTypes       []string     `bson:"contentTypes" json:"contentTypes"`
	AIIntegrationLevel string       `bson:"aiIntegrationLevel" json:"aiIntegrationLevel"`
	MonthlyVolume      string       `bson:"monthlyVolume" json:"monthlyVolume"`
	ToneOfVoice        string       `bson:"toneOfVoice,omitempty" json:"toneOfVoice,omitempty"`
	SampleDocuments    []Attachment `bson:"sampleDocuments,omitempty" json:"sampleDocuments,omitempty"`
	BudgetRange        string       `bson:"budgetRange" json:"budgetRange"`
	DesiredTimeline    string       `bson:"desiredTimeline" json:"desiredTimeline"`
	UrgencyLevel       string       `bson:"urgencyLevel" json:"urgencyLevel"`

	EstimatedBudget    int  `bson:"-" json:"estimatedBudget"`
	IsHighValueProject bool `bson:"-" json:"isHighValueProject"`
	IsUrgentRequest    bool `bson:"-" json:"isUrgentRequest"`
	IsComplexRequest   bool `bson:"-" json:"isComplexRequest"`
}

func (r AIContentRequest) WithDerived() AIContentRequest {
	r.EstimatedBudget = estimateBudget(aiBudgetMidpoints, r.BudgetRange)
	r.IsHighValueProject = isHighValue(aiHighValueRanges, r.BudgetRange)
	r.IsUrgentRequest = isUrgent(r.UrgencyLevel, r.DesiredTimeline)
	r.IsComplexRequest = exceedsThreshold(r.ContentTypes, aiComplexityThreshold) ||
		r.AIIntegrationLevel == aiFullyAutomated
	return r
}

type AIContentPayload struct {
	ContactPayload
	BusinessName       string       `json:"businessName" validate:"required,max=200"`
	Industry           string       `json:"industry" validate:"required,max=100"`
	ContentTypes       []string     `json:"contentTypes" validate:"required,min=1,dive,enum=aiContentType"`
	AIIntegrationLevel string       `json:"aiIntegrationLevel" validate:"required,enum=aiIntegrationLevel"`
	MonthlyVolume      string       `json:"monthlyVolume" validate:"required,enum=aiMonthlyVolume"`
	ToneOfVoice        string       `json:"toneOfVoice" validate:"omitempty,max=200"`
	SampleDocuments    []Attachment `json:"sampleDocuments" validate:"omitempty,dive"`
	BudgetRange        string       `json:"budgetRange" validate:"required,enum=aiBudgetRange"`
	DesiredTimeline    string       `json:"desiredTimeline" validate:"required,enum=aiTimeline"`
	UrgencyLevel       string       `json:"urgencyLevel" validate:"omitempty,enum=urgencyLevel"`
}

func (p AIContentPayload) Document(id string, now time.Time) AIContentRequest {
	urgency := trimmed(p.UrgencyLevel)
	if urgency == "" {
		urgency = UrgencyMedium
	}
	return AIContentRequest{
		Lead:               p.ContactPayload.lead(id, now),
		BusinessName:       trimmed(p.BusinessName),
		Industry:           trimmed(p.Industry),
		ContentTypes:       trimmedAll(p.ContentTypes),
		AIIntegrationLevel: trimmed(p.AIIntegrationLevel),
		MonthlyVolume:      trimmed(p.MonthlyVolume),
		ToneOfVoice:        trimmed(p.ToneOfVoice),
		SampleDocuments:    stampAttachments(p.SampleDocuments, now),
		BudgetRange:        trimmed(p.BudgetRange),
		DesiredTimeline:    trimmed(p.DesiredTimeline),
		UrgencyLevel:       urgency,
	}
}

func newAIContentHandler(col *mongo.Collection, deps Deps) *Handler[AIContentPayload, AIContentRequest] {
	def := Definition{
		Slug:  "ai-content-requests",
		Label: "AI Content",
		Filters: baseFilters(map[string]FilterKind{
			"contentTypes":       FilterSet,
			"aiIntegrationLevel": FilterExact,
			"monthlyVolume":      FilterExact,
			"budgetRange":        FilterExact,
			"urgencyLevel":       FilterExact,
		}),
		Sortable: baseSortable("budgetRange", "urgencyLevel"),
	}
	svc := NewService[AIContentPayload, AIContentRequest](def, NewRepository[AIContentRequest](col), deps.Cache, deps.Location, deps.StatsTTL)
	return NewHandler(svc, deps.Val, deps.Log, deps.Notifier)
}
