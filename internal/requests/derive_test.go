package requests

import (
	"reflect"
	"testing"
)

func TestBrandingComplexityFromDesignTypeCount(t *testing.T) {
	req := BrandingRequest{
		DesignType:           []string{"Logo Design", "Banner Design", "UI/UX Design", "Website Design"},
		DeliverablesRequired: []string{"Logo Pack (PNG, JPG, SVG)"},
		BrandStyle:           "Modern",
		BudgetRange:          "Under $500",
		UrgencyLevel:         UrgencyLow,
		Timeline:             "Flexible",
	}
	derived := req.WithDerived()
	if !derived.IsComplexRequest {
		t.Fatal("four design types should flag the request complex")
	}
	if derived.IsHighValueProject || derived.IsUrgentRequest {
		t.Fatal("low budget and low urgency should not flag anything else")
	}
}

func TestBrandingComplexityFromCustomStyle(t *testing.T) {
	req := BrandingRequest{
		DesignType: []string{"Logo Design"},
		BrandStyle: "Custom Style",
	}
	if !req.WithDerived().IsComplexRequest {
		t.Fatal("custom style should flag the request complex on its own")
	}
}

func TestLMSComplexityFromTypeSubset(t *testing.T) {
	req := LMSRequest{
		LMSType:       "Educational Institution",
		Features:      []string{"Course Builder"},
		NumberOfUsers: "Under 100",
		BudgetRange:   "Under $5,000",
		UrgencyLevel:  UrgencyLow,
		Timeline:      "Flexible",
	}
	derived := req.WithDerived()
	if !derived.IsComplexProject {
		t.Fatal("educational institution should be complex regardless of other signals")
	}
	if derived.IsEnterpriseProject {
		t.Fatal("small user count and low budget should not be enterprise")
	}
}

func TestLMSEnterpriseFromUserCount(t *testing.T) {
	req := LMSRequest{
		LMSType:       "Internal Training",
		NumberOfUsers: "10,000+",
		BudgetRange:   "Under $5,000",
	}
	if !req.WithDerived().IsEnterpriseProject {
		t.Fatal("top user tier should flag enterprise")
	}
}

func TestLMSEnterpriseFromBudget(t *testing.T) {
	req := LMSRequest{
		LMSType:       "Internal Training",
		NumberOfUsers: "Under 100",
		BudgetRange:   "$80,000+",
	}
	derived := req.WithDerived()
	if !derived.IsEnterpriseProject {
		t.Fatal("top budget tier should flag enterprise")
	}
	if !derived.IsHighValueProject {
		t.Fatal("top budget tier should flag high value")
	}
}

func TestEstimatedBudgetMidpoints(t *testing.T) {
	branding := BrandingRequest{BudgetRange: "$1,500 - $5,000"}.WithDerived()
	if branding.EstimatedBudget != 3250 {
		t.Fatalf("branding midpoint: expected 3250, got %d", branding.EstimatedBudget)
	}

	website := WebsiteRequest{BudgetRange: "$10,000 - $25,000"}.WithDerived()
	if website.EstimatedBudget != 17500 {
		t.Fatalf("website midpoint: expected 17500, got %d", website.EstimatedBudget)
	}

	saas := SaaSRequest{BudgetRange: "$100,000+"}.WithDerived()
	if saas.EstimatedBudget != 150000 {
		t.Fatalf("saas midpoint: expected 150000, got %d", saas.EstimatedBudget)
	}
}

func TestEstimatedBudgetUnknownRangeIsZero(t *testing.T) {
	req := BrandingRequest{BudgetRange: "whatever"}.WithDerived()
	if req.EstimatedBudget != 0 {
		t.Fatalf("unknown range should map to 0, got %d", req.EstimatedBudget)
	}
	if req.IsHighValueProject {
		t.Fatal("unknown range should not be high value")
	}
}

func TestUrgentFromASAPTimeline(t *testing.T) {
	req := WebsiteRequest{UrgencyLevel: UrgencyLow, Timeline: TimelineASAP}
	if !req.WithDerived().IsUrgentRequest {
		t.Fatal("ASAP timeline should flag urgent even at low urgency")
	}
}

func TestUrgentFromUrgencyLevel(t *testing.T) {
	for _, level := range []string{UrgencyHigh, UrgencyCritical} {
		req := WebsiteRequest{UrgencyLevel: level, Timeline: "Flexible"}
		if !req.WithDerived().IsUrgentRequest {
			t.Fatalf("urgency %s should flag urgent", level)
		}
	}
	req := WebsiteRequest{UrgencyLevel: UrgencyMedium, Timeline: "Flexible"}
	if req.WithDerived().IsUrgentRequest {
		t.Fatal("medium urgency with a flexible timeline should not flag urgent")
	}
}

func TestCRMUrgencyReadsPriorityField(t *testing.T) {
	req := CRMRequest{Priority: UrgencyCritical, Timeline: "Flexible"}
	if !req.WithDerived().IsUrgentRequest {
		t.Fatal("critical priority should flag urgent")
	}
}

func TestDerivedFieldsAreDeterministic(t *testing.T) {
	req := SaaSRequest{
		CoreFeatures:       []string{"Authentication", "Billing & Subscriptions"},
		PreferredTechStack: "Fully Custom",
		BudgetRange:        "$50,000 - $100,000",
		UrgencyLevel:       UrgencyHigh,
		Timeline:           "3-6 Months",
	}
	first := req.WithDerived()
	second := req.WithDerived()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeat derivation on the same document should be identical")
	}
	if !first.IsComplexProject {
		t.Fatal("fully custom stack should flag complex")
	}
}
