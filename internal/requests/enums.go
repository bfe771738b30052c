package requests

// urgencyLevels is shared by every request type; CRM and HRMS expose it
// under the "priority" field name but draw from the same vocabulary.
var urgencyLevels = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// Vocabularies returns every named enum table referenced by the payload
// validation tags, keyed by the name used in the tag.
func Vocabularies() map[string][]string {
	return map[string][]string{
		"urgencyLevel": urgencyLevels,

		"websiteType":             websiteTypes,
		"websiteFeature":          websiteFeatures,
		"websitePageCount":        websitePageCounts,
		"websiteDesignPreference": websiteDesignPreferences,
		"websiteBudgetRange":      websiteBudgetRanges,
		"websiteTimeline":         websiteTimelines,

		"mobileAppPlatform":         mobileAppPlatforms,
		"mobileAppType":             mobileAppTypes,
		"mobileAppFeature":          mobileAppFeatures,
		"mobileAppDesignPreference": mobileAppDesignPreferences,
		"mobileAppBudgetRange":      mobileAppBudgetRanges,
		"mobileAppTimeline":         mobileAppTimelines,

		"cloudHostingType":        cloudHostingTypes,
		"cloudHostingService":     cloudHostingServices,
		"cloudHostingProvider":    cloudHostingProviders,
		"cloudHostingTraffic":     cloudHostingTraffic,
		"cloudHostingBudgetRange": cloudHostingBudgetRanges,
		"cloudHostingTimeline":    cloudHostingTimelines,

		"crmType":        crmTypes,
		"crmModule":      crmModules,
		"crmTeamSize":    crmTeamSizes,
		"crmIntegration": crmIntegrations,
		"crmBudgetRange": crmBudgetRanges,
		"crmTimeline":    crmTimelines,

		"hrmsCompanySize":    hrmsCompanySizes,
		"hrmsModule":         hrmsModules,
		"hrmsDeploymentType": hrmsDeploymentTypes,
		"hrmsBudgetRange":    hrmsBudgetRanges,
		"hrmsTimeline":       hrmsTimelines,

		"brandingDesignType":  brandingDesignTypes,
		"brandingDeliverable": brandingDeliverables,
		"brandingStyle":       brandingStyles,
		"brandingBudgetRange": brandingBudgetRanges,
		"brandingTimeline":    brandingTimelines,

		"saasType":          saasTypes,
		"saasCoreFeature":   saasCoreFeatures,
		"saasTechStack":     saasTechStacks,
		"saasExpectedUsers": saasExpectedUsers,
		"saasBudgetRange":   saasBudgetRanges,
		"saasTimeline":      saasTimelines,

		"ecommercePlatform":     ecommercePlatforms,
		"ecommerceFeature":      ecommerceFeatures,
		"ecommerceProductCount": ecommerceProductCounts,
		"ecommerceBudgetRange":  ecommerceBudgetRanges,
		"ecommerceTimeline":     ecommerceTimelines,

		"lmsType":        lmsTypes,
		"lmsFeature":     lmsFeatures,
		"lmsUserCount":   lmsUserCounts,
		"lmsBudgetRange": lmsBudgetRanges,
		"lmsTimeline":    lmsTimelines,

		"aiContentType":      aiContentTypes,
		"aiIntegrationLevel": aiIntegrationLevels,
		"aiMonthlyVolume":    aiMonthlyVolumes,
		"aiBudgetRange":      aiBudgetRanges,
		"aiTimeline":         aiTimelines,
	}
}
