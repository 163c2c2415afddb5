package costs

import (
	"fmt"
	"strings"
)

// PlanAdvice returns the optimization recommendation for one hosting plan,
// or an empty string when the plan needs none. The rules depend only on the
// plan's tier and its bound app count.
func PlanAdvice(name, tier string, appCount int) string {
	switch {
	case appCount == 0:
		return fmt.Sprintf("%s: no apps deployed - consider deleting this plan", name)
	case tier == "Premium" && appCount < 3:
		return fmt.Sprintf("%s: Premium tier with few apps - consider downgrading", name)
	case tier == "Standard" && appCount == 1:
		return fmt.Sprintf("%s: Standard tier for a single app - consider Basic tier", name)
	}
	return ""
}

// DatabaseNeedsReview reports whether a database tier is expensive enough to
// be worth a second look.
func DatabaseNeedsReview(tier string) bool {
	return tier == "Premium" || tier == "BusinessCritical"
}

// StorageNeedsReview reports whether a storage SKU is a premium offering.
func StorageNeedsReview(skuName string) bool {
	return strings.Contains(skuName, "Premium")
}

// GeneralAdvice returns the static cost-saving pointers printed at the end
// of every report.
func GeneralAdvice() []string {
	return []string{
		"Use Azure Reserved Instances for predictable workloads (up to 72% savings)",
		"Enable autoscaling to match capacity with demand",
		"Use Azure Advisor for personalized recommendations",
		"Consider Spot VMs for non-critical workloads",
		"Review and delete unused resources regularly",
	}
}
