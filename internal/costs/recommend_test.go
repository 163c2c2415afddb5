package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanAdvice(t *testing.T) {
	tests := []struct {
		name     string
		tier     string
		appCount int
		want     string
	}{
		{"empty plan", "Basic", 0, "consider deleting"},
		{"empty premium plan", "Premium", 0, "consider deleting"},
		{"premium one app", "Premium", 1, "consider downgrading"},
		{"premium two apps", "Premium", 2, "consider downgrading"},
		{"premium three apps", "Premium", 3, ""},
		{"standard single app", "Standard", 1, "consider Basic tier"},
		{"standard two apps", "Standard", 2, ""},
		{"basic single app", "Basic", 1, ""},
		{"free plan with apps", "Free", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanAdvice("my-plan", tt.tier, tt.appCount)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "my-plan")
		})
	}
}

func TestDatabaseNeedsReview(t *testing.T) {
	assert.True(t, DatabaseNeedsReview("Premium"))
	assert.True(t, DatabaseNeedsReview("BusinessCritical"))
	assert.False(t, DatabaseNeedsReview("Standard"))
	assert.False(t, DatabaseNeedsReview("Basic"))
	assert.False(t, DatabaseNeedsReview(""))
}

func TestStorageNeedsReview(t *testing.T) {
	assert.True(t, StorageNeedsReview("Premium_LRS"))
	assert.True(t, StorageNeedsReview("Premium_ZRS"))
	assert.False(t, StorageNeedsReview("Standard_LRS"))
	assert.False(t, StorageNeedsReview(""))
}
