package domain_test

import (
	"testing"

	"slimcoach/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		diet, workout int
		want          domain.Category
		wantSevere    bool
	}{
		{"both low", 40, 40, domain.CategoryReset, true},
		{"diet slipping", 55, 80, domain.CategoryKitchenFocus, false},
		{"movement low", 80, 55, domain.CategoryMoveMore, false},
		{"crushing it", 90, 90, domain.CategoryLevelUp, false},
		{"diet very low but workout fine", 40, 80, domain.CategoryKitchenFocus, true},
		{"workout very low but diet fine", 80, 40, domain.CategoryMoveMore, true},
		{"diet rule wins over workout rule", 55, 55, domain.CategoryKitchenFocus, false},
		{"boundary 50/50 is not reset", 50, 50, domain.CategoryKitchenFocus, false},
		{"boundary 60/60 levels up", 60, 60, domain.CategoryLevelUp, false},
		{"zero week", 0, 0, domain.CategoryReset, true},
		{"perfect week", 100, 100, domain.CategoryLevelUp, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.Classify(tc.diet, tc.workout)
			if got.Category != tc.want {
				t.Errorf("Classify(%d, %d).Category = %v; want %v", tc.diet, tc.workout, got.Category, tc.want)
			}
			if got.Severe != tc.wantSevere {
				t.Errorf("Classify(%d, %d).Severe = %v; want %v", tc.diet, tc.workout, got.Severe, tc.wantSevere)
			}
		})
	}
}
