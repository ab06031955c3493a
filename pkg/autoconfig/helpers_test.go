// pkg/autoconfig/helpers_test.go
package autoconfig

import "furnishing-engine/pkg/catalog"

// ==========================
// Test Helper Functions
// ==========================

func intPtr(v int) *int {
	return &v
}

func testRules() *catalog.AutoConfigRules {
	return &catalog.AutoConfigRules{
		Version: "test",
		BunkCapacities: map[catalog.BunkSize]int{
			catalog.BunkSmall:  4,
			catalog.BunkMedium: 8,
			catalog.BunkLarge:  12,
		},
		BedroomMixRules: []catalog.BedroomMixRule{
			{
				ID:      "compact-4",
				MinSqft: 600, MaxSqft: 1200,
				MinGuests: 1, MaxGuests: 4,
				Bedrooms: catalog.BedroomMix{Single: 2},
			},
			{
				ID:      "large-12",
				MinSqft: 2000, MaxSqft: 2500,
				MinGuests: 8, MaxGuests: 12,
				Bedrooms: catalog.BedroomMix{Single: 2, Double: 1, Bunk: catalog.BunkSmall},
			},
			{
				// Deliberately mis-specified: its own mix cannot sleep its
				// guest range.
				ID:      "under-capacity",
				MinSqft: 2000, MaxSqft: 2500,
				MinGuests: 13, MaxGuests: 14,
				Bedrooms: catalog.BedroomMix{Single: 1},
			},
		},
		CommonAreaRules: map[string]catalog.CommonAreaRule{
			catalog.AreaKitchen: {
				Presence: &catalog.PresenceRule{PresentIfSqftGte: intPtr(1500)},
				Thresholds: []catalog.SizeThreshold{
					{MinSqft: intPtr(1500), MaxSqft: intPtr(2500), Size: catalog.SizeSmall},
					{MinSqft: intPtr(2501), Size: catalog.SizeMedium},
				},
				Default: catalog.SizeNone,
			},
			catalog.AreaDining: {
				Presence: &catalog.PresenceRule{PresentIfSqftGte: intPtr(1000)},
				Thresholds: []catalog.SizeThreshold{
					{MaxSqft: intPtr(3000), Size: catalog.SizeSmall},
					{Size: catalog.SizeLarge}, // catch-all
				},
				Default: catalog.SizeNone,
			},
			catalog.AreaLiving: {
				Presence: &catalog.PresenceRule{PresentIfSqftGte: intPtr(600)},
				Thresholds: []catalog.SizeThreshold{
					{MaxSqft: intPtr(1500), Size: catalog.SizeSmall},
					{MinSqft: intPtr(1501), MaxSqft: intPtr(2800), Size: catalog.SizeMedium},
					{MinSqft: intPtr(2801), Size: catalog.SizeLarge},
				},
				Default: catalog.SizeSmall,
			},
			catalog.AreaRecRoom: {
				// No presence threshold: never present, always the default.
				Thresholds: []catalog.SizeThreshold{
					{Size: catalog.SizeLarge},
				},
				Default: catalog.SizeNone,
			},
		},
		Validation: catalog.ValidationRules{
			Global: catalog.GlobalValidation{
				MinSqft: 400, MaxSqft: 10000,
				MinGuests: 2, MaxGuests: 16,
			},
		},
	}
}
