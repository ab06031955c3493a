// pkg/catalog/schema.go

// Package catalog defines the rule and catalog documents the furnishing engine
// consumes, and loads them from JSON files. Documents are treated as immutable
// values once loaded.
package catalog

// BunkSize is the size class of a bunk room.
type BunkSize string

const (
	BunkNone   BunkSize = ""
	BunkSmall  BunkSize = "small"
	BunkMedium BunkSize = "medium"
	BunkLarge  BunkSize = "large"
)

// CommonSize is the derived size of a shared space.
type CommonSize string

const (
	SizeNone   CommonSize = "none"
	SizeSmall  CommonSize = "small"
	SizeMedium CommonSize = "medium"
	SizeLarge  CommonSize = "large"
)

// Common-area keys used by the rules document.
const (
	AreaKitchen = "kitchen"
	AreaDining  = "dining"
	AreaLiving  = "living"
	AreaRecRoom = "recRoom"
)

// BedroomMix holds counts of single and double bedrooms plus at most one bunk
// room of a given size. BunkNone means no bunk room.
type BedroomMix struct {
	Single int      `json:"single"`
	Double int      `json:"double"`
	Bunk   BunkSize `json:"bunk,omitempty"`
}

// BedroomMixRule is an authored recommendation scoped to a square-footage
// range and a guest-count range. Ranges are inclusive.
type BedroomMixRule struct {
	ID        string     `json:"id"`
	MinSqft   int        `json:"min_sqft"`
	MaxSqft   int        `json:"max_sqft"`
	MinGuests int        `json:"min_guests"`
	MaxGuests int        `json:"max_guests"`
	Bedrooms  BedroomMix `json:"bedrooms"`
}

// PresenceRule gates whether a common area exists at all. A nil threshold
// means the area is never present by this criterion.
type PresenceRule struct {
	PresentIfSqftGte *int `json:"present_if_sqft_gte,omitempty"`
}

// SizeThreshold maps a square-footage band to a common-area size. Nil bounds
// are unconstrained. Authoring order is significant: first match wins, so
// later, broader thresholds act as catch-alls.
type SizeThreshold struct {
	MinSqft *int       `json:"min_sqft,omitempty"`
	MaxSqft *int       `json:"max_sqft,omitempty"`
	Size    CommonSize `json:"size"`
}

// CommonAreaRule derives one shared space from square footage.
type CommonAreaRule struct {
	Presence   *PresenceRule   `json:"presence,omitempty"`
	Thresholds []SizeThreshold `json:"size_thresholds"`
	Default    CommonSize      `json:"default"`
}

// GlobalValidation holds the global input bounds.
type GlobalValidation struct {
	MinSqft   int `json:"min_sqft"`
	MaxSqft   int `json:"max_sqft"`
	MinGuests int `json:"min_guests"`
	MaxGuests int `json:"max_guests"`
}

// ValidationRules wraps the validation section of the rules document.
type ValidationRules struct {
	Global GlobalValidation `json:"global"`
}

// AutoConfigRules is the versioned auto-configuration ruleset. It is supplied
// by the configuration-loading collaborator and treated as a pure input value.
type AutoConfigRules struct {
	Version         string                    `json:"version"`
	BunkCapacities  map[BunkSize]int          `json:"bunkCapacities"`
	BedroomMixRules []BedroomMixRule          `json:"bedroomMixRules"`
	CommonAreaRules map[string]CommonAreaRule `json:"commonAreaRules"`
	Validation      ValidationRules           `json:"validation"`
}

// TierPrices holds the four ascending quality-tier prices of a catalog entry,
// in integer minor units.
type TierPrices struct {
	Low     int64 `json:"low"`
	Mid     int64 `json:"mid"`
	MidHigh int64 `json:"midHigh"`
	High    int64 `json:"high"`
}

// Item is a priced catalog entry.
type Item struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Prices   TierPrices `json:"prices"`
}

// RoomItem is an item reference with a quantity inside a room.
type RoomItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// RoomSize is one size variant of a room template, with its item list and
// precomputed per-tier totals.
type RoomSize struct {
	Items  []RoomItem `json:"items"`
	Totals TierPrices `json:"totals"`
}

// RoomTemplate is a catalog entry describing a furnishable room type.
// Sizes is keyed by "small"/"medium"/"large".
type RoomTemplate struct {
	ID       string              `json:"id"`
	Category string              `json:"category"`
	Sizes    map[string]RoomSize `json:"sizes"`
}

// SelectedRoom is a user's room choice. Items is populated once the selection
// has been resolved against a template; when empty, the aggregator resolves it
// from the template catalog.
type SelectedRoom struct {
	RoomType string     `json:"roomType"`
	RoomSize string     `json:"roomSize"`
	Quantity int        `json:"quantity"`
	Items    []RoomItem `json:"items,omitempty"`
}

// BudgetDefaults holds the configured budget parameters: the contingency rate
// applied to tier subtotals, flat project add-on amounts, and the design-fee
// rate per square foot. Monetary values are in minor units.
type BudgetDefaults struct {
	ContingencyRate  float64 `json:"contingencyRate"`
	InstallationFee  int64   `json:"installationFee"`
	FuelFee          int64   `json:"fuelFee"`
	StorageFee       int64   `json:"storageFee"`
	KitchenFee       int64   `json:"kitchenFee"`
	PropertyMgmtFee  int64   `json:"propertyMgmtFee"`
	DesignFeePerSqft int64   `json:"designFeePerSqft"`
}

// PropertySpecs describes the property being furnished.
type PropertySpecs struct {
	SquareFootage int `json:"squareFootage"`
	GuestCapacity int `json:"guestCapacity"`
}

// ItemCatalog is the on-disk item document.
type ItemCatalog struct {
	Version string `json:"version"`
	Items   []Item `json:"items"`
}

// TemplateCatalog is the on-disk room-template document.
type TemplateCatalog struct {
	Version   string         `json:"version"`
	Templates []RoomTemplate `json:"templates"`
}
