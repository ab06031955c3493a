// pkg/budget/aggregator.go
package budget

import (
	"math"
	"time"

	"github.com/google/uuid"

	"furnishing-engine/internal/common/errors"
	"furnishing-engine/internal/common/logger"
	"furnishing-engine/internal/common/metrics"
	"furnishing-engine/pkg/catalog"
)

// CalculateEstimate rolls the selected rooms up into a four-tier furnishings
// budget. Selections that do not resolve against the catalog degrade to zero
// with a diagnostic; aggregation never aborts. Tier ordering in the catalog
// data (low <= mid <= midHigh <= high) is surfaced as-is, never re-sorted or
// repaired.
func CalculateEstimate(
	rooms []catalog.SelectedRoom,
	templates map[string]catalog.RoomTemplate,
	items map[string]catalog.Item,
	opts Options,
) *Budget {
	return aggregate(rooms, templates, items, opts, "furnishings")
}

func aggregate(
	rooms []catalog.SelectedRoom,
	templates map[string]catalog.RoomTemplate,
	items map[string]catalog.Item,
	opts Options,
	variant string,
) *Budget {
	start := time.Now()

	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	b := &Budget{
		EstimateID:    uuid.NewString(),
		RoomBreakdown: make([]RoomBreakdown, 0, len(rooms)),
	}
	var totals TierAmounts

	for _, room := range rooms {
		resolved := room.Items
		if len(resolved) == 0 {
			tpl, ok := templates[room.RoomType]
			if !ok {
				b.addDiagnostic(log, errors.NewRoomTemplateNotFoundError(room.RoomType),
					room.RoomType, "template")
				continue
			}
			size, ok := tpl.Sizes[room.RoomSize]
			if !ok {
				b.addDiagnostic(log, errors.NewRoomSizeNotFoundError(room.RoomType, room.RoomSize),
					room.RoomType+"/"+room.RoomSize, "size")
				continue
			}
			resolved = size.Items
		}

		var roomTiers TierAmounts
		for _, ri := range resolved {
			item, ok := items[ri.ItemID]
			if !ok {
				b.addDiagnostic(log, errors.NewItemNotFoundError(ri.ItemID), ri.ItemID, "item")
				continue
			}

			mult := int64(ri.Quantity) * int64(room.Quantity)
			roomTiers.Low += item.Prices.Low * mult
			roomTiers.Mid += item.Prices.Mid * mult
			roomTiers.MidHigh += item.Prices.MidHigh * mult
			roomTiers.High += item.Prices.High * mult
		}

		b.RoomBreakdown = append(b.RoomBreakdown, RoomBreakdown{
			RoomType: room.RoomType,
			RoomSize: room.RoomSize,
			Quantity: room.Quantity,
			Tiers:    roomTiers,
		})

		totals.Low += roomTiers.Low
		totals.Mid += roomTiers.Mid
		totals.MidHigh += roomTiers.MidHigh
		totals.High += roomTiers.High
	}

	rate := opts.Defaults.ContingencyRate
	if opts.DisableContingency {
		rate = 0
	}

	b.Low = tierTotal(totals.Low, rate)
	b.Mid = tierTotal(totals.Mid, rate)
	b.MidHigh = tierTotal(totals.MidHigh, rate)
	b.High = tierTotal(totals.High, rate)

	// Headline range spans the low and mid tiers.
	b.RangeLow = b.Low.Total
	b.RangeHigh = b.Mid.Total

	metrics.EstimatesComputed.WithLabelValues(variant).Inc()
	metrics.EstimateDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())

	return b
}

func (b *Budget) addDiagnostic(log logger.Logger, serr *errors.StandardError, ref, kind string) {
	log.Warn(serr.Message, map[string]interface{}{
		"code":     string(serr.Code),
		"category": errors.GetErrorCategory(serr.Code),
		"ref":      ref,
	})
	metrics.MissingCatalogRefs.WithLabelValues(kind).Inc()
	b.Diagnostics = append(b.Diagnostics, Diagnostic{
		Code:    string(serr.Code),
		Message: serr.Message,
		Ref:     ref,
	})
}

func tierTotal(subtotal int64, rate float64) TierTotal {
	contingency := int64(math.Round(float64(subtotal) * rate))
	return TierTotal{
		Subtotal:    subtotal,
		Contingency: contingency,
		Total:       subtotal + contingency,
	}
}
