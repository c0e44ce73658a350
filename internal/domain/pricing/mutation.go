package pricing

import (
	"errors"
	"time"

	"adspace_ops/internal/domain/entities"
)

// EditField names a mutable estimate field.

type EditField string

const (
	EditFieldUnitPrice    EditField = "unit_price"
	EditFieldDurationDays EditField = "duration_days"
	EditFieldStartDate    EditField = "start_date"
	EditFieldEndDate      EditField = "end_date"
	EditFieldHeight       EditField = "height"
	EditFieldWidth        EditField = "width"
)

var (
	ErrUnsupportedField  = errors.New("unsupported edit field")
	ErrInvalidFieldValue = errors.New("invalid edit value")
)

// FieldEdit is the edit-transaction value handed to ApplyFieldEdit. It
// replaces the ambient edit-mode state a dialog would otherwise keep:
// which site is targeted, which field, and the new value.
//
// Value shapes per field:
//   - unit_price, height, width: float64 (or int)
//   - duration_days: int (or float64 from JSON)
//   - start_date, end_date: anything CoerceDate accepts
type FieldEdit struct {
	SiteName string
	Field    EditField
	Value    any
}

// ApplyFieldEdit applies one field edit to the estimate and returns the
// updated copy. The input estimate is never mutated: a deep clone is taken
// first so a displayed estimate and an in-progress edit buffer cannot
// alias.
//
// An edit whose site name matches no group leaves the line items alone but
// still reconciles TotalAmount against the item totals ("field edit
// ignored", not an error). After any successful edit:
//
//	TotalAmount == sum(LineItems[*].Total)
//	DurationDays consistent with (EndDate - StartDate), inclusive
func ApplyFieldEdit(est entities.CostEstimate, edit FieldEdit) (entities.CostEstimate, error) {
	out := est.Clone()
	groups := GroupBySite(out.LineItems)
	target := groups.Find(edit.SiteName)

	switch edit.Field {
	case EditFieldUnitPrice:
		price, ok := toFloat(edit.Value)
		if !ok {
			return est, ErrInvalidFieldValue
		}
		if target != nil {
			for _, id := range anchorIDs(target) {
				setUnitPrice(&out, id, price)
			}
		}
		recomputeRentalTotals(&out, anchorIDSet(target))

	case EditFieldDurationDays:
		days, ok := toInt(edit.Value)
		if !ok || days <= 0 {
			return est, ErrInvalidFieldValue
		}
		out.DurationDays = days
		if !out.StartDate.IsZero() {
			out.EndDate = out.StartDate.AddDate(0, 0, days-1)
		}
		recomputeRentalTotals(&out, allAnchorIDSet(groups))

	case EditFieldStartDate, EditFieldEndDate:
		d, ok := CoerceDate(edit.Value)
		if !ok {
			return est, ErrInvalidFieldValue
		}
		if edit.Field == EditFieldStartDate {
			out.StartDate = d
		} else {
			out.EndDate = d
		}
		if !out.StartDate.IsZero() && !out.EndDate.IsZero() {
			if out.EndDate.Before(out.StartDate) {
				return est, ErrInvalidDateRange
			}
			out.DurationDays = InclusiveDays(out.StartDate, out.EndDate)
		}
		recomputeRentalTotals(&out, allAnchorIDSet(groups))

	case EditFieldHeight, EditFieldWidth:
		dim, ok := toFloat(edit.Value)
		if !ok {
			return est, ErrInvalidFieldValue
		}
		if target != nil {
			for _, id := range anchorIDs(target) {
				setSpec(&out, id, edit.Field, dim)
			}
		}
		// Dimensions never touch pricing; totals stay as-is.
		out.TotalAmount = sumTotals(out.LineItems)

	default:
		return est, ErrUnsupportedField
	}

	return out, nil
}

// recomputeRentalTotals recomputes Total for the rental anchors named in
// affected, then reconciles the estimate-wide TotalAmount over every item.
// With explicit dates the charge is day-accurate proration; without them
// the coarse duration/30 fallback applies.
func recomputeRentalTotals(est *entities.CostEstimate, affected map[string]bool) {
	for i := range est.LineItems {
		item := &est.LineItems[i]
		if !affected[item.ID] || !item.IsSiteAnchor() {
			continue
		}
		item.Total = rentalCharge(item.UnitPrice, est.StartDate, est.EndDate, est.DurationDays)
	}
	est.TotalAmount = sumTotals(est.LineItems)
}

func rentalCharge(monthly float64, start, end time.Time, durationDays int) float64 {
	if !start.IsZero() && !end.IsZero() {
		if charge, err := ProratedPrice(monthly, start, end); err == nil {
			return charge
		}
	}
	return monthly * float64(durationDays) / 30
}

func sumTotals(items []entities.LineItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

func anchorIDs(g *SiteGroup) []string {
	if g == nil {
		return nil
	}
	var ids []string
	for _, item := range g.Items {
		if item.IsSiteAnchor() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func anchorIDSet(g *SiteGroup) map[string]bool {
	set := make(map[string]bool)
	for _, id := range anchorIDs(g) {
		set[id] = true
	}
	return set
}

func allAnchorIDSet(groups SiteGroups) map[string]bool {
	set := make(map[string]bool)
	for i := range groups {
		for _, id := range anchorIDs(&groups[i]) {
			set[id] = true
		}
	}
	return set
}

func setUnitPrice(est *entities.CostEstimate, itemID string, price float64) {
	for i := range est.LineItems {
		if est.LineItems[i].ID == itemID {
			est.LineItems[i].UnitPrice = price
		}
	}
}

func setSpec(est *entities.CostEstimate, itemID string, field EditField, dim float64) {
	for i := range est.LineItems {
		item := &est.LineItems[i]
		if item.ID != itemID {
			continue
		}
		if item.Specs == nil {
			item.Specs = &entities.LineItemSpecs{}
		}
		if field == EditFieldHeight {
			item.Specs.Height = dim
		} else {
			item.Specs.Width = dim
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
