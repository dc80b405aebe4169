package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// defaultTopCustomers caps the top-spender list unless the reports
// configuration overrides it.
const defaultTopCustomers = 10

// buildCustomerReport folds customers (with their all-time orders) into
// acquisition, retention, segmentation and lifetime-value metrics. topN
// caps the top-spender list.
func buildCustomerReport(p Period, customers []entity.Customer, topN int) *entity.CustomerReport {
	r := &entity.CustomerReport{Period: p.Current}

	r.TotalCustomers = len(customers)

	// customers with >=1 order in the current window, the previous
	// window, and both
	orderedCurrent := 0
	orderedPrevious := 0
	orderedBoth := 0
	acquisition := newDailySeries(p.Current)

	for _, c := range customers {
		if inWindow(c.CreatedAt, p.Current) {
			r.NewCustomers++
			acquisition.AddCount(c.CreatedAt)
		}
		cur, prev := false, false
		for _, o := range c.Orders {
			if inWindow(o.CreatedAt, p.Current) {
				cur = true
			}
			if inWindow(o.CreatedAt, p.Previous) {
				prev = true
			}
		}
		if cur {
			orderedCurrent++
		}
		if prev {
			orderedPrevious++
		}
		if cur && prev {
			orderedBoth++
		}
	}

	r.ActiveCustomers = orderedCurrent
	r.RetentionRate = pctOf(orderedBoth, orderedPrevious)
	r.CustomerLifetimeValue = lifetimeValue(customers)
	r.Segments = segmentCounts(customers)
	r.AcquisitionByDay = acquisition.Points()
	r.TopCustomers = topCustomers(customers, topN)

	return r
}

func inWindow(t time.Time, tr entity.TimeRange) bool {
	return !t.Before(tr.From) && t.Before(tr.To)
}

// lifetimeValue is the mean non-cancelled spend across customers with at
// least one order.
func lifetimeValue(customers []entity.Customer) decimal.Decimal {
	total := decimal.Zero
	buyers := 0
	for _, c := range customers {
		if len(c.Orders) == 0 {
			continue
		}
		buyers++
		total = total.Add(c.TotalSpent())
	}
	if buyers == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(buyers))).Round(2)
}

func segmentCounts(customers []entity.Customer) []entity.SegmentCount {
	counts := map[string]int{}
	for _, c := range customers {
		counts[CustomerSegment(len(c.Orders))]++
	}
	segments := make([]entity.SegmentCount, 0, 4)
	for _, s := range []string{SegmentInactive, SegmentNew, SegmentRegular, SegmentVIP} {
		segments = append(segments, entity.SegmentCount{Segment: s, Count: counts[s]})
	}
	return segments
}

func topCustomers(customers []entity.Customer, limit int) []entity.CustomerSpend {
	spends := make([]entity.CustomerSpend, 0, len(customers))
	for _, c := range customers {
		if len(c.Orders) == 0 {
			continue
		}
		spends = append(spends, entity.CustomerSpend{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			OrderCount: len(c.Orders),
			TotalSpent: c.TotalSpent(),
		})
	}
	sort.SliceStable(spends, func(i, j int) bool {
		return spends[i].TotalSpent.GreaterThan(spends[j].TotalSpent)
	})
	if len(spends) > limit {
		spends = spends[:limit]
	}
	return spends
}
