package report

import (
	"sort"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

// buildTrafficReport folds current and previous window page visits into
// the traffic report. completedOrders is the count of completed orders in
// the current window, used only for the conversion rate.
func buildTrafficReport(p Period, cur, prev []entity.PageVisit, completedOrders int) *entity.TrafficReport {
	r := &entity.TrafficReport{Period: p.Current}

	r.TotalPageviews = len(cur)
	r.TotalVisitors = distinctVisitors(cur)
	r.BounceRate = bounceRate(cur)
	r.AvgSessionDuration = meanDuration(cur)
	r.ConversionRate = pctOf(completedOrders, r.TotalVisitors)

	r.PageviewsGrowth = GrowthInt(len(cur), len(prev))
	r.VisitorsGrowth = GrowthInt(r.TotalVisitors, distinctVisitors(prev))
	r.SessionGrowth = GrowthFloat(r.AvgSessionDuration, meanDuration(prev))
	r.BounceRateGrowth = GrowthFloat(r.BounceRate, bounceRate(prev))

	r.PageviewsByDay = pageviewsByDay(p.Current, cur)
	r.VisitorsByDay = visitorsByDay(p.Current, cur)
	r.PopularPages = popularPages(cur)
	r.TrafficSources = trafficSources(cur)
	r.DeviceShare = deviceShare(cur, r.TotalVisitors)

	return r
}

func distinctVisitors(visits []entity.PageVisit) int {
	seen := map[int]struct{}{}
	for _, v := range visits {
		seen[v.VisitorID] = struct{}{}
	}
	return len(seen)
}

func bounceRate(visits []entity.PageVisit) float64 {
	bounced := 0
	for _, v := range visits {
		if v.Bounced {
			bounced++
		}
	}
	return pctOf(bounced, len(visits))
}

// meanDuration is deliberately not rounded; it is raw seconds.
func meanDuration(visits []entity.PageVisit) float64 {
	if len(visits) == 0 {
		return 0
	}
	total := 0
	for _, v := range visits {
		total += v.Duration
	}
	return float64(total) / float64(len(visits))
}

func pageviewsByDay(tr entity.TimeRange, visits []entity.PageVisit) []entity.TimeSeriesPoint {
	ds := newDailySeries(tr)
	for _, v := range visits {
		ds.AddCount(v.VisitedAt)
	}
	return ds.Points()
}

func visitorsByDay(tr entity.TimeRange, visits []entity.PageVisit) []entity.TimeSeriesPoint {
	perDay := map[string]map[int]struct{}{}
	for _, v := range visits {
		key := dayStart(v.VisitedAt).Format(dayKey)
		if perDay[key] == nil {
			perDay[key] = map[int]struct{}{}
		}
		perDay[key][v.VisitorID] = struct{}{}
	}
	ds := newDailySeries(tr)
	for _, v := range visits {
		ds.SetCount(v.VisitedAt, len(perDay[dayStart(v.VisitedAt).Format(dayKey)]))
	}
	return ds.Points()
}

func popularPages(visits []entity.PageVisit) []entity.PagePerformance {
	byURL := map[string]*entity.PagePerformance{}
	durations := map[string]int{}
	var order []string
	for _, v := range visits {
		p, ok := byURL[v.URL]
		if !ok {
			// title of the first occurrence wins
			p = &entity.PagePerformance{URL: v.URL, Title: v.PageTitle}
			byURL[v.URL] = p
			order = append(order, v.URL)
		}
		p.Visits++
		durations[v.URL] += v.Duration
	}
	pages := make([]entity.PagePerformance, 0, len(order))
	for _, url := range order {
		p := byURL[url]
		p.AvgTime = float64(durations[url]) / float64(p.Visits)
		pages = append(pages, *p)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Visits > pages[j].Visits
	})
	return pages
}

func trafficSources(visits []entity.PageVisit) []entity.TrafficSourceShare {
	counts := map[string]int{}
	var order []string
	for _, v := range visits {
		src := ReferrerSource(v.Referrer.String)
		if _, ok := counts[src]; !ok {
			order = append(order, src)
		}
		counts[src]++
	}
	sources := make([]entity.TrafficSourceShare, 0, len(order))
	for _, src := range order {
		sources = append(sources, entity.TrafficSourceShare{
			Source:     src,
			Visits:     counts[src],
			Percentage: pctOf(counts[src], len(visits)),
		})
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Visits > sources[j].Visits
	})
	return sources
}

// deviceShare counts distinct visitors per device class: a visitor with
// five page visits counts once.
func deviceShare(visits []entity.PageVisit, totalVisitors int) []entity.DeviceShare {
	deviceByVisitor := map[int]string{}
	for _, v := range visits {
		if _, ok := deviceByVisitor[v.VisitorID]; !ok {
			deviceByVisitor[v.VisitorID] = DeviceLabel(v.Device)
		}
	}
	counts := map[string]int{}
	for _, label := range deviceByVisitor {
		counts[label]++
	}
	share := make([]entity.DeviceShare, 0, len(counts))
	for _, label := range []string{DeviceLabelDesktop, DeviceLabelMobile, DeviceLabelTablet, DeviceOther} {
		n, ok := counts[label]
		if !ok {
			continue
		}
		share = append(share, entity.DeviceShare{
			Device:     label,
			Visitors:   n,
			Percentage: pctOf(n, totalVisitors),
		})
	}
	return share
}
