package report

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

var trafficNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func visit(visitorID int, device entity.DeviceEnum, url, referrer string, bounced bool, duration int) entity.PageVisit {
	return entity.PageVisit{
		VisitorID: visitorID,
		URL:       url,
		PageTitle: "Halaman " + url,
		Referrer:  sql.NullString{String: referrer, Valid: referrer != ""},
		VisitedAt: trafficNow.Add(-2 * time.Hour),
		Duration:  duration,
		Bounced:   bounced,
		Device:    device,
	}
}

func TestTrafficBounceRate(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	cur := []entity.PageVisit{
		visit(1, entity.DeviceDesktop, "/", "", true, 10),
		visit(2, entity.DeviceDesktop, "/", "", false, 30),
	}

	r := buildTrafficReport(p, cur, nil, 0)
	assert.Equal(t, 2, r.TotalPageviews)
	assert.Equal(t, 2, r.TotalVisitors)
	assert.Equal(t, 50.0, r.BounceRate)
	assert.Equal(t, 20.0, r.AvgSessionDuration)
}

func TestTrafficSourcesEndToEnd(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	cur := []entity.PageVisit{
		visit(1, entity.DeviceDesktop, "/a", "https://google.com/search?q=x", false, 10),
		visit(2, entity.DeviceDesktop, "/b", "https://facebook.com/x", false, 10),
		visit(3, entity.DeviceDesktop, "/c", "", false, 10),
		visit(4, entity.DeviceDesktop, "/d", "https://example.com/x", false, 10),
	}

	r := buildTrafficReport(p, cur, nil, 0)
	require.Len(t, r.TrafficSources, 4)
	for _, src := range r.TrafficSources {
		assert.Equal(t, 1, src.Visits, src.Source)
		assert.Equal(t, 25.0, src.Percentage, src.Source)
	}
	got := map[string]bool{}
	for _, src := range r.TrafficSources {
		got[src.Source] = true
	}
	for _, want := range []string{SourceOrganic, SourceSocial, SourceDirect, SourceReferral} {
		assert.True(t, got[want], want)
	}
}

func TestTrafficDeviceShareDedupsVisitors(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	// visitor 1 shows up five times, still one desktop visitor
	cur := []entity.PageVisit{
		visit(1, entity.DeviceDesktop, "/a", "", false, 10),
		visit(1, entity.DeviceDesktop, "/b", "", false, 10),
		visit(1, entity.DeviceDesktop, "/c", "", false, 10),
		visit(1, entity.DeviceDesktop, "/d", "", false, 10),
		visit(1, entity.DeviceDesktop, "/e", "", false, 10),
		visit(2, entity.DeviceMobile, "/a", "", false, 10),
	}

	r := buildTrafficReport(p, cur, nil, 0)
	require.Len(t, r.DeviceShare, 2)
	assert.Equal(t, "Desktop", r.DeviceShare[0].Device)
	assert.Equal(t, 1, r.DeviceShare[0].Visitors)
	assert.Equal(t, 50.0, r.DeviceShare[0].Percentage)
	assert.Equal(t, "Mobile", r.DeviceShare[1].Device)
	assert.Equal(t, 50.0, r.DeviceShare[1].Percentage)
}

func TestTrafficPopularPages(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	first := visit(1, entity.DeviceDesktop, "/produk", "", false, 30)
	first.PageTitle = "Produk"
	second := visit(2, entity.DeviceDesktop, "/produk", "", false, 10)
	second.PageTitle = "Produk (retitled)"
	cur := []entity.PageVisit{
		first,
		second,
		visit(3, entity.DeviceDesktop, "/", "", false, 5),
	}

	r := buildTrafficReport(p, cur, nil, 0)
	require.Len(t, r.PopularPages, 2)
	assert.Equal(t, "/produk", r.PopularPages[0].URL)
	// the first occurrence keeps the title
	assert.Equal(t, "Produk", r.PopularPages[0].Title)
	assert.Equal(t, 2, r.PopularPages[0].Visits)
	assert.Equal(t, 20.0, r.PopularPages[0].AvgTime)
}

func TestTrafficDenseDailySeries(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	r := buildTrafficReport(p, nil, nil, 0)

	require.Len(t, r.PageviewsByDay, 8)
	require.Len(t, r.VisitorsByDay, 8)
	for _, pt := range r.PageviewsByDay {
		assert.Equal(t, 0, pt.Count)
	}
}

func TestTrafficEmptyWindow(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	r := buildTrafficReport(p, nil, nil, 0)

	assert.Equal(t, 0, r.TotalPageviews)
	assert.Equal(t, 0.0, r.BounceRate)
	assert.Equal(t, 0.0, r.AvgSessionDuration)
	assert.Equal(t, 0.0, r.ConversionRate)
	assert.Empty(t, r.PopularPages)
	assert.Empty(t, r.TrafficSources)
	assert.Empty(t, r.DeviceShare)
}

func TestTrafficGrowthAgainstPreviousWindow(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	cur := []entity.PageVisit{
		visit(1, entity.DeviceDesktop, "/", "", false, 30),
		visit(2, entity.DeviceDesktop, "/", "", false, 30),
		visit(3, entity.DeviceDesktop, "/", "", false, 30),
	}
	prev := []entity.PageVisit{
		visit(9, entity.DeviceDesktop, "/", "", false, 60),
		visit(8, entity.DeviceDesktop, "/", "", false, 60),
	}

	r := buildTrafficReport(p, cur, prev, 0)
	assert.Equal(t, 50.0, r.PageviewsGrowth)
	assert.Equal(t, 50.0, r.VisitorsGrowth)
	assert.Equal(t, -50.0, r.SessionGrowth)
	// no bounces either window
	assert.Equal(t, 0.0, r.BounceRateGrowth)
}

func TestTrafficConversionRate(t *testing.T) {
	p := ResolvePeriod(7, trafficNow)
	cur := []entity.PageVisit{
		visit(1, entity.DeviceDesktop, "/", "", false, 10),
		visit(2, entity.DeviceDesktop, "/", "", false, 10),
		visit(3, entity.DeviceDesktop, "/", "", false, 10),
		visit(4, entity.DeviceDesktop, "/", "", false, 10),
	}

	r := buildTrafficReport(p, cur, nil, 1)
	assert.Equal(t, 25.0, r.ConversionRate)
}
