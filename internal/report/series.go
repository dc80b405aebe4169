package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/entity"
)

const dayKey = "2006-01-02"

// dailySeries accumulates values into dense calendar-day buckets. Every
// day in the range is pre-seeded with a zero point, so charts stay
// continuous when a day has no activity. The range is inclusive of the
// window end's calendar day (today's partial day appears as its own
// bucket).
type dailySeries struct {
	keys   []string
	points map[string]*entity.TimeSeriesPoint
}

func newDailySeries(tr entity.TimeRange) *dailySeries {
	ds := &dailySeries{points: map[string]*entity.TimeSeriesPoint{}}
	cur := dayStart(tr.From)
	end := dayStart(tr.To)
	for !cur.After(end) {
		key := cur.Format(dayKey)
		ds.keys = append(ds.keys, key)
		ds.points[key] = &entity.TimeSeriesPoint{Date: cur, Value: decimal.Zero}
		cur = cur.AddDate(0, 0, 1)
	}
	return ds
}

// Add folds a value into the bucket of t. Timestamps outside the seeded
// range are dropped rather than growing the series.
func (ds *dailySeries) Add(t time.Time, v decimal.Decimal) {
	p, ok := ds.points[dayStart(t).Format(dayKey)]
	if !ok {
		return
	}
	p.Value = p.Value.Add(v)
	p.Count++
}

// AddCount increments the bucket of t by one.
func (ds *dailySeries) AddCount(t time.Time) {
	ds.Add(t, decimal.NewFromInt(1))
}

// SetCount overwrites the count of the bucket of t, used for per-day
// distinct counts computed outside the accumulator.
func (ds *dailySeries) SetCount(t time.Time, n int) {
	p, ok := ds.points[dayStart(t).Format(dayKey)]
	if !ok {
		return
	}
	p.Count = n
	p.Value = decimal.NewFromInt(int64(n))
}

// Points returns the dense series in chronological order.
func (ds *dailySeries) Points() []entity.TimeSeriesPoint {
	out := make([]entity.TimeSeriesPoint, 0, len(ds.keys))
	for _, k := range ds.keys {
		out = append(out, *ds.points[k])
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
