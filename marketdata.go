package beefdesk

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// IndexPoint is one day of the import mainstream-cuts price index, with its
// moving averages and the derived CIF cost estimate, all CNY per kilogram.
type IndexPoint struct {
	On         Date
	Price      float64
	MA5        float64
	MA20       float64
	ImportCost float64
}

// IndexSeries is the index history in chronological order.
type IndexSeries struct {
	points []IndexPoint
}

// ParseIndexSeries reads tab-separated "yyyy/m/d<TAB>price" lines, in any
// order, and builds the chronological series. Moving averages use the
// available window when fewer days exist. The import cost estimate sits
// about eight percent under the wholesale index, with a small deterministic
// wobble standing in for freight variation.
func ParseIndexSeries(raw string) (*IndexSeries, error) {
	type obs struct {
		on    Date
		price float64
	}
	var observations []obs
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid index line %q", line)
		}
		t, err := time.Parse("2006/1/2", strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid index date %q: %w", fields[0], err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid index price %q: %w", fields[1], err)
		}
		observations = append(observations, obs{on: NewDate(t.Year(), t.Month(), t.Day()), price: price})
	}
	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].on.Before(observations[j].on)
	})

	s := &IndexSeries{points: make([]IndexPoint, 0, len(observations))}
	window := func(i, n int) float64 {
		lo := i - n + 1
		if lo < 0 {
			lo = 0
		}
		sum := 0.0
		for j := lo; j < i; j++ {
			sum += s.points[j].Price
		}
		sum += observations[i].price
		return sum / float64(i-lo+1)
	}
	for i, o := range observations {
		s.points = append(s.points, IndexPoint{
			On:         o.on,
			Price:      o.price,
			MA5:        window(i, 5),
			MA20:       window(i, 20),
			ImportCost: o.price*0.92 + math.Sin(float64(i))*0.2,
		})
	}
	return s, nil
}

// Points returns the series in chronological order. The slice is a copy.
func (s *IndexSeries) Points() []IndexPoint {
	out := make([]IndexPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of observed days.
func (s *IndexSeries) Len() int { return len(s.points) }

// Latest returns the most recent point, false on an empty series.
func (s *IndexSeries) Latest() (IndexPoint, bool) {
	if len(s.points) == 0 {
		return IndexPoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// Delta returns the day-on-day change of the index, absolute and in
// percent. A series shorter than two days has no change.
func (s *IndexSeries) Delta() (abs, pct float64) {
	if len(s.points) < 2 {
		return 0, 0
	}
	prev := s.points[len(s.points)-2].Price
	last := s.points[len(s.points)-1].Price
	abs = last - prev
	if prev != 0 {
		pct = abs / prev * 100
	}
	return abs, pct
}

// Spread is the domestic wholesale price minus the latest index level.
func (s *IndexSeries) Spread(domestic float64) float64 {
	last, ok := s.Latest()
	if !ok {
		return 0
	}
	return domestic - last.Price
}

// rawIndexData is the China import mainstream-cuts price index, as published,
// reverse chronological.
const rawIndexData = `
2026/10/29	49.075
2026/10/28	49.15
2026/10/27	49.15
2026/10/24	49.35
2026/10/23	49.275
2026/10/22	49.45
2026/10/21	49.375
2026/10/20	49.375
2026/10/17	49.3
2026/10/16	49.325
2026/10/15	49.35
2026/10/14	49.375
2026/10/13	49.375
2026/10/11	49.35
2026/10/10	49.35
2026/10/9	49.4
2026/9/30	49.45
2026/9/29	49.45
2026/9/28	49.35
2026/9/26	49.35
2026/9/25	49.35
2026/9/24	49.5
2026/9/23	49.4
2026/9/22	49.5
2026/9/19	49.5
2026/9/18	49.55
2026/9/17	49.65
2026/9/16	49.65
2026/9/15	49.65
2026/9/12	49.7
2026/9/11	49.7
2026/9/10	49.8
2026/9/9	49.75
2026/9/8	49.75
2026/9/5	49.7
2026/9/4	49.7
2026/9/3	49.85
2026/9/2	49.9
2026/9/1	49.9
2026/8/29	49.55
2026/8/28	49.1
2026/8/27	49.15
2026/8/26	49.3
2026/8/25	49.6
2026/8/22	49.75
2026/8/21	50
2026/8/20	50.2
2026/8/19	50.225
2026/8/18	50.2
2026/8/15	50.1
2026/8/14	50.25
2026/8/13	50.45
2026/8/12	50.5
2026/8/11	50.6
2026/8/8	50.75
2026/8/7	50.75
2026/8/6	50.75
2026/8/5	50.65
2026/8/4	50.6
2026/8/1	50.475
2026/7/31	50.5
2026/7/30	50.7
2026/7/29	50.75
2026/7/28	50.8
2026/7/25	50.85
2026/7/24	50.85
2026/7/23	50.55
2026/7/22	50.7
2026/7/21	51
2026/7/18	51.1
2026/7/17	50.925
`

// DemoIndex returns the published index series used by the demo book.
func DemoIndex() *IndexSeries {
	s, err := ParseIndexSeries(rawIndexData)
	if err != nil {
		panic(err)
	}
	return s
}
