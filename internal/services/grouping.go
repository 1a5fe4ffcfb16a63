package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/models"
	"github.com/dmaskell/ledgerview-backend/pkg/helpers"
)

// Synthetic rollup keys.
const (
	totalKey         = "total"
	uncategorizedKey = "uncategorized"
	unknownPayeeKey  = "unknown"
)

// groupingStrategy derives the rollup key for a unit and the display
// metadata for a key. first is the first unit observed under the key, kept
// for denormalized fallbacks (payee names).
type groupingStrategy interface {
	Key(u ExpandedUnit) string
	Describe(key string, first ExpandedUnit) (label, color string)
}

func strategyFor(groupBy string, categories map[string]*models.Category, payees map[string]*models.Payee) groupingStrategy {
	switch groupBy {
	case dto.GroupByCategory:
		return categoryGrouping{categories: categories}
	case dto.GroupByPayee:
		return payeeGrouping{payees: payees}
	case dto.GroupByDay, dto.GroupByWeek, dto.GroupByMonth, dto.GroupByYear:
		return timeGrouping{bucket: groupBy}
	default:
		return totalGrouping{}
	}
}

func isTimeBucket(groupBy string) bool {
	switch groupBy {
	case dto.GroupByDay, dto.GroupByWeek, dto.GroupByMonth, dto.GroupByYear:
		return true
	}
	return false
}

// groupAccum is one rollup in progress: converted absolute sum, unit count,
// and the first unit seen under the key.
type groupAccum struct {
	key   string
	sum   float64
	count int
	first ExpandedUnit
}

// aggregateGroups reduces units into keyed sums and counts, converting each
// amount into the target currency as it is added. Insertion order is kept so
// later sorts have a stable base.
func aggregateGroups(ctx context.Context, strategy groupingStrategy, units []ExpandedUnit, target string, rates *rateTable) []*groupAccum {
	index := map[string]*groupAccum{}
	var groups []*groupAccum
	for _, u := range units {
		key := strategy.Key(u)
		g, ok := index[key]
		if !ok {
			g = &groupAccum{key: key, first: u}
			index[key] = g
			groups = append(groups, g)
		}
		g.sum += rates.Convert(ctx, math.Abs(u.Amount()), u.Currency(), target)
		g.count++
	}
	return groups
}

// buildGroupedPoints turns accumulated groups into data points with the
// requested metric and each point's share of the total value.
func buildGroupedPoints(metric string, strategy groupingStrategy, groups []*groupAccum) []dto.AggregatedDataPoint {
	points := make([]dto.AggregatedDataPoint, len(groups))
	for i, g := range groups {
		label, color := strategy.Describe(g.key, g.first)
		count := g.count
		points[i] = dto.AggregatedDataPoint{
			ID:    g.key,
			Label: label,
			Color: color,
			Value: metricValue(metric, g.sum, g.count),
			Count: &count,
		}
	}
	applyPercentages(points)
	return points
}

func applyPercentages(points []dto.AggregatedDataPoint) {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	for i := range points {
		pct := 0.0
		if total != 0 {
			pct = round2(points[i].Value / total * 100)
		}
		points[i].Percentage = helpers.Ptr(pct)
	}
}

func sortByValueDesc(points []dto.AggregatedDataPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
}

// --- Row listing (groupBy none, metric none) ---

// rowPoints emits one data point per expanded unit, carrying the
// transaction-level fields for table views. Each point gets a fresh id so a
// split entry's allocations never collide.
func rowPoints(ctx context.Context, units []ExpandedUnit, target string, rates *rateTable) []dto.AggregatedDataPoint {
	points := make([]dto.AggregatedDataPoint, 0, len(units))
	for _, u := range units {
		points = append(points, dto.AggregatedDataPoint{
			ID:          uuid.New().String(),
			Label:       rowLabel(u),
			Value:       round2(rates.Convert(ctx, math.Abs(u.Amount()), u.Currency(), target)),
			Count:       helpers.Ptr(1),
			Date:        u.Entry.Date,
			Payee:       u.Entry.PayeeName,
			Description: u.Entry.Description,
			Memo:        u.Memo(),
			Category:    u.CategoryID(),
			Account:     u.Entry.AccountID,
		})
	}
	return points
}

func rowLabel(u ExpandedUnit) string {
	if memo := u.Memo(); memo != "" {
		return memo
	}
	if u.Entry.PayeeName != "" {
		return u.Entry.PayeeName
	}
	if u.Entry.Description != "" {
		return u.Entry.Description
	}
	return "Transaction"
}

// --- Strategies ---

type totalGrouping struct{}

func (totalGrouping) Key(ExpandedUnit) string { return totalKey }

func (totalGrouping) Describe(string, ExpandedUnit) (string, string) { return "Total", "" }

type categoryGrouping struct {
	categories map[string]*models.Category
}

// Key folds missing and stale category ids into the uncategorized bucket.
func (g categoryGrouping) Key(u ExpandedUnit) string {
	id := u.CategoryID()
	if id == "" {
		return uncategorizedKey
	}
	if _, ok := g.categories[id]; !ok {
		return uncategorizedKey
	}
	return id
}

func (g categoryGrouping) Describe(key string, _ ExpandedUnit) (string, string) {
	if c, ok := g.categories[key]; ok {
		return c.Name, c.Color
	}
	return "Uncategorized", ""
}

type payeeGrouping struct {
	payees map[string]*models.Payee
}

func (g payeeGrouping) Key(u ExpandedUnit) string {
	if u.Entry.PayeeID == "" {
		return unknownPayeeKey
	}
	return u.Entry.PayeeID
}

// Describe prefers the directory name, then the entry's denormalized payee
// name, then "Unknown".
func (g payeeGrouping) Describe(key string, first ExpandedUnit) (string, string) {
	if p, ok := g.payees[key]; ok && p.Name != "" {
		return p.Name, ""
	}
	if first.Entry != nil && first.Entry.PayeeName != "" {
		return first.Entry.PayeeName, ""
	}
	return "Unknown", ""
}

type timeGrouping struct {
	bucket string
}

func (g timeGrouping) Key(u ExpandedUnit) string {
	t, err := time.Parse(dateLayout, u.Entry.Date)
	if err != nil {
		return u.Entry.Date
	}
	return g.keyFor(g.bucketStart(t))
}

func (g timeGrouping) Describe(key string, _ ExpandedUnit) (string, string) {
	switch g.bucket {
	case dto.GroupByDay:
		if t, err := time.Parse(dateLayout, key); err == nil {
			return t.Format("Jan 2, 2006"), ""
		}
	case dto.GroupByWeek:
		if t, err := time.Parse(dateLayout, key); err == nil {
			return "Week of " + t.Format("Jan 2"), ""
		}
	case dto.GroupByMonth:
		if t, err := time.Parse("2006-01", key); err == nil {
			return t.Format("Jan 2006"), ""
		}
	}
	return key, ""
}

func (g timeGrouping) bucketStart(t time.Time) time.Time {
	switch g.bucket {
	case dto.GroupByWeek:
		return mondayOfWeek(t)
	case dto.GroupByMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case dto.GroupByYear:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

func (g timeGrouping) next(t time.Time) time.Time {
	switch g.bucket {
	case dto.GroupByWeek:
		return t.AddDate(0, 0, 7)
	case dto.GroupByMonth:
		return t.AddDate(0, 1, 0)
	case dto.GroupByYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func (g timeGrouping) keyFor(t time.Time) string {
	switch g.bucket {
	case dto.GroupByMonth:
		return t.Format("2006-01")
	case dto.GroupByYear:
		return t.Format("2006")
	default:
		return t.Format(dateLayout)
	}
}

// zeroFill returns the groups in chronological bucket order, inserting an
// empty group for every calendar bucket of the timeframe that saw no
// activity. Groups whose key falls outside the enumerable range (such as
// unparseable dates) are kept at the end.
func (g timeGrouping) zeroFill(groups []*groupAccum, tf dto.Timeframe) []*groupAccum {
	start, errStart := time.Parse(dateLayout, tf.StartDate)
	end, errEnd := time.Parse(dateLayout, tf.EndDate)
	if errStart != nil || errEnd != nil {
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
		return groups
	}

	pending := make(map[string]*groupAccum, len(groups))
	for _, grp := range groups {
		pending[grp.key] = grp
	}

	var out []*groupAccum
	for cur := g.bucketStart(start); !cur.After(end); cur = g.next(cur) {
		key := g.keyFor(cur)
		if grp, ok := pending[key]; ok {
			out = append(out, grp)
			delete(pending, key)
		} else {
			out = append(out, &groupAccum{key: key})
		}
	}
	for _, grp := range groups {
		if _, ok := pending[grp.key]; ok {
			out = append(out, grp)
		}
	}
	return out
}

func mondayOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // ISO: Sunday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
