package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
	"github.com/dmaskell/ledgerview-backend/pkg/helpers"
)

const defaultCurrency = "USD"

// reportDefinitionStore is the Firestore storage interface for saved report
// definitions.
type reportDefinitionStore interface {
	Get(ctx context.Context, reportID string) (*models.ReportDefinition, error)
	List(ctx context.Context, ownerID string) ([]*models.ReportDefinition, error)
}

// ledgerStore runs a compiled predicate and returns matching entries with
// splits attached, ascending by date.
type ledgerStore interface {
	Query(ctx context.Context, ownerID string, q dto.LedgerQuery) ([]*models.LedgerEntry, error)
}

type categoryDirectory interface {
	Find(ctx context.Context, ownerID string) ([]*models.Category, error)
}

type payeeDirectory interface {
	Find(ctx context.Context, ownerID string) ([]*models.Payee, error)
}

type exchangeRateSource interface {
	LatestRates(ctx context.Context) ([]*models.ExchangeRate, error)
}

type preferenceStore interface {
	Get(ctx context.Context, ownerID string) (*models.UserPreferences, error)
}

type reportService struct {
	reports    reportDefinitionStore
	ledger     ledgerStore
	categories categoryDirectory
	payees     payeeDirectory
	rates      exchangeRateSource
	prefs      preferenceStore
	now        func() time.Time
}

func NewReportService(
	reports reportDefinitionStore,
	ledger ledgerStore,
	categories categoryDirectory,
	payees payeeDirectory,
	rates exchangeRateSource,
	prefs preferenceStore,
) *reportService {
	return &reportService{
		reports:    reports,
		ledger:     ledger,
		categories: categories,
		payees:     payees,
		rates:      rates,
		prefs:      prefs,
		now:        time.Now,
	}
}

func (s *reportService) ListReports(ctx context.Context, uid string) ([]*models.ReportDefinition, error) {
	return s.reports.List(ctx, uid)
}

// GetReport loads a definition and enforces ownership: a definition that
// exists but belongs to someone else is Forbidden, not NotFound.
func (s *reportService) GetReport(ctx context.Context, uid, reportID string) (*models.ReportDefinition, error) {
	def, err := s.reports.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if def.OwnerID != uid {
		return nil, errs.NewForbiddenError("report belongs to another user")
	}
	return def, nil
}

// Execute runs the full pipeline for one report: resolve the timeframe,
// compile and run the ledger query, expand splits, normalize currencies,
// aggregate, sort, truncate, summarize. It mutates nothing and retries
// nothing; upstream failures surface to the caller as-is.
func (s *reportService) Execute(ctx context.Context, uid, reportID string, req dto.ExecuteReportRequest) (dto.ReportResult, error) {
	def, err := s.GetReport(ctx, uid, reportID)
	if err != nil {
		return dto.ReportResult{}, err
	}
	if err := validateGroupBy(def.GroupBy); err != nil {
		return dto.ReportResult{}, err
	}

	tf, err := resolveTimeframe(def, req, s.now())
	if err != nil {
		return dto.ReportResult{}, err
	}

	entries, err := s.ledger.Query(ctx, uid, compileQuery(def, tf))
	if err != nil {
		return dto.ReportResult{}, err
	}

	target, err := s.targetCurrency(ctx, uid)
	if err != nil {
		return dto.ReportResult{}, err
	}
	rates, err := s.loadRates(ctx, entries, target)
	if err != nil {
		return dto.ReportResult{}, err
	}
	cats, pays, err := s.loadDirectories(ctx, uid, def.GroupBy)
	if err != nil {
		return dto.ReportResult{}, err
	}

	points := s.buildPoints(ctx, def, tf, expandEntries(entries), target, rates, cats, pays)

	// time series stay chronological; explicit sorts apply everywhere else
	if !isTimeBucket(def.GroupBy) {
		applySort(def.Config, points)
	}
	if limit := def.Config.Limit; limit > 0 && len(points) > limit {
		points = points[:limit]
	}

	return dto.ReportResult{
		ReportID:     def.ReportID,
		Name:         def.Name,
		ViewType:     def.ViewType,
		GroupBy:      def.GroupBy,
		Timeframe:    tf,
		Data:         points,
		Summary:      summarize(points),
		TableColumns: def.Config.TableColumns,
	}, nil
}

func (s *reportService) buildPoints(
	ctx context.Context,
	def *models.ReportDefinition,
	tf dto.Timeframe,
	units []ExpandedUnit,
	target string,
	rates *rateTable,
	cats map[string]*models.Category,
	pays map[string]*models.Payee,
) []dto.AggregatedDataPoint {
	metric := def.Config.Metric
	if metric == "" {
		metric = dto.MetricTotalAmount
	}
	groupBy := def.GroupBy
	if groupBy == "" {
		groupBy = dto.GroupByNone
	}

	if groupBy == dto.GroupByNone && metric == dto.MetricNone {
		return rowPoints(ctx, units, target, rates)
	}

	strategy := strategyFor(groupBy, cats, pays)
	groups := aggregateGroups(ctx, strategy, units, target, rates)

	if tg, ok := strategy.(timeGrouping); ok {
		groups = tg.zeroFill(groups, tf)
		return buildGroupedPoints(metric, strategy, groups)
	}

	points := buildGroupedPoints(metric, strategy, groups)
	if groupBy == dto.GroupByNone {
		for i := range points {
			points[i].Percentage = helpers.Ptr(100.0)
		}
	}
	sortByValueDesc(points)
	return points
}

func (s *reportService) targetCurrency(ctx context.Context, uid string) (string, error) {
	prefs, err := s.prefs.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	if prefs == nil || prefs.DefaultCurrency == "" {
		return defaultCurrency, nil
	}
	return strings.ToUpper(prefs.DefaultCurrency), nil
}

// loadRates fetches the latest rate snapshot only when some entry is priced
// in a currency other than the target.
func (s *reportService) loadRates(ctx context.Context, entries []*models.LedgerEntry, target string) (*rateTable, error) {
	needed := false
	for _, e := range entries {
		if e.Currency != "" && !strings.EqualFold(e.Currency, target) {
			needed = true
			break
		}
	}
	if !needed {
		return nil, nil
	}
	list, err := s.rates.LatestRates(ctx)
	if err != nil {
		return nil, err
	}
	return newRateTable(list), nil
}

// loadDirectories fetches only the directory the grouping needs. The two
// fetches are independent, so they run concurrently when both are wanted.
func (s *reportService) loadDirectories(ctx context.Context, uid, groupBy string) (map[string]*models.Category, map[string]*models.Payee, error) {
	needCats := groupBy == dto.GroupByCategory
	needPays := groupBy == dto.GroupByPayee
	if !needCats && !needPays {
		return nil, nil, nil
	}

	var cats map[string]*models.Category
	var pays map[string]*models.Payee

	g, gctx := errgroup.WithContext(ctx)
	if needCats {
		g.Go(func() error {
			list, err := s.categories.Find(gctx, uid)
			if err != nil {
				return err
			}
			cats = make(map[string]*models.Category, len(list))
			for _, c := range list {
				cats[c.CategoryID] = c
			}
			return nil
		})
	}
	if needPays {
		g.Go(func() error {
			list, err := s.payees.Find(gctx, uid)
			if err != nil {
				return err
			}
			pays = make(map[string]*models.Payee, len(list))
			for _, p := range list {
				pays[p.PayeeID] = p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cats, pays, nil
}

func validateGroupBy(groupBy string) error {
	switch groupBy {
	case "", dto.GroupByNone, dto.GroupByCategory, dto.GroupByPayee,
		dto.GroupByDay, dto.GroupByWeek, dto.GroupByMonth, dto.GroupByYear:
		return nil
	}
	return errs.NewUnsupportedGroupByError(groupBy)
}
