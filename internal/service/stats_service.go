package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/yardops/internal/config"
	"github.com/nurpe/yardops/internal/model"
	"github.com/nurpe/yardops/internal/report"
)

// StatsRepository is the read boundary of the reporting engine.
type StatsRepository interface {
	LoadStatsSnapshot(ctx context.Context, from, to, now time.Time) (model.StatsSnapshot, error)
	ListVisitEntries(ctx context.Context) ([]time.Time, error)
	ListTaskPlanFacts(ctx context.Context) ([]model.TaskPlanFact, error)
}

type ReportExporter interface {
	Generate(report model.StatsReport) ([]byte, error)
}

type StatsService struct {
	repo   StatsRepository
	engine *report.Engine
	excel  ReportExporter
	pdf    ReportExporter
	clock  func() time.Time
}

func NewStatsService(repo StatsRepository, excel, pdf ReportExporter, cfg *config.Config) *StatsService {
	return &StatsService{
		repo:   repo,
		engine: report.NewEngine(cfg.Stats.TopWarehouses),
		excel:  excel,
		pdf:    pdf,
		clock:  time.Now,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// GenerateReport computes the yard report for the requested window. Empty
// bounds default independently: from to seven days ago, to to today. An
// unparseable bound is a caller mistake and never degrades to a default.
func (s *StatsService) GenerateReport(ctx context.Context, fromRaw, toRaw string) (*model.StatsReport, error) {
	window, err := parseWindow(fromRaw, toRaw)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	from, to := report.ResolveWindow(now, window)
	snap, err := s.repo.LoadStatsSnapshot(ctx, from, to, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	result := s.engine.Generate(now, window, snap)
	return &result, nil
}

func (s *StatsService) ExportReport(ctx context.Context, fromRaw, toRaw string) (*ExportResult, error) {
	return s.export(ctx, fromRaw, toRaw, s.excel, "xlsx")
}

func (s *StatsService) ExportReportPDF(ctx context.Context, fromRaw, toRaw string) (*ExportResult, error) {
	return s.export(ctx, fromRaw, toRaw, s.pdf, "pdf")
}

func (s *StatsService) export(ctx context.Context, fromRaw, toRaw string, exporter ReportExporter, extension string) (*ExportResult, error) {
	statsReport, err := s.GenerateReport(ctx, fromRaw, toRaw)
	if err != nil {
		return nil, err
	}

	content, err := exporter.Generate(*statsReport)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("yard-report-%s-%s.%s",
		statsReport.WindowFrom, statsReport.WindowTo, extension)
	return &ExportResult{FileName: fileName, Content: content}, nil
}

// AggregateVisits buckets the entire visit history by day, week or month.
func (s *StatsService) AggregateVisits(ctx context.Context, groupByRaw string) ([]model.PeriodCount, error) {
	groupBy, ok := report.ParsePeriodGrouping(strings.TrimSpace(groupByRaw))
	if !ok {
		return nil, fmt.Errorf("%w: group_by must be day, week or month", ErrInvalidInput)
	}

	entries, err := s.repo.ListVisitEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	return s.engine.AggregateVisits(groupBy, entries), nil
}

// AggregateFulfillment reports planned vs completed tasks per scheduled day,
// over the whole task history.
func (s *StatsService) AggregateFulfillment(ctx context.Context) ([]model.FulfillmentRow, error) {
	facts, err := s.repo.ListTaskPlanFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	return s.engine.AggregateFulfillment(facts), nil
}

func parseWindow(fromRaw, toRaw string) (report.Window, error) {
	var window report.Window

	from, err := parseOptionalDate(fromRaw)
	if err != nil {
		return report.Window{}, fmt.Errorf("%w: from=%q", ErrInvalidDateFormat, fromRaw)
	}
	window.From = from

	to, err := parseOptionalDate(toRaw)
	if err != nil {
		return report.Window{}, fmt.Errorf("%w: to=%q", ErrInvalidDateFormat, toRaw)
	}
	window.To = to

	return window, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unparseable date %q", raw)
}
