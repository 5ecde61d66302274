package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
)

var ErrUnknownScope = errors.New("unknown stats scope")

// Stats is the dashboard summary. TotalLogs and Deviations are the counters
// the client has always used; ComplianceScore and Scope are derived.
type Stats struct {
	TotalLogs       int64  `json:"totalLogs"`
	Deviations      int64  `json:"deviations"`
	ComplianceScore int    `json:"complianceScore"`
	Scope           string `json:"scope"`
}

// ComplianceScore is the rounded percentage of readings that are not
// deviations, 100 when there are no readings.
func ComplianceScore(totalLogs, deviations int64) int {
	if totalLogs <= 0 {
		return 100
	}
	if deviations < 0 {
		deviations = 0
	}
	if deviations > totalLogs {
		deviations = totalLogs
	}
	score := math.Round(float64(totalLogs-deviations) / float64(totalLogs) * 100)
	return int(score)
}

func NewStats(counts database.LogCounts, scope string) Stats {
	return Stats{
		TotalLogs:       counts.Total,
		Deviations:      counts.Deviations,
		ComplianceScore: ComplianceScore(counts.Total, counts.Deviations),
		Scope:           scope,
	}
}

// Aggregate computes stats over an in-memory set of logs using the persisted
// deviation flag.
func Aggregate(logs []models.TemperatureLog, scope string) Stats {
	var counts database.LogCounts
	for _, log := range logs {
		counts.Total++
		if log.IsDeviation {
			counts.Deviations++
		}
	}
	return NewStats(counts, scope)
}

// ScopeStart returns the earliest creation time included in scope: the zero
// time for "all", local midnight in loc for "today".
func ScopeStart(scope string, now time.Time, loc *time.Location) (time.Time, error) {
	switch scope {
	case config.ScopeAll:
		return time.Time{}, nil
	case config.ScopeToday:
		if loc == nil {
			loc = time.UTC
		}
		local := now.In(loc)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
}

// StatsService computes dashboard statistics from the store.
type StatsService struct {
	store        database.Store
	defaultScope string
	loc          *time.Location
	now          func() time.Time
}

func NewStatsService(store database.Store, defaultScope string, loc *time.Location) *StatsService {
	if defaultScope == "" {
		defaultScope = config.ScopeAll
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{
		store:        store,
		defaultScope: defaultScope,
		loc:          loc,
		now:          time.Now,
	}
}

// Compute returns stats for scope; an empty scope uses the configured default.
func (s *StatsService) Compute(ctx context.Context, scope string) (Stats, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		scope = s.defaultScope
	}

	since, err := ScopeStart(scope, s.now(), s.loc)
	if err != nil {
		return Stats{}, err
	}

	counts, err := s.store.CountTemperatureLogs(ctx, since)
	if err != nil {
		return Stats{}, err
	}
	return NewStats(counts, scope), nil
}
