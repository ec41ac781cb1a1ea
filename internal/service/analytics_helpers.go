package service

import (
	"context"
	"sync"
	"time"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// inParallel runs every task on its own goroutine and waits for all of
// them, returning the first error observed. Tasks must honour ctx so a
// failing sibling can cut them short upstream.
func inParallel(ctx context.Context, tasks ...func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, task := range tasks {
		wg.Add(1)
		go func(run func(context.Context) error) {
			defer wg.Done()
			if err := run(ctx); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(task)
	}
	wg.Wait()
	return firstErr
}

type rangeCountFunc func(ctx context.Context, start, end time.Time) (int, error)

type bucketCountFunc func(ctx context.Context, start, end time.Time, hourly bool) (map[string]int, error)

// growthFor computes growth figures for every reporting window against
// the same reference instant.
func growthFor(ctx context.Context, now time.Time, count rangeCountFunc) (dto.PeriodGrowth, error) {
	var growth dto.PeriodGrowth

	compute := func(p analytics.Period, dest *analytics.Growth) func(context.Context) error {
		return func(ctx context.Context) error {
			w := analytics.WindowFor(p, now)
			current, err := count(ctx, w.Start, w.End)
			if err != nil {
				return err
			}
			previous, err := count(ctx, w.PreviousStart, w.PreviousEnd)
			if err != nil {
				return err
			}
			*dest = analytics.CalculateGrowth(current, previous)
			return nil
		}
	}

	err := inParallel(ctx,
		compute(analytics.PeriodDay, &growth.Daily),
		compute(analytics.PeriodWeek, &growth.Weekly),
		compute(analytics.PeriodMonth, &growth.Monthly),
	)
	return growth, err
}

// timelinesFor renders dense activity timelines for every reporting
// window. The daily window is hourly-bucketed.
func timelinesFor(ctx context.Context, now time.Time, buckets bucketCountFunc) (dto.PeriodTimelines, error) {
	var timelines dto.PeriodTimelines

	compute := func(p analytics.Period, dest *[]analytics.TimelinePoint) func(context.Context) error {
		return func(ctx context.Context) error {
			w := analytics.WindowFor(p, now)
			counts, err := buckets(ctx, w.Start, w.End, p.Hourly())
			if err != nil {
				return err
			}
			*dest = analytics.BuildTimeline(counts, w.Start, w.End, p.Hourly())
			return nil
		}
	}

	err := inParallel(ctx,
		compute(analytics.PeriodDay, &timelines.Daily),
		compute(analytics.PeriodWeek, &timelines.Weekly),
		compute(analytics.PeriodMonth, &timelines.Monthly),
	)
	return timelines, err
}

// emptyIfNil keeps top lists JSON-encoding as [] rather than null.
func emptyIfNil(items []analytics.TopItem) []analytics.TopItem {
	if items == nil {
		return []analytics.TopItem{}
	}
	return items
}

// roleDistribution zero-fills the fixed role set from raw counts.
func roleDistribution(counts map[string]int) dto.RoleDistribution {
	return dto.RoleDistribution{
		Admin:   counts[string(models.RoleAdmin)],
		Alumni:  counts[string(models.RoleAlumni)],
		Student: counts[string(models.RoleStudent)],
	}
}
