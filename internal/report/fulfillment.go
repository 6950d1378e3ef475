package report

import (
	"sort"

	"github.com/nurpe/yardops/internal/model"
)

// AggregateFulfillment pairs planned task counts with completed counts per
// scheduled calendar day, over the entire task history. It ignores any report
// window: schedule adherence is a property of the plan, not of a query range.
func (e *Engine) AggregateFulfillment(rows []model.TaskPlanFact) []model.FulfillmentRow {
	type planFact struct {
		planned int64
		fact    int64
	}
	buckets := make(map[string]*planFact)
	for _, row := range rows {
		key := row.PlanDate.Format("2006-01-02")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &planFact{}
			buckets[key] = bucket
		}
		bucket.planned++
		if row.Completed {
			bucket.fact++
		}
	}

	result := make([]model.FulfillmentRow, 0, len(buckets))
	for date, bucket := range buckets {
		result = append(result, model.FulfillmentRow{
			Date:    date,
			Planned: bucket.planned,
			Fact:    bucket.fact,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}
