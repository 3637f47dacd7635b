package packets

import "github.com/puic/quickxs-server/internal/model"

// TodayResponse is the dashboard home view: the ordered class list for
// the current day plus derived summaries.
type TodayResponse struct {
	Date        string              `json:"date"`
	Day         string              `json:"day"`
	Classes     []model.TodayClass  `json:"classes"`
	FreePeriods []model.FreePeriod  `json:"free_periods"`
	Progress    model.DailyProgress `json:"progress"`
}
