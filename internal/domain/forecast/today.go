package forecast

import (
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"
)

const todayMaxEntries = 6

// TodayForecast keeps the entries of currentDate strictly after currentEpoch.
// Up to six entries are returned as is, longer runs keep only the last six.
func TodayForecast(list *entity.ForecastList, currentDate string, currentEpoch int64) []entity.TodayEntry {
	entries := []entity.TodayEntry{}
	if list == nil || list.Cod == NotFoundStatus {
		return entries
	}

	day := datePrefix(currentDate)
	for _, item := range list.List {
		if !strings.HasPrefix(item.DtTxt, day) || item.Dt <= currentEpoch {
			continue
		}
		entries = append(entries, entity.TodayEntry{
			Time:        clockTime(item.DtTxt),
			Icon:        item.Icon(),
			Temperature: fmt.Sprintf("%d °C", numberutils.RoundHalfUp(item.Main.Temp)),
		})
	}

	if len(entries) <= todayMaxEntries {
		return entries
	}
	return entries[len(entries)-todayMaxEntries:]
}

func clockTime(dtTxt string) string {
	_, clock, found := strings.Cut(dtTxt, " ")
	if !found {
		return ""
	}
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}
