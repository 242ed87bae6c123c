package console

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ipweather/internal/weather"
)

// WriteTemperatureChart renders the 2m temperature of the whole data series as
// an HTML line chart, timestamped on now's clock.
func WriteTemperatureChart(w io.Writer, f *weather.Forecast, now time.Time) error {
	series := weather.Series(f, now)

	xAxis := make([]string, 0, len(series))
	temps := make([]opts.LineData, 0, len(series))
	for _, slot := range series {
		xAxis = append(xAxis, slot.ValidAt.Format(TimestampLayout))
		temps = append(temps, opts.LineData{
			Value: f.Entries[slot.Index].Temperature,
			Name:  slot.Entry.Weather,
		})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Forecast for " + f.Location.Label,
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Location.Label,
			Subtitle: "7Timer! civil, init " + f.Init.Format(weather.InitTimeLayout) + " UTC",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "°F",
		}),
	)

	line.SetXAxis(xAxis).
		AddSeries("Temperature", temps,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
