// Package outwriter has output and writer logic for the data command.
package outwriter

import (
	"fmt"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/internal/parquet"
	"github.com/flashcode/gitchart/schema"
)

// CategoryRow is one key/count pair of a flattened table, with its share
// of the total in percent.
type CategoryRow struct {
	Key   string
	Count int
	Share float64
}

// WriteChartData dumps the aggregated table behind a chart, dispatching
// on the configured output format.
func WriteChartData(data *schema.ChartData, cfg *contract.Config) error {
	rows := flattenRows(data)

	switch cfg.Output {
	case schema.CSVOut:
		if err := writeCategoryCSV(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.JSONOut:
		if err := writeCategoryJSON(data, rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeCategoryParquet(data, rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeCategoryTable(data, rows, cfg)
	}
	return nil
}

// flattenRows turns chart data into a flat row list. The hour-of-week
// matrix flattens to one row per weekday and hour pair.
func flattenRows(data *schema.ChartData) []CategoryRow {
	var rows []CategoryRow
	total := 0

	if len(data.SeriesKeys) > 0 {
		for _, day := range data.SeriesKeys {
			for hour, count := range data.Series[day] {
				rows = append(rows, CategoryRow{
					Key:   fmt.Sprintf("%s %02d", day, hour),
					Count: count,
				})
				total += count
			}
		}
	} else {
		for i, key := range data.Keys {
			rows = append(rows, CategoryRow{Key: key, Count: data.Values[i]})
			total += data.Values[i]
		}
	}

	if total > 0 {
		for i := range rows {
			rows[i].Share = 100 * float64(rows[i].Count) / float64(total)
		}
	}
	return rows
}

// writeCategoryParquet exports the rows with the parquet package. Parquet
// is a seekable binary format, so stdout is not a valid target.
func writeCategoryParquet(data *schema.ChartData, rows []CategoryRow, cfg *contract.Config) error {
	if cfg.OutputFile == contract.StdoutTarget {
		return contract.NewConfigError("parquet output requires an output file, use --output-file")
	}
	records := make([]parquet.CategoryRecord, len(rows))
	for i, r := range rows {
		records[i] = parquet.CategoryRecord{
			Kind:  string(data.Kind),
			Key:   r.Key,
			Count: int64(r.Count),
			Share: r.Share,
		}
	}
	return parquet.WriteCategoryRecords(records, cfg.OutputFile)
}
