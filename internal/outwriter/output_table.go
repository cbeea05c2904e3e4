package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeCategoryTable writes the human-readable table.
func writeCategoryTable(data *schema.ChartData, rows []CategoryRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "Key", "Count", "Share"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		keyWidth := contract.GetMaxTableKeyWidth()
		var body [][]string
		total := 0
		for i, r := range rows {
			share := contract.GetPlainShare(r.Share)
			if cfg.UseColors {
				share = contract.GetColorShare(r.Share)
			}
			body = append(body, []string{
				strconv.Itoa(i + 1),
				contract.TruncateKey(r.Key, keyWidth),
				strconv.Itoa(r.Count),
				share,
			})
			total += r.Count
		}
		if err := table.Bulk(body); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, "%s: %d entries, %d commits total\n", data.Title, len(rows), total)
		return err
	}, "Wrote table")
}

// writeCategoryCSV writes one record per row with a plain share column.
func writeCategoryCSV(rows []CategoryRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"rank", "key", "count", "share"}, func(cw *csv.Writer) error {
			for i, r := range rows {
				rec := []string{
					strconv.Itoa(i + 1),
					r.Key,
					strconv.Itoa(r.Count),
					contract.GetPlainShare(r.Share),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeCategoryJSON wraps the rows with the chart identity so consumers
// do not need the command line that produced the file.
func writeCategoryJSON(data *schema.ChartData, rows []CategoryRow, cfg *contract.Config) error {
	type jsonRow struct {
		Key   string  `json:"key"`
		Count int     `json:"count"`
		Share float64 `json:"share"`
	}
	type jsonDoc struct {
		Kind    string    `json:"kind"`
		Title   string    `json:"title"`
		Total   int       `json:"total"`
		Entries []jsonRow `json:"entries"`
	}

	doc := jsonDoc{
		Kind:    string(data.Kind),
		Title:   data.Title,
		Entries: make([]jsonRow, len(rows)),
	}
	for i, r := range rows {
		doc.Entries[i] = jsonRow{Key: r.Key, Count: r.Count, Share: r.Share}
		doc.Total += r.Count
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, doc)
	}, "Wrote JSON")
}
