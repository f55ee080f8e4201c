package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kuesioner/models"
	"kuesioner/store"
	"kuesioner/survey"
	"kuesioner/tools"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the aggregate report as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, closeStorage, err := openStorage(cmd.Context(), conf, logger)
		if err != nil {
			return err
		}
		defer closeStorage()

		records := store.NewRecordStore(storage, store.WithKey(conf.Storage.Key), store.WithLogger(logger))
		all := records.ReadAll(cmd.Context())
		report, sample := survey.ReportWithFallback(all)

		writeReportHeader(cmd.ErrOrStderr(), all, sample)
		return writeJSON(cmd.OutOrStdout(), report)
	},
}

func writeReportHeader(w io.Writer, records []models.ResponseRecord, sample bool) {
	if sample {
		fmt.Fprintln(w, "Belum ada data, menampilkan data contoh.")
		return
	}
	var last time.Time
	for _, r := range records {
		if ts, ok := r.Timestamp(); ok && ts.After(last) {
			last = ts
		}
	}
	if last.IsZero() {
		fmt.Fprintf(w, "%d responden\n", len(records))
		return
	}
	fmt.Fprintf(w, "%d responden, terakhir %s\n", len(records), tools.FormatDateID(last.In(time.Local)))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
