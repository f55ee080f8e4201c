package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kuesioner/controllers"
	"kuesioner/metrics"
	"kuesioner/store"
	"kuesioner/survey"
)

var dryRun bool

var submitCmd = &cobra.Command{
	Use:   "submit [file|-]",
	Short: "Validate, submit and store one response read from a JSON file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		b, err := readInput(path)
		if err != nil {
			return err
		}
		var raw map[string]any
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("invalid json: %w", err)
		}
		record, err := controllers.RecordFromJSON(raw)
		if err != nil {
			return err
		}

		form := survey.DefaultForm()
		progress := survey.EstimateProgress(form, record, form.TotalQuestions)
		fmt.Fprintf(cmd.ErrOrStderr(), "progress: %d%% (%d/%d)\n", progress.Percent, progress.Answered, progress.Total)

		v := survey.NewValidator(form)
		if !v.Validate(record) {
			first, _ := v.FirstInvalid()
			_ = writeJSON(cmd.OutOrStdout(), v.Errors())
			return fmt.Errorf("%s (first: %s)", controllers.MessageIncomplete, first)
		}
		if dryRun {
			fmt.Fprintln(cmd.ErrOrStderr(), "valid")
			return nil
		}

		storage, closeStorage, err := openStorage(cmd.Context(), conf, logger)
		if err != nil {
			return err
		}
		defer closeStorage()

		records := store.NewRecordStore(storage, store.WithKey(conf.Storage.Key), store.WithLogger(logger))
		env := newEnv(records, conf, logger, metrics.New())

		result := env.Submitter.Submit(cmd.Context(), record)
		_, appendErr := records.Append(cmd.Context(), record)
		if appendErr != nil {
			logger.Warn("response not stored locally", zap.Error(appendErr))
		}

		if err := writeJSON(cmd.OutOrStdout(), map[string]any{
			"remote": result,
			"stored": appendErr == nil,
		}); err != nil {
			return err
		}
		if !result.Success {
			return errors.New(controllers.MessageSubmitFailed)
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "only validate and show progress")
}
