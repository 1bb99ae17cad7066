package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/llm"
	"github.com/abhisek/discern/internal/store"
	"github.com/abhisek/discern/internal/ui/components"
	"github.com/abhisek/discern/internal/ui/layout"
	"github.com/abhisek/discern/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded theme-extraction and synthesis calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		rows := make([][]string, 0, len(events))
		for _, e := range events {
			rows = append(rows, []string{
				strconv.Itoa(e.ID),
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
				outcome(e.Success),
			})
		}
		fmt.Fprintln(out, components.Table(
			[]string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "Status"}, rows, 7))
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full prompt and reply of an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		meta := components.Table([]string{"Field", "Value"}, [][]string{
			{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Purpose", e.Purpose},
			{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"Status", outcome(e.Success)},
		}, -1)

		blocks := []string{
			layout.RenderHeader(fmt.Sprintf("LLM event %d", e.ID), ""),
			meta,
		}
		if e.ErrorMessage != "" {
			blocks = append(blocks, layout.RenderSection("Error", theme.Failure.Render(e.ErrorMessage)))
		}
		blocks = append(blocks,
			layout.RenderSection("Request", e.RequestBody),
			layout.RenderSection("Response", e.ResponseBody),
		)
		fmt.Fprintln(cmd.OutOrStdout(), layout.Join(blocks...))
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		renderUsage(out, byPurpose, byModel)
		return nil
	},
}

// renderUsage prints usage per purpose and an estimated cost per model.
// Models without a known price are listed and left out of the total.
func renderUsage(w io.Writer, byPurpose, byModel []store.LLMUsageStats) {
	var calls, in, outTok int
	purposeRows := make([][]string, 0, len(byPurpose)+1)
	for _, st := range byPurpose {
		purposeRows = append(purposeRows, []string{
			st.Key,
			strconv.Itoa(st.Calls),
			strconv.Itoa(st.InputTokens),
			strconv.Itoa(st.OutputTokens),
			fmt.Sprintf("%.0f", st.AvgLatencyMs),
		})
		calls += st.Calls
		in += st.InputTokens
		outTok += st.OutputTokens
	}
	purposeRows = append(purposeRows, []string{
		"TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(outTok), "",
	})

	var total float64
	var unknown []string
	modelRows := make([][]string, 0, len(byModel)+1)
	for _, mu := range byModel {
		cost := "?"
		if price := llm.LookupCost(mu.Key); price != nil {
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unknown = append(unknown, mu.Key)
		}
		modelRows = append(modelRows, []string{
			truncate(mu.Key, 32),
			strconv.Itoa(mu.Calls),
			strconv.Itoa(mu.InputTokens),
			strconv.Itoa(mu.OutputTokens),
			cost,
		})
	}
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	modelRows = append(modelRows, []string{label, "", "", "", formatCost(total)})

	blocks := []string{
		layout.RenderSection("Usage by purpose",
			components.Table([]string{"Purpose", "Calls", "Input", "Output", "Avg ms"}, purposeRows, -1)),
		layout.RenderSection("Estimated cost (USD)",
			components.Table([]string{"Model", "Calls", "Input", "Output", "Cost"}, modelRows, -1)),
	}
	if len(unknown) > 0 {
		blocks = append(blocks, theme.Hint.Render(fmt.Sprintf("Pricing unavailable for: %v", unknown)))
	}
	fmt.Fprintln(w, layout.Join(blocks...))
}

func outcome(success bool) string {
	if success {
		return "ok"
	}
	return "failed"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose ("+llm.PurposeThemes+", "+llm.PurposeSynthesis+")")
	llmListCmd.Flags().Duration("since", 0, "Only show events newer than this, e.g. 24h")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
