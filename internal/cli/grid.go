package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the time grid of a level configuration",
		Long:  "Print the time grid of a level configuration. Omitted flags fall back to the level defaults.",
		Run:   runGrid,
	}

	cmd.Flags().StringP("level", "l", string(models.LevelBasic), "Academic level: BASIC or MIDDLE")
	cmd.Flags().String("start", "", "Day start HH:MM")
	cmd.Flags().String("end", "", "Day end HH:MM")
	cmd.Flags().Int("block", 0, "Block duration in minutes")
	cmd.Flags().StringSlice("break", nil, "Break as AFTER:MINUTES:NAME, repeatable")
	cmd.Flags().Bool("no-breaks", false, "Ignore default breaks")

	RootCmd.AddCommand(cmd)
}

func runGrid(cmd *cobra.Command, args []string) {
	levelStr, _ := cmd.Flags().GetString("level")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	block, _ := cmd.Flags().GetInt("block")
	breakSpecs, _ := cmd.Flags().GetStringSlice("break")
	noBreaks, _ := cmd.Flags().GetBool("no-breaks")

	level, ok := models.ParseAcademicLevel(levelStr)
	if !ok {
		exitErr("grid", fmt.Errorf("unknown academic level %q", levelStr))
	}

	cfg := timegrid.Default("", level)
	if start != "" {
		cfg.StartTime = start
	}
	if end != "" {
		cfg.EndTime = end
	}
	if block != 0 {
		cfg.BlockDuration = block
	}
	if noBreaks {
		cfg.Breaks = []models.BreakConfig{}
	}
	if len(breakSpecs) > 0 {
		breaks, err := parseBreaks(breakSpecs)
		if err != nil {
			exitErr("grid", err)
		}
		cfg.Breaks = breaks
	}

	if err := timegrid.Validate(cfg); err != nil {
		exitErr("grid", err)
	}

	writeGrid(os.Stdout, cfg, timegrid.GenerateTimeSlots(cfg))
}

// parseBreaks reads AFTER:MINUTES:NAME specs. The name may contain colons.
func parseBreaks(specs []string) ([]models.BreakConfig, error) {
	breaks := make([]models.BreakConfig, 0, len(specs))

	for _, raw := range specs {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("break %q: want AFTER:MINUTES[:NAME]", raw)
		}

		after, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("break %q: after block: %w", raw, err)
		}

		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("break %q: duration: %w", raw, err)
		}

		name := "Break"
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			name = strings.TrimSpace(parts[2])
		}

		breaks = append(breaks, models.BreakConfig{AfterBlock: after, Duration: minutes, Name: name})
	}

	return breaks, nil
}

func writeGrid(w io.Writer, cfg models.ScheduleLevelConfig, slots []models.TimeSlot) {
	fmt.Fprintf(w, "%s %s-%s, %d min blocks\n", cfg.AcademicLevel, cfg.StartTime, cfg.EndTime, cfg.BlockDuration)

	for _, slot := range slots {
		switch slot.Type {
		case models.SlotBlock:
			fmt.Fprintf(w, "  %s-%s  block %d\n", slot.Time, slot.EndTime, slot.BlockNumber)
		case models.SlotBreak:
			fmt.Fprintf(w, "  %s-%s  %s\n", slot.Time, slot.EndTime, slot.BreakName)
		}
	}
}
