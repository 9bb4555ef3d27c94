package cli

import (
	"encoding/json"
	"fmt"

	"school-schedule/api"
	"school-schedule/internal/compat"
	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a stored snapshot against a configuration",
		Long:  "Check a stored configuration snapshot against a configuration. Omitted flags fall back to the level defaults.",
		Run:   runCheck,
	}

	cmd.Flags().StringP("snapshot", "s", "", "Snapshot text as stored on the schedule")
	cmd.Flags().StringP("level", "l", string(models.LevelBasic), "Academic level of the current configuration")
	cmd.Flags().String("start", "", "Current day start HH:MM")
	cmd.Flags().String("end", "", "Current day end HH:MM")
	cmd.Flags().Int("block", 0, "Current block duration in minutes")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	RootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	text, _ := cmd.Flags().GetString("snapshot")
	levelStr, _ := cmd.Flags().GetString("level")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	block, _ := cmd.Flags().GetInt("block")
	asJSON, _ := cmd.Flags().GetBool("json")

	level, ok := models.ParseAcademicLevel(levelStr)
	if !ok {
		exitErr("check", fmt.Errorf("unknown academic level %q", levelStr))
	}

	current := compat.FromConfig(timegrid.Default("", level))
	if start != "" {
		current.StartTime = start
	}
	if end != "" {
		current.EndTime = end
	}
	if block != 0 {
		current.BlockDuration = block
	}

	result := compat.Check(compat.ParseSnapshot(text), current)

	if asJSON {
		b, _ := json.MarshalIndent(api.CompatibilityResponse{
			IsCompatible:   result.IsCompatible,
			Issues:         result.Issues,
			CanAutoMigrate: result.CanAutoMigrate,
			Recommendation: string(result.Recommendation),
			Message:        compat.Message(result),
		}, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("recommendation: %s\n", result.Recommendation)
	if !result.IsCompatible {
		fmt.Println(compat.Message(result))
	}
}
