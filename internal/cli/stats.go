package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show deprecated schedule statistics of a school",
		Run:   runStats,
	}

	cmd.Flags().String("school", "", "School id (required)")
	cmd.MarkFlagRequired("school")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	schoolID, _ := cmd.Flags().GetString("school")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := newService(s).DeprecatedStats(adminContext(cmd.Context()), schoolID)
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
