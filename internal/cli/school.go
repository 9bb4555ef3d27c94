package cli

import (
	"encoding/json"
	"fmt"

	"school-schedule/internal/models"

	"github.com/spf13/cobra"
)

func init() {
	schoolCmd := &cobra.Command{
		Use:   "school",
		Short: "Manage schools",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a school",
		Run:   runSchoolAdd,
	}
	addCmd.Flags().String("name", "", "School name (required)")
	addCmd.Flags().String("owner", "", "Owner user id (required)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("owner")

	schoolCmd.AddCommand(addCmd)
	RootCmd.AddCommand(schoolCmd)
}

func runSchoolAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	owner, _ := cmd.Flags().GetString("owner")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	school := &models.School{Name: name, OwnerID: owner}
	if _, err := s.CreateSchool(cmd.Context(), school); err != nil {
		exitErr("school add", err)
	}

	b, _ := json.MarshalIndent(school, "", "  ")
	fmt.Println(string(b))
}
