package cli

import (
	"encoding/json"
	"fmt"

	"school-schedule/internal/models"

	"github.com/spf13/cobra"
)

func init() {
	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course in a school",
		Run:   runCourseAdd,
	}
	addCmd.Flags().String("school", "", "School id (required)")
	addCmd.Flags().String("name", "", "Course name (required)")
	addCmd.Flags().StringP("level", "l", string(models.LevelBasic), "Academic level: BASIC or MIDDLE")
	addCmd.MarkFlagRequired("school")
	addCmd.MarkFlagRequired("name")

	courseCmd.AddCommand(addCmd)
	RootCmd.AddCommand(courseCmd)
}

func runCourseAdd(cmd *cobra.Command, args []string) {
	schoolID, _ := cmd.Flags().GetString("school")
	name, _ := cmd.Flags().GetString("name")
	levelStr, _ := cmd.Flags().GetString("level")

	level, ok := models.ParseAcademicLevel(levelStr)
	if !ok {
		exitErr("course add", fmt.Errorf("unknown academic level %q", levelStr))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	course := &models.Course{SchoolID: schoolID, Name: name, AcademicLevel: level}
	if _, err := s.CreateCourse(cmd.Context(), course); err != nil {
		exitErr("course add", err)
	}

	b, _ := json.MarshalIndent(course, "", "  ")
	fmt.Println(string(b))
}
