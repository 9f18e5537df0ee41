package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/schedule"
	"task-suggestion-service/internal/suggestion/segmenter"
	"task-suggestion-service/pkg/datemath"
)

var (
	resolveTimezone string
	resolveDate     string
	resolveTime     string
)

var segmentCmd = &cobra.Command{
	Use:   "segment <text>",
	Short: "Split free text into task phrases",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Default()
		if err != nil {
			return err
		}

		phrases, err := segmenter.New(reg.VerbMatcher()).Segment(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(phrases) == 0 {
			printStatus("⚠", "no task phrases found", color.FgYellow)
			return nil
		}

		for i, p := range phrases {
			verb := p.Verb
			if verb == "" {
				verb = "-"
			}
			fmt.Printf("%2d. %s %s\n", i+1, p.Text, color.CyanString("[%s]", verb))
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a date and time expression to a future instant",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := datemath.NewParser(resolveTimezone)
		if err != nil {
			return err
		}

		res := schedule.Resolve(time.Now(), p.Location(), resolveDate, resolveTime)
		printStatus("✓", fmt.Sprintf("%s %s (%s)", res.Date, res.Time, schedule.FormatDateTime(res.At)), color.FgGreen)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List registry categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Default()
		if err != nil {
			return err
		}

		fmt.Printf("registry %s\n", color.New(color.Bold).Sprint(reg.Version))
		for _, c := range reg.Categories {
			fmt.Printf("  %-16s %s templates=%d topics=%d references=%d\n",
				c.Name, color.HiBlackString("(%s)", c.Duration.Kind), len(c.Templates), len(c.Topics), len(c.References))
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTimezone, "tz", "UTC", "IANA timezone")
	resolveCmd.Flags().StringVar(&resolveDate, "date", "null", "date expression, e.g. tomorrow, next monday, 2024-06-11")
	resolveCmd.Flags().StringVar(&resolveTime, "time", "null", "time expression, e.g. 9am, 14:30, evening")
}
