// ABOUTME: Search command ranking entries against a free-text query
// ABOUTME: Prints highlighted previews with scores and a stats footer

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/search"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"s", "find"},
	Short:   "Search entries",
	Long: `Search active entries with relevance scoring.

Matches are accent- and case-insensitive by default. Whole-word mode
restricts matching to word boundaries and needs at least one query
token of three or more characters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		wholeWords, _ := cmd.Flags().GetBool("whole-words")
		caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
		minScore, _ := cmd.Flags().GetFloat64("min-score")

		scfg := cfg.SearchSettings()
		if cmd.Flags().Changed("whole-words") {
			scfg.WholeWordsOnly = wholeWords
		}
		if cmd.Flags().Changed("case-sensitive") {
			scfg.CaseSensitive = caseSensitive
		}
		if cmd.Flags().Changed("min-score") {
			scfg.MinScore = minScore
		}

		entries, err := journal.LoadActiveEntries()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		results, stats := search.Search(entries, query, scfg)

		faint := color.New(color.Faint).SprintFunc()
		boldFn := color.New(color.Bold).SprintFunc()

		if !stats.IsValidQuery {
			switch stats.InvalidReason {
			case search.ReasonTooShort:
				fmt.Printf("Query too short (minimum %d characters)\n", scfg.MinQueryLength)
			case search.ReasonNeedsWholeWords:
				fmt.Println("Whole-word search needs a word of at least 3 characters")
			default:
				fmt.Println("Nothing to search for")
			}
			return nil
		}

		if len(results) == 0 {
			fmt.Println("No matches")
			return nil
		}

		for _, r := range results {
			fmt.Print(faint(shortID(r.Entry.ID)))
			fmt.Print(" ")
			fmt.Printf("%-6s", r.Entry.Date)
			fmt.Print(" ")
			fmt.Print(faint(fmt.Sprintf("%.2f", r.Score)))
			fmt.Print(" ")
			// Render highlighted segments with terminal bold instead of
			// the ** transport delimiters.
			for _, seg := range r.Segments {
				if seg.Highlighted {
					fmt.Print(boldFn(seg.Text))
				} else {
					fmt.Print(seg.Text)
				}
			}
			fmt.Println()
		}

		fmt.Println(faint(fmt.Sprintf("%d matches, avg score %.2f", stats.TotalResults, stats.AverageScore)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("whole-words", "w", false, "match whole words only")
	searchCmd.Flags().Bool("case-sensitive", false, "match case exactly")
	searchCmd.Flags().Float64("min-score", 0, "minimum relevance score (0-1)")
}
