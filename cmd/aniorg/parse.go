package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniorg/pkg/episode"
)

var parseCmd = &cobra.Command{
	Use:   "parse <filename>",
	Short: "Parse a release filename and show the extracted fields",
	Long: `Parse a release filename and show the extracted fields.

Runs the same grammar the organize command uses, without touching the
filesystem. Useful for checking why a file was skipped.

Examples:
  aniorg parse "[ANi] 葬送的芙莉蓮 - 07 [1080P][WEB-DL].mp4"
  aniorg parse --json "/downloads/[SubsPlease] Frieren - 12 [1080p].mkv"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("json", false, "Output as JSON")
}

// parseResultJSON is the JSON-friendly representation of a parse.
type parseResultJSON struct {
	Group          string `json:"group"`
	Title          string `json:"title"`
	CleanTitle     string `json:"clean_title"`
	Episode        string `json:"episode"`
	Tags           string `json:"tags"`
	Extension      string `json:"extension"`
	TargetFilename string `json:"target_filename"`
}

func runParse(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	info, ok := episode.Parse(args[0])
	if !ok {
		return fmt.Errorf("not recognized: %s", args[0])
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parseResultJSON{
			Group:          info.Group,
			Title:          info.Title,
			CleanTitle:     episode.CleanTitle(info.Title),
			Episode:        info.Episode,
			Tags:           info.Tags,
			Extension:      info.Extension,
			TargetFilename: info.TargetFilename(),
		})
	}

	fmt.Printf("Group:      %s\n", info.Group)
	fmt.Printf("Title:      %s\n", info.Title)
	fmt.Printf("Episode:    %s\n", info.Episode)
	fmt.Printf("Tags:       %s\n", info.Tags)
	fmt.Printf("Extension:  %s\n", info.Extension)
	fmt.Printf("Organized:  %s\n", filepath.Join(info.Title, info.TargetFilename()))
	return nil
}
