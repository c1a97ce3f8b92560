package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/viet-steno/internal/model"
	"github.com/rcliao/viet-steno/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the words of a saved build",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("build", "b", "", "Build ID (default: latest)")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	buildID, _ := cmd.Flags().GetString("build")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		BuildID: buildID,
		Query:   query,
		Limit:   limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if results == nil {
		results = []model.Entry{}
	}
	printResult(cmd, results)
}
