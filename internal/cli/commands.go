package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/items"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var (
		search  string
		orderBy string
		desc    bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the item list",
		Long: `Fetch the items and print them sorted by title.

Example:
  roster ls
  roster ls --search milk --desc
  roster ls --order desc
  roster ls --json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, ok := items.ParseSortOrder(orderBy)
			if !ok {
				return usageError{fmt.Errorf("invalid --order %q (want asc or desc)", orderBy)}
			}
			if desc {
				order = items.SortDesc
			}

			env, err := app.Setup(flags.options())
			if err != nil {
				return err
			}
			if err := app.Refresh(cmd.Context(), env.Store, env.Client); err != nil {
				return err
			}

			d := items.Deriver{Locale: env.Config.Language()}
			view := env.Store.Snapshot().View(items.Preferences{Query: search, Order: order}, &d)

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if view.Items == nil {
					view.Items = []items.Item{}
				}
				return enc.Encode(view.Items)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE")
			for _, it := range view.Items {
				fmt.Fprintf(tw, "%d\t%s\n", it.ID, it.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show titles containing this text")
	cmd.Flags().StringVar(&orderBy, "order", "asc", "title order: asc or desc")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort titles Z to A (same as --order desc)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create an item",
		Long: `Create an item. All arguments are joined into the title.

Example:
  roster add Buy more coffee`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(flags.options())
			if err != nil {
				return err
			}
			draft := items.Draft{Title: strings.Join(args, " ")}
			item, err := app.Create(cmd.Context(), env.Store, env.Client, draft)
			if err != nil {
				if errors.Is(err, items.ErrEmptyTitle) {
					return usageError{err}
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item %d: %s\n", item.ID, item.Title)
			return nil
		},
	}
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item by ID",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return usageError{fmt.Errorf("invalid item id %q", args[0])}
			}

			env, err := app.Setup(flags.options())
			if err != nil {
				return err
			}
			// Deletes only apply to items the store has seen.
			if err := app.Refresh(cmd.Context(), env.Store, env.Client); err != nil {
				return err
			}
			if err := app.Delete(cmd.Context(), env.Store, env.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roster %s\n", Version)
		},
	}
}
