package cmd

import (
	"fmt"
	"io"

	"github.com/byxorna/storefront/pkg/app"
	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/text"
	"github.com/spf13/cobra"
)

var (
	listFlags = struct {
		Pages int
	}{}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the catalog without starting the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logging.Setup(logging.Config{
				Level:  logging.Level(cfg.Log.Level),
				Pretty: true,
				Output: cmd.ErrOrStderr(),
			})

			ctrl, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return list(cmd.OutOrStdout(), ctrl, listFlags.Pages)
		},
	}
)

func init() {
	listCmd.Flags().IntVar(&listFlags.Pages, "pages", 1, "number of pages to show")
}

// list runs the initial load, presses load more until pages are shown or the
// catalog runs out, and prints the visible window.
func list(w io.Writer, ctrl *app.Controller, pages int) error {
	msg, ok := ctrl.Init()().(app.FetchedMsg)
	if !ok {
		return fmt.Errorf("unexpected message from catalog fetch")
	}
	if msg.Err != nil {
		return msg.Err
	}
	ctrl.Apply(msg)

	for i := 1; i < pages; i++ {
		if !ctrl.LoadMore() {
			break
		}
	}

	visible := ctrl.State.Visible.Read()
	for _, p := range visible {
		fmt.Fprintf(w, "%-8s %12s  %s %s\n",
			p.ID, "$"+text.FormatPrice(p.Price), text.Column(p.Category, 20), p.Title)
	}
	fmt.Fprintf(w, "\n%d of %d products\n", len(visible), len(ctrl.State.Products.Read()))
	return nil
}
