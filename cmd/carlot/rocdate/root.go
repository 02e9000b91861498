package rocdate

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/rocdate"
	"github.com/sobadon/carlot/internal/errutil"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rocdate",
		Short: "convert between ROC (民國) and ISO dates",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:     "to-iso <民國日付>...",
		Short:   "072/05/01 -> 1983-05-01",
		Args:    cobra.MinimumNArgs(1),
		Example: "  carlot rocdate to-iso 072/05/01 0720501 民國72年5月1日",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				iso, err := toISO(raw)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), iso)
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "to-roc <YYYY-MM-DD>...",
		Short: "1983-05-01 -> 072/05/01",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, iso := range args {
				display := rocdate.ISOToDisplay(iso)
				if display == "" {
					return errors.Wrapf(errutil.ErrRocDateParse, "not a date after 1912-01-01: %q", iso)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", display, rocdate.ISOToHelper(iso))
			}
			return nil
		},
	})

	return rootCmd
}

// 返されるエラー
// - errutil.ErrRocDateParse
func toISO(raw string) (string, error) {
	parts := rocdate.ParseInput(raw)
	if !parts.Complete() {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "cannot read %q as YYY/MM/DD", raw)
	}
	return parts.ISO()
}
