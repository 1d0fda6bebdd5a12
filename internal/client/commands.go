package client

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-delivery-board/internal/adapter"
	"github.com/MKhiriev/go-delivery-board/models"
)

// passwordEnv lets scripts pass a password without a flag.
const passwordEnv = "DELIVERY_BOARD_PASSWORD"

var errConfirmationRequired = errors.New("refusing to delete every record without --yes")

type rootOptions struct {
	JSON bool
}

type filterOptions struct {
	Months        []string
	Departments   []string
	Collaborators []string
}

func (f *filterOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.Months, "month", "m", nil, "reference month YYYY-MM (repeatable)")
	cmd.Flags().StringSliceVarP(&f.Departments, "department", "d", nil, "department (repeatable)")
	cmd.Flags().StringSliceVarP(&f.Collaborators, "collaborator", "c", nil, "collaborator name (repeatable)")
}

func (f *filterOptions) filter() models.DeliveryFilter {
	filter := models.DeliveryFilter{Months: f.Months, Collaborators: f.Collaborators}
	for _, d := range f.Departments {
		filter.Departments = append(filter.Departments, models.Department(d))
	}
	return filter
}

func (a *App) rootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "delivery-board",
		Short:         "Command-line client of the delivery board server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print raw JSON instead of tables")

	cmd.AddCommand(
		a.versionCommand(opts),
		a.sessionCommand(opts),
		a.loginCommand(opts),
		a.logoutCommand(opts),
		a.profileCommand(opts),
		a.setPasswordCommand(),
		a.uploadCommand(opts),
		a.listCommand(opts),
		a.summaryCommand(opts),
		a.filtersCommand(opts),
		a.deleteMonthCommand(opts),
		a.deleteAllCommand(opts),
	)

	return cmd
}

func (a *App) versionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, info, func(w io.Writer) {
				fmt.Fprintf(w, "version %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
			})
		},
	}
}

func (a *App) sessionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.adapter.Session(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, view, func(w io.Writer) { renderSession(w, view) })
		},
	}
}

func (a *App) loginCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <profile>",
		Short: "Log into a profile (fiscal, pessoal, rh, admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			view, err := a.adapter.Login(cmd.Context(), args[0], secret)
			if errors.Is(err, adapter.ErrConflict) {
				return fmt.Errorf("%w (run `set-password admin` first or `logout`)", err)
			}
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, view, func(w io.Writer) { renderSession(w, view) })
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "profile password (default: $"+passwordEnv+" or stdin)")

	return cmd
}

func (a *App) logoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Leave the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.adapter.Logout(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, view, func(w io.Writer) { renderSession(w, view) })
		},
	}
}

func (a *App) profileCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <profile>",
		Short: "Tell whether a profile has a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.adapter.ProfileStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, status, func(w io.Writer) {
				state := "not configured"
				if status.Configured {
					state = "configured"
				}
				fmt.Fprintf(w, "%s: %s\n", status.DisplayName, state)
			})
		},
	}
}

func (a *App) setPasswordCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password <profile>",
		Short: "Set a profile password (admin only, or the first admin password)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			if err = a.adapter.SetPassword(cmd.Context(), args[0], secret); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password stored for %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password (default: $"+passwordEnv+" or stdin)")

	return cmd
}

func (a *App) uploadCommand(opts *rootOptions) *cobra.Command {
	var (
		replace bool
		month   string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a .csv or .xlsx delivery export (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading %s: %w", args[0], err)
			}

			result, err := a.adapter.Upload(cmd.Context(), adapter.UploadRequest{
				FileName: filepath.Base(args[0]),
				Content:  content,
				Replace:  replace,
				Month:    month,
			})
			if err != nil {
				return describeUploadError(err)
			}
			return output(cmd.OutOrStdout(), opts, result, func(w io.Writer) { renderIngestResult(w, result) })
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the stored months instead of appending")
	cmd.Flags().StringVar(&month, "month", "", "month to replace when the server uses the selected_month scope")

	return cmd
}

func (a *App) listCommand(opts *rootOptions) *cobra.Command {
	filter := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivery records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.adapter.Deliveries(cmd.Context(), filter.filter())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, records, func(w io.Writer) { renderRecords(w, records) })
		},
	}
	filter.register(cmd)

	return cmd
}

func (a *App) summaryCommand(opts *rootOptions) *cobra.Command {
	filter := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the delivery report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.adapter.Summary(cmd.Context(), filter.filter())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, summary, func(w io.Writer) { renderSummary(w, summary) })
		},
	}
	filter.register(cmd)

	return cmd
}

func (a *App) filtersCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List months, collaborators and departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := a.adapter.Filters(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, options, func(w io.Writer) { renderFilters(w, options) })
		},
	}
}

func (a *App) deleteMonthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-month <YYYY-MM>",
		Short: "Delete every record of a month (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.adapter.DeleteMonth(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, result, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d records of %s\n", result.Deleted, result.Month)
			})
		},
	}
}

func (a *App) deleteAllCommand(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every record (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errConfirmationRequired
			}
			result, err := a.adapter.DeleteAll(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts, result, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d records\n", result.Deleted)
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	return cmd
}

// readPassword takes the password from the flag, the environment or the
// first line of stdin, in that order.
func readPassword(cmd *cobra.Command, fromFlag string) (string, error) {
	if fromFlag != "" {
		return fromFlag, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	if line = strings.TrimRight(line, "\r\n"); line == "" {
		return "", errors.New("password is required")
	}
	return line, nil
}

// describeUploadError adds the server's row counts or missing columns to
// upload rejections.
func describeUploadError(err error) error {
	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) || !errors.Is(err, adapter.ErrUnprocessable) {
		return err
	}

	var schema struct {
		Missing  []string `json:"missing"`
		Detected []string `json:"detected"`
	}
	if respErr.DecodeDetails(&schema) == nil && len(schema.Missing) > 0 {
		return fmt.Errorf("%w\n  missing:  %s\n  detected: %s", err,
			strings.Join(schema.Missing, ", "), strings.Join(schema.Detected, ", "))
	}

	var result models.IngestResult
	if respErr.DecodeDetails(&result) == nil {
		return fmt.Errorf("%w (%d rows dropped for invalid dates)", err, result.DroppedInvalidDate)
	}
	return err
}

func output(w io.Writer, opts *rootOptions, v any, render func(io.Writer)) error {
	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render(w)
	return nil
}
