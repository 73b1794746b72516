package main

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/fieldptr/internal/version"
	"github.com/arthur-debert/fieldptr/pkg/config"
	"github.com/arthur-debert/fieldptr/pkg/display"
	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/logging"
	"github.com/arthur-debert/fieldptr/pkg/roles"
	"github.com/arthur-debert/fieldptr/pkg/setup"
	"github.com/arthur-debert/fieldptr/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// openCase loads a case file with its overlays and runs its setup phase
func openCase(path string, overlays []string) (*setup.Session, error) {
	c, err := config.LoadWithOverlays(path, overlays...)
	if err != nil {
		return nil, err
	}
	return setup.Run(c)
}

func newBindCmd(opts *globalOptions) *cobra.Command {
	var overlays []string

	cmd := &cobra.Command{
		Use:     "bind CASE",
		Short:   MsgBindShort,
		Long:    MsgBindLong,
		Example: MsgBindExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.bind")

			session, err := openCase(args[0], overlays)
			if err != nil {
				return err
			}
			defer session.Close()

			table := display.NewTable(session.Name(), display.Rows(session.Registry().Snapshot()))
			logger.Info().
				Int("bound", table.Summary.Bound).
				Int("absent", table.Summary.Absent).
				Msg("Case bound")

			return display.Render(cmd.OutOrStdout(), opts.outputFormat(cmd), table)
		},
	}
	cmd.Flags().StringArrayVarP(&overlays, "overlay", "o", nil, MsgFlagOverlay)

	return cmd
}

func newLookupCmd(opts *globalOptions) *cobra.Command {
	var (
		overlays []string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:     "lookup CASE ROLE [INDEX]",
		Short:   MsgLookupShort,
		Long:    MsgLookupLong,
		Example: MsgLookupExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := roles.Parse(args[1])
			if err != nil {
				return err
			}

			index := 0
			if len(args) == 3 {
				index, err = strconv.Atoi(args[2])
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "invalid index %q", args[2])
				}
				if index < 0 {
					return errors.Newf(errors.ErrRoleIndex, "negative index %d", index).
						WithDetail("role", role.String())
				}
			}

			session, err := openCase(args[0], overlays)
			if err != nil {
				return err
			}
			defer session.Close()

			f := session.Registry().LookupIndexed(role, index)
			logger := logging.GetLogger("cmd.lookup")
			logger.Debug().
				Stringer("role", role).
				Int("index", index).
				Bool("found", f != nil).
				Msg("Role looked up")

			if strict && f == nil {
				return errors.Newf(errors.ErrFieldNotFound, "no field bound to %s[%d]", role, index).
					WithDetail("case", session.Name())
			}

			out := cmd.OutOrStdout()
			switch format := opts.outputFormat(cmd); format {
			case display.FormatTerminal:
				_, err = fmt.Fprintln(out, style.RenderTemplate(MsgLookupLine, map[string]string{
					"slot":  fmt.Sprintf("%s[%d]", role, index),
					"field": f.String(),
				}))
			case display.FormatText:
				_, err = fmt.Fprintln(out, f.String())
			default:
				row := display.Row{Role: role.String(), Index: index, FieldID: -1}
				if f != nil {
					row.Field, row.FieldID, row.Location, row.Present = f.Name, f.ID, string(f.Location), true
				}
				err = display.Render(out, format, display.NewTable(session.Name(), []display.Row{row}))
			}
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&overlays, "overlay", "o", nil, MsgFlagOverlay)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}

func newRolesCmd(opts *globalOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:     "roles",
		Short:   MsgRolesShort,
		Long:    MsgRolesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := opts.outputFormat(cmd)
			if !explain {
				return display.RenderRoles(cmd.OutOrStdout(), format)
			}

			if format == display.FormatTerminal {
				_, err := fmt.Fprint(cmd.OutOrStdout(), display.RenderRoleReference(pterm.GetTerminalWidth()))
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), display.RoleReferenceMarkdown())
			return err
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, MsgFlagExplain)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
