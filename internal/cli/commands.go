package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

var errSyncIncomplete = errors.New("sync pass did not complete")

func newRunCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync client until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return rt.app.Run(ctx)
		},
	}
}

func newSyncCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one full sync pass now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rt.app.Probe(ctx)

			result, err := rt.app.Services().Orchestrator.SyncNow(ctx)
			newPrinter(cmd.OutOrStdout()).syncResult(result)
			if err != nil {
				return err
			}
			if result.Status == models.StatusFailed || result.Status == models.StatusUnauthorized {
				return fmt.Errorf("%w: %s", errSyncIncomplete, result.Status)
			}
			return nil
		},
	}
}

func newBootstrapCommand(rt *runtime) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Download the remote catalog into the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rt.app.Probe(ctx)

			result, err := rt.app.Services().Bootstrapper.Bootstrap(ctx, force)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).bootstrapResult(result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "download kinds that already have local rows")
	return cmd
}

func newEnqueueCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "enqueue <kind> <create|update|delete> <entity-id> [payload-json]",
		Short: "Queue a raw operation for upload",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			opType, err := models.ParseOperationType(args[1])
			if err != nil {
				return err
			}
			var payload json.RawMessage
			if len(args) == 4 {
				payload = json.RawMessage(args[3])
			}

			op, err := models.NewRawOperation(opType, kind, args[2], payload)
			if err != nil {
				return err
			}
			id, err := rt.app.Services().Entities.Enqueue(cmd.Context(), op)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "queued operation %d\n", id)
			return nil
		},
	}
}

func newSaveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "save <kind> <json>",
		Short: "Create or update an entity locally and queue it for upload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			entities := rt.app.Services().Entities
			data := []byte(args[1])

			var id string
			switch kind {
			case models.KindCategory:
				var c models.Category
				if err = json.Unmarshal(data, &c); err != nil {
					return fmt.Errorf("decode category: %w", err)
				}
				c, err = entities.SaveCategory(ctx, c)
				id = c.ID
			case models.KindItem:
				var item models.Item
				if err = json.Unmarshal(data, &item); err != nil {
					return fmt.Errorf("decode item: %w", err)
				}
				item, err = entities.SaveItem(ctx, item)
				id = item.ID
			case models.KindBill:
				var bill models.Bill
				if err = json.Unmarshal(data, &bill); err != nil {
					return fmt.Errorf("decode bill: %w", err)
				}
				bill, err = entities.SaveBill(ctx, bill)
				id = bill.ID
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s\n", kind, id)
			return nil
		},
	}
}

func newDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <entity-id>",
		Short: "Delete an entity locally and queue the removal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			if err = rt.app.Services().Entities.Delete(cmd.Context(), kind, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", kind, args[1])
			return nil
		},
	}
}

func newListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List locally stored entities of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			rows, err := rt.app.Services().Entities.List(cmd.Context(), kind)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).rows(rows)
			return nil
		},
	}
}

func newPendingCommand(rt *runtime) *cobra.Command {
	var stuck bool

	cmd := &cobra.Command{
		Use:   "pending [kind]",
		Short: "Show operations waiting for upload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			queue := rt.app.Services().Queue
			p := newPrinter(cmd.OutOrStdout())

			kinds := models.SyncOrder
			if len(args) == 1 {
				kind, err := models.ParseEntityKind(args[0])
				if err != nil {
					return err
				}
				kinds = []models.EntityKind{kind}
			}

			if stuck {
				ops, err := queue.Stuck(ctx)
				if err != nil {
					return err
				}
				p.heading(fmt.Sprintf("Stuck operations (%d)", len(ops)))
				p.operations(ops)
				return nil
			}

			var all []models.MutationOperation
			for _, kind := range kinds {
				ops, err := queue.PendingFor(ctx, kind)
				if err != nil {
					return err
				}
				all = append(all, ops...)
			}
			p.heading(fmt.Sprintf("Pending operations (%d)", len(all)))
			p.operations(all)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stuck, "stuck", false, "only show operations past the retry limit")
	return cmd
}

func newHistoryCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent sync passes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := rt.app.Services().History.List(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).history(records)
			return nil
		},
	}
}

func newStatusCommand(rt *runtime) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show device, session and queue state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc := rt.app.Services()
			p := newPrinter(cmd.OutOrStdout())
			p.heading("Status")

			deviceID, err := svc.Devices.DeviceID(ctx)
			if err != nil {
				return err
			}
			p.field("device", deviceID)

			if probe {
				online := "offline"
				if rt.app.Probe(ctx) {
					online = "online"
				}
				p.field("remote", online)
			}

			session, err := svc.Sessions.Current(ctx)
			switch {
			case errors.Is(err, models.ErrNoSession):
				p.field("session", "none")
			case err != nil:
				p.field("session", "invalid: "+err.Error())
			case session.ExpiresAt != nil:
				p.field("session", fmt.Sprintf("%s until %s", session.Subject, formatTime(*session.ExpiresAt)))
			default:
				p.field("session", session.Subject)
			}

			pending, err := svc.Queue.PendingCount(ctx, nil)
			if err != nil {
				return err
			}
			p.field("pending", pending)

			stuck, err := svc.Queue.Stuck(ctx)
			if err != nil {
				return err
			}
			p.field("stuck", len(stuck))

			last, ok, err := svc.History.LastSuccessfulSync(ctx)
			if err != nil {
				return err
			}
			if ok {
				p.field("last sync", formatTime(last))
			} else {
				p.field("last sync", "never")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&probe, "probe", false, "check whether the remote is reachable")
	return cmd
}

func newSessionCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored session token",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <token>",
			Short: "Store the bearer token used for sync calls",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				session, err := rt.app.Services().Sessions.Set(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "session stored for %s\n", session.Subject)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored session token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := rt.app.Services().Sessions.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "session cleared")
				return nil
			},
		},
	)
	return cmd
}

func newVersionCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			p := newPrinter(cmd.OutOrStdout())
			p.field("version", orNA(rt.info.BuildVersion()))
			p.field("date", orNA(rt.info.BuildDate()))
			p.field("commit", orNA(rt.info.BuildCommit()))
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
