// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the posync command line: the long-running sync
// client plus one-shot commands operating on the local store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/client"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// skipApp marks commands that run without opening local storage.
const skipApp = "skip-app"

// runtime holds what PersistentPreRunE opened for the executing command.
type runtime struct {
	info   models.AppBuildInfo
	cfg    *config.StructuredConfig
	logger *logger.Logger
	app    *client.App
}

// Execute runs the command line with args and releases everything it opened.
func Execute(ctx context.Context, info models.AppBuildInfo, args []string, stdout, stderr io.Writer) error {
	rt := &runtime{info: info}
	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, rt.close())
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "posync",
		Short: "Offline-first sync client for POS devices",
		Long: `posync keeps the local catalog and bills of a point-of-sale device in
sync with the remote service. Changes are stored locally first and uploaded
in batches whenever the remote is reachable.`,
		SilenceUsage:      true,
		PersistentPreRunE: rt.open,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCommand(rt),
		newSyncCommand(rt),
		newBootstrapCommand(rt),
		newEnqueueCommand(rt),
		newSaveCommand(rt),
		newDeleteCommand(rt),
		newListCommand(rt),
		newPendingCommand(rt),
		newHistoryCommand(rt),
		newStatusCommand(rt),
		newSessionCommand(rt),
		newVersionCommand(rt),
	)
	return root
}

func (rt *runtime) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipApp] != "" || cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rt.cfg = cfg
	rt.logger = logger.NewClientLogger("posync", cfg.Log)

	ctx := rt.logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	rt.app, err = client.NewApp(ctx, cfg, rt.logger)
	if err != nil {
		return err
	}
	return nil
}

func (rt *runtime) close() error {
	var errs []error
	if rt.app != nil {
		errs = append(errs, rt.app.Close())
		rt.app = nil
	}
	if rt.logger != nil {
		errs = append(errs, rt.logger.Close())
		rt.logger = nil
	}
	return errors.Join(errs...)
}
