package main

import (
	"fmt"

	"github.com/arthur-debert/envperm/pkg/envperm"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: MsgSetShort,
		Long:  MsgSetLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envperm.Set(args[0], args[1]); err != nil {
				return fmt.Errorf(MsgErrSet, args[0], err)
			}
			cmd.Printf(MsgSetDone, args[0])
			return nil
		},
	}
}

func newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append NAME VALUE",
		Short: MsgAppendShort,
		Long:  MsgAppendLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envperm.Append(args[0], args[1]); err != nil {
				return fmt.Errorf(MsgErrAppend, args[0], err)
			}
			cmd.Printf(MsgAppendDone, args[0])
			return nil
		},
	}
}

func newEnsureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure NAME DEFAULT",
		Short: MsgEnsureShort,
		Long:  MsgEnsureLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envperm.CheckOrSet(args[0], args[1]); err != nil {
				return fmt.Errorf(MsgErrEnsure, args[0], err)
			}
			cmd.Printf(MsgEnsureDone, args[0])
			return nil
		},
	}
}
