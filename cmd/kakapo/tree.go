package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kakapo/internal/cst"
	"kakapo/internal/parser"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] <file.m>",
	Short: "Parse a MATLAB source file and dump its syntax tree",
	Long:  `Tree parses a single .m file and prints the lossless syntax tree, mainly useful for debugging the formatter`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().Bool("compact", false, "elide empty and whitespace-only slots")
}

func runTree(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return err
	}

	tree, err := parser.ParseFromPath(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cst.Pretty(tree, cst.PrettyOptions{Compact: compact}))
	return nil
}
