package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/shortclip/internal/caption"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <artifact.srt>",
		Short: "Validate the structure of a subtitle artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := caption.Validate(args[0])
			if err != nil {
				return err
			}

			if rep.Valid {
				cmd.Printf("%s: valid\n", args[0])
				return nil
			}

			for _, msg := range rep.Errors {
				cmd.Printf("  %s\n", msg)
			}
			return fmt.Errorf("%s: %d violation(s)", args[0], len(rep.Errors))
		},
	}
}
