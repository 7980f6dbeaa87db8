package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cortho/fmtcore"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	argsFormat string // "json" or "yaml"
	charsLimit int    // -1 means unlimited
	verbose    bool   // enable debug-level logging
}

func renderCommand() *cobra.Command {
	o := &renderOpts{charsLimit: -1}

	cmd := &cobra.Command{
		Use:   "render FORMAT ARGS",
		Short: "Render FORMAT against the argument list encoded in ARGS",
		Long: `Render FORMAT against the argument list encoded in ARGS.

FORMAT is a directive string such as "~w of ~w items (~.1f%)". ARGS is a
JSON array by default ("[3,10,30.0]"); pass --args-format=yaml to decode
it as a YAML sequence instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, rawArgs []string) error {
			return o.run(cmd, rawArgs[0], rawArgs[1])
		},
	}

	cmd.Flags().StringVar(&o.argsFormat, "args-format", "json", "encoding of ARGS: json or yaml")
	cmd.Flags().IntVar(&o.charsLimit, "chars-limit", -1, "maximum rendered character count (-1 = unlimited)")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

func (o *renderOpts) run(cmd *cobra.Command, format, rawArgs string) error {
	logger := newLogger(os.Stderr, o.verbose)

	args, err := decodeArgs([]byte(rawArgs), o.argsFormat)
	if err != nil {
		logger.Error("failed to decode arguments", "err", err)
		return err
	}
	logger.Debug("decoded arguments", "count", len(args))

	var opts []fmtcore.Option
	if o.charsLimit >= 0 {
		opts = append(opts, fmtcore.WithCharsLimit(o.charsLimit))
	}

	out, err := fmtcore.RenderChars(format, args, opts...)
	if err != nil {
		var fe *fmtcore.FormatError
		if errors.As(err, &fe) {
			logger.Error("render failed",
				"kind", fe.Kind,
				"position", fe.Position,
				"cause", fe.Cause,
			)
		} else {
			logger.Error("render failed", "err", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
