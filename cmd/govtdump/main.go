// Command govtdump feeds a recorded terminal session through govterm and
// prints a replay sequence, or the final screen text, for inspection.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/danielgatis/govterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cols, rows      int
	scrollbackLimit int
	textOnly        bool
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:   "govtdump [file]",
		Short: "Feed a recorded terminal session through govterm and dump the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args)
		},
	}

	root.Flags().IntVar(&cols, "cols", 80, "terminal width")
	root.Flags().IntVar(&rows, "rows", 24, "terminal height")
	root.Flags().IntVar(&scrollbackLimit, "scrollback", 0, "scrollback line limit (0 = unlimited)")
	root.Flags().BoolVar(&textOnly, "text", false, "print final screen text instead of a replay dump")

	if err := root.Execute(); err != nil {
		logger.Fatal("govtdump failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, args []string) error {
	r := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var opts []govterm.Option
	if scrollbackLimit > 0 {
		opts = append(opts, govterm.WithScrollbackLimit(scrollbackLimit))
	}
	vt := govterm.New(cols, rows, opts...)

	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			changes := vt.FeedString(string(buf[:n]))
			logger.Debug("fed chunk",
				zap.Int("bytes", n),
				zap.Int("dirty_rows", len(changes.DirtyRows)),
				zap.Bool("resized", changes.Resized),
				zap.Int("evicted_scrollback", len(changes.Scrollback)),
			)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	if textOnly {
		for _, line := range vt.Text() {
			fmt.Println(line)
		}
		return nil
	}

	fmt.Print(vt.Dump())
	return nil
}
