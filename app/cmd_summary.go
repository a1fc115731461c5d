package app

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var summaryFile string

func NewCmdSummary(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a summary of a CCMM dataset XML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doSummary(out, config)
		},
	}

	cmd.Flags().StringVarP(&summaryFile, "file", "f", "", "File")

	return cmd
}

func doSummary(out io.Writer, config *Config) error {
	if summaryFile == "" {
		return errors.New("parameter empty")
	}
	handler, err := newHandler(config)
	if err != nil {
		return err
	}
	defer handler.Close()
	if err := handler.LoadFromFile(summaryFile); err != nil {
		return errors.Wrap(err, "cannot load file")
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(handler.GetSummary())
}
