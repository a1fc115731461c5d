package app

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportFile string
	exportOut  string
)

func NewCmdExport(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load a CCMM dataset XML document and re-emit it normalized",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doExport(out, config)
		},
	}

	cmd.Flags().StringVarP(&exportFile, "file", "f", "", "File")
	cmd.Flags().StringVarP(&exportOut, "output", "o", "", "Destination file (stdout when empty)")

	return cmd
}

func doExport(out io.Writer, config *Config) error {
	if exportFile == "" {
		return errors.New("parameter empty")
	}
	handler, err := newHandler(config)
	if err != nil {
		return err
	}
	defer handler.Close()
	if err := handler.LoadFromFile(exportFile); err != nil {
		return errors.Wrap(err, "cannot load file")
	}
	if exportOut != "" {
		return handler.SaveToFile(exportOut)
	}
	doc, err := handler.ToXMLString(config.Output.Pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, doc)
	return err
}
