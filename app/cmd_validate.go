package app

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccmm-tools/ccmm-go/ccmm"
)

var validateFile string

func NewCmdValidate(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a CCMM dataset XML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doValidate(out, config)
		},
	}

	cmd.Flags().StringVarP(&validateFile, "file", "f", "", "File")

	return cmd
}

func doValidate(out io.Writer, config *Config) error {
	if validateFile == "" {
		return errors.New("parameter empty")
	}
	handler, err := newHandler(config)
	if err != nil {
		return err
	}
	defer handler.Close()
	if err := handler.LoadFromFile(validateFile); err != nil {
		return errors.Wrap(err, "cannot load file")
	}
	if !handler.IsValid() {
		fmt.Fprintln(out, "The record is invalid!")
		for _, issue := range handler.Diagnostics() {
			fmt.Fprintf(out, "%s: %s\n", issue.Path, issue.Message)
		}
		return errors.New("validation failed")
	}
	fmt.Fprintln(out, "The record is valid.")
	return nil
}

func newHandler(config *Config) (*ccmm.Handler, error) {
	var opts []ccmm.Option
	if config.Schema.Path != "" {
		opts = append(opts, ccmm.WithSchemaFile(config.Schema.Path))
	}
	return ccmm.New(opts...)
}
