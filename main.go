package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roveo/pydocmd/docgen"
	"github.com/roveo/pydocmd/exclude"
	"github.com/roveo/pydocmd/languages"
	_ "github.com/roveo/pydocmd/languages/python"
)

func newRootCmd(logOut io.Writer) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pydocmd INPUT_FILE_OR_FOLDER",
		Short: "Generate Markdown documentation for a Python file or folder",
		Long: `pydocmd parses Python source and writes one Markdown file per module,
listing its top-level functions and classes (with methods), their docstrings
and argument lists.

Given a folder, the folder tree is mirrored under the output directory.
Files and folders whose name contains a double underscore (__init__.py,
__pycache__) are skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := languages.Lookup("python")
			if lang == nil {
				return fmt.Errorf("python language is not registered")
			}

			gen, err := docgen.New(docgen.Config{
				OutputDir: output,
				Language:  lang,
				Exclude:   exclude.Default(),
				Logger:    newLogger(logOut),
			})
			if err != nil {
				return err
			}
			return gen.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&output, "output", docgen.DefaultOutputDir,
		"Output directory (created if missing)")

	return cmd
}

func newLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)

	colors := false
	if f, ok := out.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    !colors,
		DisableTimestamp: true,
	})
	return logger
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
