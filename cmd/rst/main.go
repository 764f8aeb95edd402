// Command rst parses and renders reStructuredText documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rstkit/rst/convert"
	"github.com/rstkit/rst/render"
	"github.com/rstkit/rst/resolve"
	"github.com/rstkit/rst/rstparse"
)

var (
	format     string
	standalone bool
	sanitize   bool
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "rst [file]",
	Short: "rst renders reStructuredText documents to HTML, JSON or XML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  renderCmd,
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html, json or xml")
	rootCmd.Flags().BoolVar(&standalone, "standalone", false, "wrap HTML output in a full document")
	rootCmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize raw HTML passthrough content")
	rootCmd.Flags().StringVarP(&output, "output", "o", "-", "file to write to (- for stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderCmd(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	root, err := rstparse.Parse(string(src))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	doc, err := convert.Document(root)
	if err != nil {
		return fmt.Errorf("failed to build doctree: %w", err)
	}

	resolve.Resolve(doc)

	var out string
	switch format {
	case "html":
		out = render.HTML(doc, render.Options{Standalone: standalone, Sanitize: sanitize})
	case "json":
		data, err := render.JSON(doc)
		if err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
		out = string(data)
	case "xml":
		data, err := render.XML(doc)
		if err != nil {
			return fmt.Errorf("failed to render XML: %w", err)
		}
		out = data
	default:
		return fmt.Errorf("unknown format %q: must be html, json or xml", format)
	}

	return writeOutput(out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(out string) error {
	if output == "-" {
		_, err := fmt.Fprintln(os.Stdout, out)
		return err
	}
	return os.WriteFile(output, []byte(out+"\n"), 0644)
}
