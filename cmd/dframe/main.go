// Command dframe inspects and converts .df files.
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/dfio"
	"github.com/dframe-go/dframe/pkg/logger"
)

var (
	logLevel  string
	asJSON    bool
	showRows  bool
	toFlavour string
)

// summary is the machine-readable shape emitted by inspect --json
type summary struct {
	Path    string   `json:"path"`
	Flavour string   `json:"flavour"`
	Rows    int      `json:"rows"`
	Columns int      `json:"columns"`
	Names   []string `json:"names,omitempty"`
	Kinds   []string `json:"kinds"`
}

func main() {
	root := &cobra.Command{
		Use:           "dframe",
		Short:         "Inspect and convert .df frame files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	inspect := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the shape and schema of a .df file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspect.Flags().BoolVar(&asJSON, "json", false, "emit the summary as JSON")
	inspect.Flags().BoolVar(&showRows, "rows", false, "render the row data as a table")

	convert := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a .df file between the default and nullable flavours",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	convert.Flags().StringVar(&toFlavour, "to", "nullable", "target flavour (default or nullable)")

	root.AddCommand(inspect, convert)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dframe:", err)
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
	logger.Sync() //nolint:errcheck
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := dfio.ReadFile(path)
	if err != nil {
		return err
	}
	flavour := "default"
	if f.IsNullable() {
		flavour = "nullable"
	}
	kinds := make([]string, f.Columns())
	for i := 0; i < f.Columns(); i++ {
		col, err := f.ColumnAt(i)
		if err != nil {
			return err
		}
		kinds[i] = col.TypeName()
	}
	s := summary{
		Path:    path,
		Flavour: flavour,
		Rows:    f.Rows(),
		Columns: f.Columns(),
		Names:   f.ColumnNames(),
		Kinds:   kinds,
	}
	if asJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("%s: %s frame, %d rows, %d columns\n", s.Path, s.Flavour, s.Rows, s.Columns)
		for i, kind := range s.Kinds {
			name := ""
			if s.Names != nil {
				name = s.Names[i]
			}
			fmt.Printf("  [%d] %-24s %s\n", i, kind, name)
		}
	}
	if showRows {
		fmt.Print(f.String())
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	var nullable bool
	switch toFlavour {
	case "default":
	case "nullable":
		nullable = true
	default:
		return fmt.Errorf("unknown flavour: %s", toFlavour)
	}
	f, err := dfio.ReadFile(args[0])
	if err != nil {
		return err
	}
	converted, err := dframe.Convert(f, nullable)
	if err != nil {
		return err
	}
	path, err := dfio.WriteFile(args[1], converted)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
