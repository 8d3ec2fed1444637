package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"typein/pkg/confirm"
	"typein/pkg/listing"
	"typein/pkg/mnemonic"
	"typein/pkg/tokens"
	"typein/pkg/typein"
	"typein/pkg/utils"
)

type cliOptions struct {
	loadAddr string
	version  string
	source   string
	output   string
	png      string
	force    bool
	verbose  bool
}

func main() {
	if err := newRootCmd(confirm.Terminal()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(prompt *confirm.Prompter) *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:   "typein [flags] input_file",
		Short: "A tokenizer for Commodore BASIC typein programs.",
		Long: `Typein converts a BASIC listing typed in from a magazine into a
Commodore program file that loads directly on the target machine.

Two files are written next to the input, using its base name:
  .bas  the listing with control characters in petcat mnemonic form
  .prg  the tokenized program, ready to load`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, prompt, args[0], o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.loadAddr, "loadaddr", "l", "0x0801", loadAddrHelp())
	f.StringVarP(&o.version, "version", "v", string(tokens.V2), versionHelp())
	f.StringVarP(&o.source, "source", "s", string(mnemonic.Ahoy), sourceHelp())
	f.StringVarP(&o.output, "output", "o", "", "program file path (default: input with .prg extension)")
	f.StringVar(&o.png, "png", "", "also render the program listing to this PNG file")
	f.BoolVarP(&o.force, "force", "f", false, "overwrite existing output files without asking")
	f.BoolVar(&o.verbose, "verbose", false, "print every line as it is tokenized")
	return cmd
}

func loadAddrHelp() string {
	var b strings.Builder
	b.WriteString("target BASIC memory address when loading:")
	for _, t := range typein.Targets {
		fmt.Fprintf(&b, "\n0x%04X - %s", t.Address, t.Machine)
	}
	return b.String()
}

func versionHelp() string {
	var b strings.Builder
	b.WriteString("BASIC version used for tokenizing:")
	for _, v := range tokens.Versions() {
		fmt.Fprintf(&b, "\n%s - %s", string(v), v)
	}
	return b.String()
}

func sourceHelp() string {
	var b strings.Builder
	b.WriteString("source BASIC file format:")
	for _, d := range mnemonic.Dialects() {
		fmt.Fprintf(&b, "\n%s - %s", string(d), d.Description())
	}
	return b.String()
}

func parseOptions(o cliOptions) (typein.Options, error) {
	var opts typein.Options
	var err error
	if opts.LoadAddress, err = typein.ParseLoadAddress(o.loadAddr); err != nil {
		return opts, err
	}
	if opts.Version, err = tokens.ParseVersion(o.version); err != nil {
		return opts, err
	}
	if opts.Source, err = mnemonic.ParseDialect(o.source); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(cmd *cobra.Command, prompt *confirm.Prompter, inPath string, o cliOptions) error {
	logger := log.New(cmd.ErrOrStderr(), "", 0)
	if o.verbose {
		logger.SetFlags(log.Lshortfile)
	}

	opts, err := parseOptions(o)
	if err != nil {
		return err
	}
	conv, err := typein.New(opts)
	if err != nil {
		return err
	}

	opts = conv.Options()
	if o.verbose {
		logger.Printf("load address 0x%04X, BASIC %s, %s source", opts.LoadAddress, string(opts.Version), opts.Source)
	}

	fullPath, dir, err := utils.GetPathInfo(inPath)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", inPath)
	}
	source, err := utils.ReadSource(fullPath)
	if err != nil {
		return err
	}
	res, err := conv.ConvertReader(bytes.NewReader(source))
	if err != nil {
		return errors.Wrap(err, "conversion failed")
	}

	for _, issue := range res.Issues {
		logger.Printf("warning: %s", issue)
	}
	if o.verbose {
		for i, l := range res.Program.Lines {
			logger.Printf("%s\n0x%04X: %v", res.Normalized[i], l.Addr, l.Tokens)
		}
	}

	basPath := utils.OutputPath(fullPath, ".bas")
	prgPath := o.output
	if prgPath == "" {
		prgPath = utils.OutputPath(fullPath, ".prg")
	}
	if o.verbose {
		logger.Printf("writing outputs next to %s", dir)
	}
	outputs := []string{basPath, prgPath}
	if o.png != "" {
		outputs = append(outputs, o.png)
	}

	// every overwrite is settled before anything is written
	if !o.force {
		for _, path := range outputs {
			if !utils.Exists(path) {
				continue
			}
			ok, err := prompt.Overwrite(path)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("file not overwritten: %s", path)
			}
		}
	}

	// a failed write leaves no output behind
	var st utils.Staging
	defer st.Discard()
	if err := st.Add(basPath, func(w io.Writer) error {
		_, err := io.WriteString(w, res.Source())
		return err
	}); err != nil {
		return err
	}
	if err := st.Add(prgPath, func(w io.Writer) error {
		_, err := res.Program.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	if o.png != "" {
		lines := listing.Program(res.Program, conv.Keywords())
		if err := st.Add(o.png, func(w io.Writer) error {
			return listing.RenderPNG(w, lines)
		}); err != nil {
			return err
		}
	}
	if err := st.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "tokenized %d lines, %d bytes -> %s\n", len(res.Program.Lines), res.Program.Size(), prgPath)
	return nil
}
