package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

func init() {
	pterm.DisableColor()
}

// NewPrinter takes a variadic slice of PrinterOptions
// and returns a configured Printer instance.
func NewPrinter(opts ...PrinterOption) *Printer {
	var cfg PrinterConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Printer{
		cfg: cfg,
	}
}

type Printer struct {
	cfg PrinterConfig
}

func (p *Printer) PrintfOut(s string, args ...any) error {
	if _, err := fmt.Fprintf(p.cfg.Out, s, args...); err != nil {
		return fmt.Errorf("printing to out stream: %w", err)
	}

	return nil
}

func (p *Printer) PrintfErr(s string, args ...any) error {
	if _, err := fmt.Fprintf(p.cfg.Err, s, args...); err != nil {
		return fmt.Errorf("printing to err stream: %w", err)
	}

	return nil
}

// PrintPackageReport renders the summary of a completed packaging run.
func (p *Printer) PrintPackageReport(result packaging.Result) error {
	data := [][]string{
		{"archive", result.ArchivePath},
		{"size", humanize.IBytes(uint64(result.Size))},
		{"files", fmt.Sprint(result.FileCount)},
	}

	table := pterm.DefaultTable.WithData(data).WithSeparator("  ")

	output, err := table.Srender()
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if err := p.PrintfOut("%s\n", output); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	return nil
}

type PrinterConfig struct {
	Out io.Writer
	Err io.Writer
}

func (c *PrinterConfig) Option(opts ...PrinterOption) {
	for _, opt := range opts {
		opt.ConfigurePrinter(c)
	}
}

func (c *PrinterConfig) Default() {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
}

type PrinterOption interface {
	ConfigurePrinter(*PrinterConfig)
}
