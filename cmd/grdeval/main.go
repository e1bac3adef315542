package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hscells/grdeval"
	"github.com/hscells/grdeval/cmd/qrel_server/qrelrpc"
	"github.com/hscells/grdeval/config"
	"github.com/hscells/grdeval/output"
	"github.com/hscells/grdeval/qrels"
	"github.com/hscells/grdeval/retrieval"
	"github.com/hscells/trecresults"
	"github.com/rs/zerolog"
)

var (
	name    = "grdeval"
	version = "19.Oct.2026"
)

var formatters = map[string]output.ReportFormatter{
	"csv":  output.CsvReportFormatter,
	"json": output.JsonReportFormatter,
}

type args struct {
	Cutoff    *int    `help:"depth of ranking to evaluate to [default: 20]" arg:"-k"`
	Workers   *int    `help:"number of topics to score concurrently [default: 1]" arg:"-j"`
	Format    *string `help:"report format, csv or json [default: csv]" arg:"-f"`
	Output    string  `help:"write the report to this file instead of standard output" arg:"-o"`
	Config    string  `help:"path to TOML configuration file [default: ~/.grdeval.toml]" arg:"-c"`
	Progress  bool    `help:"show progress over topics" arg:"-p"`
	Verbose   bool    `help:"log debug information" arg:"-v"`
	QrelsFile string  `help:"path to qrels file, or host:port of a qrel server" arg:"required,positional"`
	RunFile   string  `help:"path to run file" arg:"required,positional"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", name, version)
}

func (args) Description() string {
	return `evaluate a run with nDCG and ERR at a rank cutoff`
}

// configure layers the command-line flags over the configuration file and
// the environment.
func configure(a args) (config.Config, error) {
	p := a.Config
	if len(p) == 0 {
		if d := config.DefaultPath(); len(d) > 0 {
			if _, err := os.Stat(d); err == nil {
				p = d
			}
		}
	}

	c, err := config.Load(p)
	if err != nil {
		return c, err
	}
	if a.Cutoff != nil {
		c.Cutoff = *a.Cutoff
	}
	if a.Workers != nil {
		c.Workers = *a.Workers
	}
	if a.Format != nil {
		c.Format = *a.Format
	}
	return c, c.Validate()
}

// loadJudgments reads judgments from a file or, when the argument names no
// file but looks like an address, from a qrel server.
func loadJudgments(source string) ([]trecresults.Qrel, error) {
	if _, err := os.Stat(source); os.IsNotExist(err) && strings.Contains(source, ":") {
		return qrelrpc.Fetch(source)
	}
	return qrels.ReadFile(source)
}

func main() {
	var args args
	arg.MustParse(&args)

	level := zerolog.InfoLevel
	if args.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	c, err := configure(args)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Debug().Int("cutoff", c.Cutoff).Int("workers", c.Workers).Str("format", c.Format).Msg("configured")

	judgments, err := loadJudgments(args.QrelsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("qrels", args.QrelsFile).Msg("could not load judgments")
	}
	logger.Debug().Int("judgments", len(judgments)).Msg("loaded judgments")

	run, err := retrieval.ReadFile(args.RunFile)
	if err != nil {
		logger.Fatal().Err(err).Str("run", args.RunFile).Msg("could not load run")
	}
	logger.Debug().Int("results", len(run.Results)).Str("runid", run.ID).Msg("loaded run")

	components := []func() interface{}{
		grdeval.Cutoff(c.Cutoff),
		grdeval.Workers(c.Workers),
		grdeval.Output(formatters[c.Format]),
	}
	if args.Progress {
		components = append(components, grdeval.Observe(newProgress(os.Stderr)))
	}

	result, err := grdeval.NewPipeline(judgments, run, components...).Execute()
	if err != nil {
		logger.Fatal().Err(err).Str("run", args.RunFile).Msg("could not evaluate run")
	}

	logger.Debug().Int("judgments", result.Judgments).Str("runid", result.RunID).Msg("evaluated run")
	for _, topic := range result.Topics {
		logger.Debug().Str("topic", topic.Topic).Int("judged", topic.Judged).Float64("ideal", topic.Ideal).Msg("scored topic")
	}
	for _, topic := range result.Unjudged {
		logger.Warn().Str("topic", topic).Msg("topic has no judgments, nDCG is zero")
	}
	if len(result.Unretrieved) > 0 {
		logger.Warn().Strs("topics", result.Unretrieved).Msg("judged topics are missing from the run")
	}

	if len(args.Output) > 0 {
		err = os.WriteFile(args.Output, []byte(result.Outputs[0]), 0664)
	} else {
		_, err = os.Stdout.WriteString(result.Outputs[0])
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("could not write report")
	}
}
