package main

import (
	"net"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/hscells/grdeval/cmd/qrel_server/qrelrpc"
	"github.com/hscells/grdeval/qrels"
	"github.com/rs/zerolog"
)

type args struct {
	QrelsFile string `arg:"required,positional" help:"path to qrels file to host"`
	Address   string `arg:"-a" help:"address to listen on"`
}

func (args) Version() string {
	return "qrel_server 19.Oct.2026"
}

func (args) Description() string {
	return `qrels server for fast access to relevance assessments`
}

func main() {
	args := args{Address: qrelrpc.DefaultAddress}
	arg.MustParse(&args)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	judgments, err := qrels.ReadFile(args.QrelsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load judgments")
	}
	logger.Info().Int("judgments", len(judgments)).Str("file", args.QrelsFile).Msg("loaded judgments")

	inbound, err := net.Listen("tcp", args.Address)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not listen")
	}

	logger.Info().Str("address", inbound.Addr().String()).Msg("ready to go!")
	if err := qrelrpc.Serve(inbound, judgments); err != nil {
		logger.Fatal().Err(err).Msg("could not serve")
	}
}
