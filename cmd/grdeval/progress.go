package main

import (
	"io"

	"github.com/hscells/grdeval"
	"gopkg.in/cheggaaa/pb.v1"
)

// progress shows a bar that advances as each topic is scored.
type progress struct {
	out io.Writer
	bar *pb.ProgressBar
}

func newProgress(out io.Writer) *progress {
	return &progress{out: out}
}

func (p *progress) Start(topics int) {
	p.bar = pb.New(topics)
	p.bar.Output = p.out
	p.bar.Start()
}

func (p *progress) Scored(grdeval.TopicResult) {
	p.bar.Increment()
}

func (p *progress) Finish() {
	p.bar.Finish()
}
