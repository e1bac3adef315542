// Package qrelrpc serves relevance judgments over net/rpc so that many
// evaluations can share one loaded judgment file.
package qrelrpc

import (
	"net"
	"net/rpc"

	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// DefaultAddress is where qrel_server listens unless told otherwise.
const DefaultAddress = "0.0.0.0:8004"

// Name is the name the judgments are registered under.
const Name = "QrelsRPC"

// Response carries the judgments of a single topic, keyed by document.
type Response struct {
	Qrels trecresults.QrelsFile
}

// AllResponse carries every judgment row in file order, negative relevance included.
type AllResponse struct {
	Judgments []trecresults.Qrel
}

// QrelsRPC answers requests for judgments.
type QrelsRPC struct {
	judgments []trecresults.Qrel
	qrels     trecresults.QrelsFile
}

// NewQrelsRPC holds judgments for serving.
func NewQrelsRPC(judgments []trecresults.Qrel) *QrelsRPC {
	q := &QrelsRPC{
		judgments: judgments,
		qrels:     trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)},
	}
	for _, j := range judgments {
		if _, ok := q.qrels.Qrels[j.Topic]; !ok {
			q.qrels.Qrels[j.Topic] = make(trecresults.Qrels)
		}
		j := j
		q.qrels.Qrels[j.Topic][j.DocId] = &j
	}
	return q
}

// GetQrels returns the judgments of one topic.
func (e *QrelsRPC) GetQrels(topic string, resp *Response) error {
	q := make(map[string]trecresults.Qrels)
	if qrels, ok := e.qrels.Qrels[topic]; ok {
		q[topic] = qrels
	}
	resp.Qrels = trecresults.QrelsFile{
		Qrels: q,
	}
	return nil
}

// GetAll returns every judgment row. Its argument is ignored.
func (e *QrelsRPC) GetAll(_ int, resp *AllResponse) error {
	resp.Judgments = e.judgments
	return nil
}

// Serve registers the judgments and answers connections on l until it is closed.
func Serve(l net.Listener, judgments []trecresults.Qrel) error {
	server := rpc.NewServer()
	if err := server.RegisterName(Name, NewQrelsRPC(judgments)); err != nil {
		return err
	}
	server.Accept(l)
	return nil
}

// Fetch dials a qrel server and retrieves every judgment row it holds.
func Fetch(address string) ([]trecresults.Qrel, error) {
	client, err := rpc.Dial("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "dialling qrel server %s", address)
	}
	defer client.Close()

	resp := new(AllResponse)
	if err := client.Call(Name+".GetAll", 0, resp); err != nil {
		return nil, errors.Wrapf(err, "fetching judgments from %s", address)
	}
	return resp.Judgments, nil
}

// FetchTopic dials a qrel server and retrieves the judgments of one topic.
func FetchTopic(address, topic string) (trecresults.Qrels, error) {
	client, err := rpc.Dial("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "dialling qrel server %s", address)
	}
	defer client.Close()

	resp := new(Response)
	if err := client.Call(Name+".GetQrels", topic, resp); err != nil {
		return nil, errors.Wrapf(err, "fetching topic %s from %s", topic, address)
	}
	return resp.Qrels.Qrels[topic], nil
}
