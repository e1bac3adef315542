package qrelrpc_test

import (
	"net"
	"testing"

	"github.com/hscells/grdeval/cmd/qrel_server/qrelrpc"
	"github.com/hscells/trecresults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var judgments = []trecresults.Qrel{
	{Topic: "1", Iteration: "0", DocId: "a", Score: 2},
	{Topic: "1", Iteration: "0", DocId: "b", Score: -1},
	{Topic: "2", Iteration: "0", DocId: "a", Score: 0},
}

func serve(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	go qrelrpc.Serve(l, judgments)
	return l.Addr().String()
}

func TestFetch(t *testing.T) {
	addr := serve(t)

	got, err := qrelrpc.Fetch(addr)
	require.NoError(t, err)
	assert.Equal(t, judgments, got)
}

func TestFetchTopic(t *testing.T) {
	addr := serve(t)

	q, err := qrelrpc.FetchTopic(addr, "1")
	require.NoError(t, err)
	require.Len(t, q, 2)
	assert.Equal(t, int64(2), q["a"].Score)

	q, err = qrelrpc.FetchTopic(addr, "missing")
	require.NoError(t, err)
	assert.Empty(t, q)
}

func TestFetchUnreachable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	_, err = qrelrpc.Fetch(addr)
	assert.Error(t, err)
}
