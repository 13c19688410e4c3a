package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestStartStandAlone(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping ABCI stand-alone test")
	}

	gen := func(home string, logger log.Logger, debug bool) (abci.Application, error) {
		return abci.NewBaseApplication(), nil
	}
	conf := DefaultConfig("")
	conf.Bind = "tcp://127.0.0.1:0"

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, Start(ctx, gen, log.NewNopLogger(), conf))
}
