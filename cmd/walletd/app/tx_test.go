package app

import (
	"testing"

	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/iov-one/cowallet/x/bank"
	"github.com/iov-one/cowallet/x/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxGetMsg(t *testing.T) {
	addr := weavetest.RandomAddr(t)

	cases := map[string]struct {
		tx       Tx
		wantErr  *errors.Error
		wantPath string
	}{
		"no message": {
			tx:      Tx{},
			wantErr: errors.ErrInvalidMsg,
		},
		"send": {
			tx:       Tx{SendMsg: &bank.SendMsg{Source: addr, Destination: addr, Amount: 1}},
			wantPath: "bank/send",
		},
		"execute": {
			tx:       Tx{ExecuteTransferRequestMsg: &wallet.ExecuteTransferRequestMsg{RequestID: 1}},
			wantPath: "wallet/execute",
		},
		"two messages": {
			tx: Tx{
				SupportTransferRequestMsg: &wallet.SupportTransferRequestMsg{RequestID: 1},
				RevokeSupportMsg:          &wallet.RevokeSupportMsg{RequestID: 1},
			},
			wantErr: errors.ErrInvalidMsg,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, msg.Path())
		})
	}
}

func TestTxDecoder(t *testing.T) {
	tx, err := NewTx(&wallet.SubmitTransferRequestMsg{Target: weavetest.RandomAddr(t), Amount: 9})
	require.NoError(t, err)
	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	submit, ok := msg.(*wallet.SubmitTransferRequestMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(9), submit.Amount)

	_, err = NewTx(&weavetest.Msg{RoutePath: "unknown"})
	assert.True(t, errors.ErrInvalidType.Is(err))
}

func TestGetSignBytesIgnoresSignatures(t *testing.T) {
	tx, err := NewTx(&wallet.SupportTransferRequestMsg{RequestID: 3})
	require.NoError(t, err)
	before, err := tx.GetSignBytes()
	require.NoError(t, err)

	tx.Signatures = append(tx.Signatures, nil)
	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, tx.Signatures, 1)
}
