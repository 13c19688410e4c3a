package wallet

import (
	"context"
	"testing"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/app"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/orm"
	"github.com/iov-one/cowallet/store"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/iov-one/cowallet/x/bank"
	"github.com/iov-one/cowallet/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	alice := weavetest.NewCondition()
	bobby := weavetest.NewCondition()
	carol := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	target := weavetest.RandomAddr(t)

	const (
		// Supported by all owners.
		readyID = 1
		// Supported by alice only.
		partialID = 2
		// Supported by all owners, wallet cannot cover it.
		tooBigID = 3
	)

	cases := map[string]struct {
		signer cowallet.Condition
		msg    cowallet.Msg
		// Check fails as well.
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		wantData       []byte
		wantWallet     uint64
		wantTarget     uint64
		wantPending    []uint64
	}{
		"submit a request": {
			signer:      bobby,
			msg:         &SubmitTransferRequestMsg{Target: target, Amount: 5},
			wantData:    orm.EncodeSequence(4),
			wantWallet:  100,
			wantPending: []uint64{readyID, partialID, tooBigID, 4},
		},
		"submit by a stranger": {
			signer:         stranger,
			msg:            &SubmitTransferRequestMsg{Target: target, Amount: 5},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"submit without a signature": {
			msg:            &SubmitTransferRequestMsg{Target: target, Amount: 5},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"submit with an invalid target": {
			signer:         alice,
			msg:            &SubmitTransferRequestMsg{Target: []byte("bad"), Amount: 5},
			wantCheckErr:   errors.ErrInvalidInput,
			wantDeliverErr: errors.ErrInvalidInput,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"support a request": {
			signer:      bobby,
			msg:         &SupportTransferRequestMsg{RequestID: partialID},
			wantWallet:  100,
			wantPending: []uint64{readyID, partialID, tooBigID},
		},
		"support an unknown request": {
			signer:         bobby,
			msg:            &SupportTransferRequestMsg{RequestID: 99},
			wantCheckErr:   ErrRequestNotFound,
			wantDeliverErr: ErrRequestNotFound,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"support without request id": {
			signer:         bobby,
			msg:            &SupportTransferRequestMsg{},
			wantCheckErr:   errors.ErrEmpty,
			wantDeliverErr: errors.ErrEmpty,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"revoke support": {
			signer:      alice,
			msg:         &RevokeSupportMsg{RequestID: partialID},
			wantWallet:  100,
			wantPending: []uint64{readyID, partialID, tooBigID},
		},
		"revoke support of an unknown request": {
			signer:         alice,
			msg:            &RevokeSupportMsg{RequestID: 42},
			wantCheckErr:   ErrRequestNotFound,
			wantDeliverErr: ErrRequestNotFound,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"execute a fully supported request": {
			signer:      carol,
			msg:         &ExecuteTransferRequestMsg{RequestID: readyID},
			wantData:    mustMarshal(t, &TransferInstruction{RequestID: readyID, Target: target, Amount: 30}),
			wantWallet:  70,
			wantTarget:  30,
			wantPending: []uint64{partialID, tooBigID},
		},
		"execute a partially supported request": {
			signer:         alice,
			msg:            &ExecuteTransferRequestMsg{RequestID: partialID},
			wantCheckErr:   ErrRequestNotSupportedByAllOwners,
			wantDeliverErr: ErrRequestNotSupportedByAllOwners,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"execute by a stranger": {
			signer:         stranger,
			msg:            &ExecuteTransferRequestMsg{RequestID: readyID},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"failed transfer keeps the request": {
			signer:         alice,
			msg:            &ExecuteTransferRequestMsg{RequestID: tooBigID},
			wantDeliverErr: errors.ErrInsufficientAmount,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
		"wrong message type": {
			signer:         alice,
			msg:            &weavetest.Msg{RoutePath: pathExecuteMsg},
			wantCheckErr:   errors.ErrInvalidType,
			wantDeliverErr: errors.ErrInvalidType,
			wantWallet:     100,
			wantPending:    []uint64{readyID, partialID, tooBigID},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			coins := bank.NewController()
			owners := []cowallet.Address{alice.Address(), bobby.Address(), carol.Address()}
			require.NoError(t, ctrl.Initialize(db, owners))
			require.NoError(t, coins.IssueCoins(db, Address(), 100))

			for _, amount := range []uint64{30, 10, 500} {
				id, err := ctrl.Submit(db, alice.Address(), target, amount)
				require.NoError(t, err)
				if id != partialID {
					require.NoError(t, ctrl.Support(db, bobby.Address(), id))
					require.NoError(t, ctrl.Support(db, carol.Address(), id))
				}
			}

			auth := &weavetest.Auth{Signer: tc.signer}
			router := app.NewRouter()
			RegisterRoutes(router, auth, ctrl, coins)
			handler := weavetest.Decorate(router, utils.NewSavepoint().OnDeliver())

			tx := &weavetest.Tx{Msg: tc.msg}
			ctx := context.Background()

			cache := db.CacheWrap()
			_, err := handler.Check(ctx, cache, tx)
			cache.Discard()
			if tc.wantCheckErr != nil {
				require.True(t, tc.wantCheckErr.Is(err), "unexpected check error: %+v", err)
			} else {
				require.NoError(t, err)
			}

			res, err := handler.Deliver(ctx, db, tx)
			if tc.wantDeliverErr != nil {
				require.True(t, tc.wantDeliverErr.Is(err), "unexpected deliver error: %+v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantData, res.Data)
			}

			balance, err := coins.Balance(db, Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantWallet, balance)
			balance, err = coins.Balance(db, target)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTarget, balance)

			pending, err := ctrl.PendingRequests(db)
			require.NoError(t, err)
			var ids []uint64
			for _, p := range pending {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.wantPending, ids)
		})
	}
}

func TestSupportAndRevokeUpdateSupporters(t *testing.T) {
	alice := weavetest.NewCondition()
	bobby := weavetest.NewCondition()

	db := store.MemStore()
	ctrl := NewController()
	require.NoError(t, ctrl.Initialize(db, []cowallet.Address{alice.Address(), bobby.Address()}))

	auth := &weavetest.CtxAuth{Key: "auth"}
	router := app.NewRouter()
	RegisterRoutes(router, auth, ctrl, bank.NewController())

	ctx := auth.SetConditions(context.Background(), alice)
	res, err := router.Deliver(ctx, db, &weavetest.Tx{Msg: &SubmitTransferRequestMsg{Target: bobby.Address(), Amount: 0}})
	require.NoError(t, err)
	id, err := orm.DecodeSequence(res.Data)
	require.NoError(t, err)

	ctx = auth.SetConditions(context.Background(), bobby)
	_, err = router.Deliver(ctx, db, &weavetest.Tx{Msg: &SupportTransferRequestMsg{RequestID: id}})
	require.NoError(t, err)

	req, err := ctrl.Request(db, id)
	require.NoError(t, err)
	assert.Len(t, req.Supporters, 2)

	// A zero amount request executes without moving any funds.
	res, err = router.Deliver(ctx, db, &weavetest.Tx{Msg: &ExecuteTransferRequestMsg{RequestID: id}})
	require.NoError(t, err)
	var ins TransferInstruction
	require.NoError(t, ins.Unmarshal(res.Data))
	assert.Equal(t, id, ins.RequestID)
	assert.Equal(t, uint64(0), ins.Amount)
}

func TestQueries(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	db := store.MemStore()
	ctrl := NewController()
	require.NoError(t, ctrl.Initialize(db, []cowallet.Address{alice}))
	id, err := ctrl.Submit(db, alice, alice, 3)
	require.NoError(t, err)

	qr := cowallet.NewQueryRouter()
	RegisterQuery(qr)

	h := qr.Handler("/wallet/requests")
	require.NotNil(t, h)
	models, err := h.Query(db, cowallet.KeyQueryMod, orm.EncodeSequence(id))
	require.NoError(t, err)
	require.Len(t, models, 1)
	var req TransferRequest
	require.NoError(t, req.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(3), req.Amount)

	h = qr.Handler("/wallet/owners")
	require.NotNil(t, h)
	models, err = h.Query(db, cowallet.KeyQueryMod, nil)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var conf Configuration
	require.NoError(t, conf.Unmarshal(models[0].Value))
	assert.Equal(t, []cowallet.Address{alice}, conf.Owners)
}

func mustMarshal(t testing.TB, m cowallet.Marshaller) []byte {
	t.Helper()
	raw, err := m.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	return raw
}
