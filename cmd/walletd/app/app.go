/*
Package app links together all the various components
to construct the walletd application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/app"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store/iavl"
	"github.com/iov-one/cowallet/x"
	"github.com/iov-one/cowallet/x/bank"
	"github.com/iov-one/cowallet/x/sigs"
	"github.com/iov-one/cowallet/x/utils"
	"github.com/iov-one/cowallet/x/wallet"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching bank and wallet messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	coins := bank.NewController()
	bank.RegisterRoutes(r, authFn, coins)
	wallet.RegisterRoutes(r, authFn, wallet.NewController(), coins)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/accounts", "/sigs", "/wallet/requests"
// and "/wallet/owners"
func QueryRouter() cowallet.QueryRouter {
	r := cowallet.NewQueryRouter()
	r.RegisterAll(
		bank.RegisterQuery,
		sigs.RegisterQuery,
		wallet.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() cowallet.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns all genesis initializers of the application.
func Initializers() cowallet.Initializer {
	return app.ChainInitializers(
		bank.Initializer{},
		wallet.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h cowallet.Handler,
	tx cowallet.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (cowallet.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "database path %q", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
