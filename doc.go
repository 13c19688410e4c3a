/*

Package cowallet defines interfaces used throughout the app, such as: storage,
transactions, handlers etc. It also contains helpers to work with context,
authentication conditions and abci.

The wallet logic itself lives in x/wallet. Everything a wallet operation
needs from its host (caller identity, persistence, value transfer) is
expressed by an interface declared here or in package x.

*/

package cowallet
