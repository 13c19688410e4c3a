/*
Package bank keeps account balances in the native units of the chain.

It is the value transfer host of the wallet: wallet.CoinMover is implemented
by Controller, so an executed transfer request moves funds from the wallet
account to the target. Accounts can be funded from genesis and with SendMsg.
*/
package bank
