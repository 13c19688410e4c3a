/*
Package wallet implements a multi-owner authorization wallet.

A fixed group of owners is set at genesis. Any owner may submit a transfer
request, which starts with the submitter as its only supporter. Other owners
add their support, and any supporter may withdraw it again. A request is
executed only when every owner supports it, at which point the funds held by
the wallet account are moved to the request target and the request is
removed.

Requests are identified by a sequence number that is never reused.
*/
package wallet
