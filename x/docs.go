/*
Package x contains the extensions the wallet application is built from.

Extensions implement common functionality (Handler, Decorator, etc.) and are
combined together in the app package to construct an application. This
package itself only declares the Authenticator abstraction, which lets
extensions learn who signed a transaction without depending on how the
signature was verified.
*/
package x
