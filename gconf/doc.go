/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension stores its configuration as a singleton under the "_c:<pkg>"
key. A configuration is validated before it is written, so a successful Load
always returns a state that passed validation.
*/
package gconf
