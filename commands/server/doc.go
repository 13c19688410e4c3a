/*
Package server provides the building blocks of an application daemon:
configuration, the ABCI server and genesis file helpers.
*/
package server
