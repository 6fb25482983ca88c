// Package ofpact implements the action-and-instruction codec that bridges
// the OpenFlow 1.0 and 1.1 wire action encodings, and the Nicira (NXAST)
// vendor-extension family, to a flat internal representation used for flow
// matching, table lookup and packet rewriting.
//
// The codec is a pure, synchronous translator: it does not execute actions,
// does not look up flow tables, and does not frame OpenFlow messages. It
// consumes a pre-framed action or instruction byte span and appends to a
// caller-owned Buffer.
package ofpact
