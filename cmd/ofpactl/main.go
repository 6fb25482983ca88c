// Command ofpactl decodes a hex-encoded OpenFlow action blob, validates it
// against a trivial flow context, and prints its text form and both wire
// round-trips. It exists to exercise the ofpact package end to end, the
// way the original repository's examples/ directory exercised the message
// framing stack.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/fraant/openvswitch/ofpact"
)

func main() {
	version := flag.Int("version", 10, "OpenFlow version of the input actions (10 or 11)")
	maxPortsFlag := flag.Int("max-ports", 64, "number of ports on the modeled switch")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ofpactl [-version 10|11] [-max-ports N] <hex>")
		os.Exit(2)
	}

	// max-ports arrives as a signed CLI int; narrow it to the unsigned
	// wire-facing type defensively rather than trust the sign bit away.
	maxPorts, err := cast.ToUint32E(*maxPortsFlag)
	if err != nil || *maxPortsFlag < 0 {
		fmt.Fprintln(os.Stderr, "ofpactl: -max-ports must be a non-negative integer")
		os.Exit(2)
	}

	wire, err := hex.DecodeString(strings.TrimSpace(flag.Arg(0)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: invalid hex:", err)
		os.Exit(2)
	}

	var stream ofpact.Buffer
	switch *version {
	case 10:
		err = ofpact.DecodeV10(wire, len(wire), &stream)
	case 11:
		err = ofpact.DecodeV11(wire, len(wire), &stream)
	default:
		fmt.Fprintln(os.Stderr, "ofpactl: -version must be 10 or 11")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: decode:", err)
		os.Exit(1)
	}

	flow := &ofpact.Flow{}
	if err := ofpact.Validate(stream.Bytes(), flow, maxPorts); err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: validate:", err)
		os.Exit(1)
	}

	var text strings.Builder
	if err := ofpact.Format(stream.Bytes(), &text); err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: format:", err)
		os.Exit(1)
	}
	fmt.Println(text.String())

	var v10 ofpact.Buffer
	if err := ofpact.EncodeV10(stream.Bytes(), &v10); err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: re-encode OF1.0:", err)
		os.Exit(1)
	}
	fmt.Printf("of10: %x\n", v10.Bytes())

	var v11 ofpact.Buffer
	if err := ofpact.EncodeV11Instructions(stream.Bytes(), &v11); err != nil {
		fmt.Fprintln(os.Stderr, "ofpactl: re-encode OF1.1:", err)
		os.Exit(1)
	}
	fmt.Printf("of11: %x\n", v11.Bytes())
}
