// Command numenc encodes and decodes single numeric values on the command
// line, for poking at keys in a byte-ordered store.
//
//	numenc encode --kind int32 -- -42
//	7fffffd6
//	numenc decode --kind int32 7fffffd6
//	-42
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/bearlytools/numenc"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var kindFlag = pflag.String("kind", "", "numeric kind: int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64")

func main() {
	pflag.Parse()
	args := pflag.Args()
	if len(args) != 2 {
		exitf("usage: numenc [encode|decode] --kind <kind> <value|hex>")
	}

	kind, err := numenc.ParseKind(*kindFlag)
	if err != nil {
		exitf("bad --kind: %s", err)
	}

	var out string
	switch args[0] {
	case "encode":
		out, err = encode(kind, args[1])
	case "decode":
		out, err = decode(kind, args[1])
	default:
		exitf("unknown subcommand %q, want encode or decode", args[0])
	}
	if err != nil {
		exitf("%s", err)
	}
	fmt.Println(out)
}

func encode(kind numenc.Kind, arg string) (string, error) {
	var (
		b   []byte
		err error
	)
	switch {
	case kind.Signed():
		v, perr := strconv.ParseInt(arg, 0, 64)
		if perr != nil {
			return "", errors.Wrapf(perr, "cannot parse %q as a signed integer", arg)
		}
		b, err = numenc.EncodeInt(kind, v)
	case kind.Unsigned():
		v, perr := strconv.ParseUint(arg, 0, 64)
		if perr != nil {
			return "", errors.Wrapf(perr, "cannot parse %q as an unsigned integer", arg)
		}
		b, err = numenc.EncodeUint(kind, v)
	default:
		v, perr := strconv.ParseFloat(arg, 64)
		if perr != nil {
			return "", errors.Wrapf(perr, "cannot parse %q as a float", arg)
		}
		b, err = numenc.EncodeFloat(kind, v)
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func decode(kind numenc.Kind, arg string) (string, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return "", errors.Wrapf(err, "cannot parse %q as hex bytes", arg)
	}
	switch {
	case kind.Signed():
		v, err := numenc.DecodeInt(kind, b)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case kind.Unsigned():
		v, err := numenc.DecodeUint(kind, b)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	default:
		v, err := numenc.DecodeFloat(kind, b)
		if err != nil {
			return "", err
		}
		bitSize := 64
		if kind == numenc.KFloat32 {
			bitSize = 32
		}
		return strconv.FormatFloat(v, 'g', -1, bitSize), nil
	}
}

func exitf(s string, i ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", i...)
	os.Exit(1)
}
