package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"arrowlint/internal/diag"
	"arrowlint/internal/source"
)

// MsgPack writes the same tree as JSON in msgpack encoding.
func MsgPack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
