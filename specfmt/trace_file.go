package specfmt

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/kfx-lang/lr0table/compressor"
	"github.com/kfx-lang/lr0table/driver"
	"github.com/kfx-lang/lr0table/grammar"
	"github.com/kfx-lang/lr0table/render"
)

// WriteTraceFile renders trace and writes it to
// traceDir/id/<compressed>.txt, creating the directory if needed, the
// way the original tool's create_directories call did. inputLine is the
// input as typed, without the trailing $. The compressed name is
// derived from it via compressor.CompressFilename. The file handle is
// closed before this function returns.
//
// WriteTraceFile is only ever called after an Accept: a rejected parse
// writes nothing.
func WriteTraceFile(traceDir, id, inputLine string, prods *grammar.ProductionSet, trace []driver.TraceEntry) (string, error) {
	dir := filepath.Join(traceDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	compressed := compressor.CompressFilename(inputLine)
	path := filepath.Join(dir, compressed+".txt")

	var buf bytes.Buffer
	render.Trace(&buf, prods, trace)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
