package gauntlet

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pgavlin/gauntlet/wasm/code"
)

const tab = "\t"

// WriteTo writes a test's module in WebAssembly text format.
func WriteTo(w io.Writer, t *Test) error {
	wr := &writer{bw: bufio.NewWriter(w), t: t}
	return wr.writeModule()
}

// Text returns the test's module text.
func (t *Test) Text() string {
	var buf bytes.Buffer
	if err := WriteTo(&buf, t); err != nil {
		panic(err)
	}
	return buf.String()
}

type writer struct {
	bw *bufio.Writer
	t  *Test
}

func (w *writer) writeModule() (err error) {
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(error); ok {
				err = e
				return
			}
			panic(x)
		}
	}()

	w.Print(";; %s\n", w.t.Name)
	w.WriteString("(module\n")
	w.writeMemory()
	w.writeFunc()
	w.WriteString("))")

	return w.bw.Flush()
}

func (w *writer) writeMemory() {
	if w.t.Memory == nil {
		return
	}
	w.WriteString(tab + "(memory (data ")
	w.WriteString(quoteData(w.t.Memory))
	w.WriteString("))\n")
}

func (w *writer) writeFunc() {
	sig := w.t.Signature

	w.WriteString(tab + `(func (export "Test")`)
	if len(sig.ParamTypes) != 0 {
		w.WriteString(" (param")
		for _, p := range sig.ParamTypes {
			w.WriteString(" ")
			w.WriteString(p.String())
		}
		w.WriteString(")")
	}
	if len(sig.ReturnTypes) != 0 {
		w.WriteString(" (result")
		for _, r := range sig.ReturnTypes {
			w.WriteString(" ")
			w.WriteString(r.String())
		}
		w.WriteString(")")
	}
	w.WriteString("\n")

	for i := range sig.ParamTypes {
		get := code.LocalGet(uint32(i))
		w.WriteString(tab + get.String() + "\n")
	}
	w.WriteString(tab + w.t.Operator + "\n")
}

func (w *writer) WriteString(s string) {
	if _, err := w.bw.WriteString(s); err != nil {
		panic(err)
	}
}

func (w *writer) Print(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w.bw, format, args...); err != nil {
		panic(err)
	}
}

func quoteData(p []byte) string {
	buf := new(bytes.Buffer)
	buf.WriteRune('"')
	for _, b := range p {
		switch b {
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			if strconv.IsGraphic(rune(b)) && b < 0x80 {
				buf.WriteByte(b)
			} else {
				fmt.Fprintf(buf, `\%02x`, b)
			}
		}
	}
	buf.WriteRune('"')
	return buf.String()
}
