package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal lee líneas de in y escribe en out. No guarda estado de pantalla.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminal construye una terminal sobre los flujos dados (os.Stdin/os.Stdout en producción).
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{scanner: bufio.NewScanner(in), out: out}
}

// Prompt muestra label y lee una línea recortada. ok es false cuando se agota la entrada.
func (t *Terminal) Prompt(label string) (string, bool) {
	fmt.Fprintf(t.out, "%s: ", label)
	if !t.scanner.Scan() {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.TrimSpace(t.scanner.Text()), true
}

// Println escribe una línea.
func (t *Terminal) Println(s string) {
	fmt.Fprintln(t.out, s)
}

// Writer salida cruda (tablas).
func (t *Terminal) Writer() io.Writer {
	return t.out
}
