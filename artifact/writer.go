package artifact

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const header = "#include <stdint.h>\n#include <avr/pgmspace.h>\n\nconst uint8_t image_data[%#x] PROGMEM = {"

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(b []byte) error {
	if _, err := fmt.Fprintf(e.w, header, len(b)); err != nil {
		return err
	}

	for i, v := range b {
		if i > 0 {
			if _, err := e.w.WriteString(", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(e.w, "%#x", v); err != nil {
			return err
		}
	}

	if _, err := e.w.WriteString("};\n"); err != nil {
		return err
	}

	return e.w.Flush()
}

// Encode writes the payload p to w as C source. The payload is serialised in
// full before anything is written so the declared array size is always the
// final size.
func Encode(w io.Writer, p *Payload) error {
	b, err := p.Bytes()
	if err != nil {
		return err
	}

	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(b)
}

// WriteFile writes the payload p to the named file. The output is written to
// a temporary file alongside it first and renamed into place, so an existing
// file is either fully replaced or left untouched.
func WriteFile(name string, p *Payload) (err error) {
	// Catch a bad payload before touching the filesystem
	if _, err := p.Bytes(); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = Encode(f, p); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}
