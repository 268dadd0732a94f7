package artifact

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	declaration = regexp.MustCompile(`image_data\[(0[xX][0-9a-fA-F]+|\d+)\]\s*PROGMEM\s*=\s*\{([^}]*)\}`)

	errNoArray  = errors.New("artifact: no image_data array found")
	errBadValue = errors.New("artifact: invalid byte value")
)

// Decode reads C source written by Encode and returns the declared array
// size and the array contents.
func Decode(r io.Reader) (int, []byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, err
	}

	m := declaration.FindSubmatch(src)
	if m == nil {
		return 0, nil, errNoArray
	}

	declared, err := strconv.ParseInt(string(m[1]), 0, 32)
	if err != nil {
		return 0, nil, err
	}

	var b []byte
	for _, s := range strings.Split(string(m[2]), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %q", errBadValue, s)
		}
		b = append(b, byte(v))
	}

	return int(declared), b, nil
}
