package status

import (
	"bytes"
	"os"

	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

// CapacityFile is a text file holding the charge percentage on its first
// line, e.g. /sys/class/power_supply/BAT0/capacity.
type CapacityFile string

var _ CapacitySource = CapacityFile(``)

func (f CapacityFile) Capacity() (int, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return 0, errors.New(err)
	}
	pct, err := ParseCapacity(b)
	if err != nil {
		return 0, errors.Op(string(f), `parse capacity`, err)
	}
	return pct, nil
}

// ParseCapacity parses the leading integer of the first line the way atoi
// does: leading blanks and a sign are accepted, anything after the digits
// is ignored. The result is clamped to 0..100.
func ParseCapacity(b []byte) (int, error) {
	line, _, _ := bytes.Cut(b, []byte{'\n'})
	line = bytes.TrimLeft(line, " \t\r\v\f")
	neg := false
	if len(line) > 0 && (line[0] == '-' || line[0] == '+') {
		neg = line[0] == '-'
		line = line[1:]
	}
	n, digits := 0, 0
	for _, c := range line {
		if c < '0' || c > '9' {
			break
		}
		if n < 1000 {
			n = n*10 + int(c-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, errors.New(consts.ErrNoCapacity)
	}
	if neg {
		n = -n
	}
	return min(max(n, 0), 100), nil
}
