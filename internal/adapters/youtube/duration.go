package youtube

import (
	"strconv"
	"strings"
)

// parseClockDuration lit les durées affichées "M:SS" / "H:MM:SS".
func parseClockDuration(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// parseISODuration lit les durées API "PT#H#M#S" (contentDetails.duration).
func parseISODuration(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "PT") {
		return 0, false
	}
	s = s[2:]
	if s == "" {
		return 0, false
	}
	total := 0
	num := strings.Builder{}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'H' || r == 'M' || r == 'S':
			n, err := strconv.Atoi(num.String())
			if err != nil {
				return 0, false
			}
			switch r {
			case 'H':
				total += n * 3600
			case 'M':
				total += n * 60
			case 'S':
				total += n
			}
			num.Reset()
		default:
			return 0, false
		}
	}
	if num.Len() != 0 {
		return 0, false
	}
	return total, true
}
