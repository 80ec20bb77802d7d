package optimizer

import (
	"fmt"
	"strings"
)

type Mode string

const (
	// score every legal forward combination, keep the best
	Mode_Optimal Mode = "OPTIMAL"
	// commit the first legal forward combination found
	Mode_Fast Mode = "FAST"
)

func NewMode(s string) (*Mode, error) {
	m := map[string]Mode{
		"OPTIMAL": Mode_Optimal,
		"FAST":    Mode_Fast,
		// older versions of the tool called fast selection "random" even
		// though it walks the same deterministic order
		"RANDOM": Mode_Fast,
	}
	for k, v := range m {
		if strings.EqualFold(k, strings.TrimSpace(s)) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known optimizer mode", s)
}
