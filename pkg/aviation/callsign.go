// pkg/aviation/callsign.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strconv"
	"strings"

	"github.com/omareltomy/atc-ready/pkg/rand"
)

var badCallsigns map[string]interface{} = map[string]interface{}{
	// 9/11
	"AAL11":  nil,
	"UAL175": nil,
	"AAL77":  nil,
	"UAL93":  nil,

	// Pilot suicide
	"MAS17":   nil,
	"MAS370":  nil,
	"GWI18G":  nil,
	"GWI9525": nil,
	"MSR990":  nil,

	// Hijackings
	"FDX705":  nil,
	"AFR8969": nil,

	// Selected major crashes
	"PAA1736": nil,
	"KLM4805": nil,
	"JAL123":  nil,
	"AIC182":  nil,
	"AAL191":  nil,
	"PAA103":  nil,
	"KAL007":  nil,
	"AAL587":  nil,
	"TWA800":  nil,
	"SWR111":  nil,
	"AFR447":  nil,
	"LOT5055": nil,
	"PSA5342": nil,
}

// Weights for the number of characters after the airline code in IFR
// callsigns and the number of digits in numeric registrations.
var (
	ifrSuffixLengths = rand.MustMakeWeighted(
		rand.WeightedEntry[int]{Value: 3, Weight: 4},
		rand.WeightedEntry[int]{Value: 4, Weight: 3},
		rand.WeightedEntry[int]{Value: 2, Weight: 2},
		rand.WeightedEntry[int]{Value: 1, Weight: 1})
	numericRegistrationDigits = rand.MustMakeWeighted(
		rand.WeightedEntry[int]{Value: 1, Weight: 1},
		rand.WeightedEntry[int]{Value: 2, Weight: 2},
		rand.WeightedEntry[int]{Value: 3, Weight: 3})
)

// IFR suffix characters after a digit are letters with this probability.
const suffixLetterProbability = 0.25

// GenerateCallsign returns a callsign for an aircraft with the given
// rules and role. The military flag is only honored for VFR intruders.
func GenerateCallsign(r *rand.Rand, rules FlightRules, role Role, military bool) string {
	return DB.Callsigns.Generate(r, rules, role, military)
}

func (ct CallsignTables) Generate(r *rand.Rand, rules FlightRules, role Role, military bool) string {
	if rules == FlightRulesIFR {
		return ct.airline(r)
	} else if military && role == RoleIntruder {
		return ct.military(r)
	} else {
		return ct.registration(r)
	}
}

func (ct CallsignTables) military(r *rand.Rand) string {
	return rand.SampleSlice(r, ct.Military) + strconv.Itoa(r.Intn(10)) + strconv.Itoa(r.Intn(10))
}

func (ct CallsignTables) airline(r *rand.Rand) string {
	for {
		callsign := rand.SampleSlice(r, ct.Airlines)

		n := ifrSuffixLengths.Sample(r)
		// The suffix always starts with a digit; letters, once started,
		// continue to the end.
		callsign += strconv.Itoa(1 + r.Intn(9))
		letter := false
		for i := 1; i < n; i++ {
			if letter || r.Bool(suffixLetterProbability) {
				letter = true
				callsign += string(rune('A' + r.Intn(26)))
			} else {
				callsign += strconv.Itoa(r.Intn(10))
			}
		}

		if _, ok := badCallsigns[callsign]; !ok {
			return callsign
		}
	}
}

func (ct CallsignTables) registration(r *rand.Rand) string {
	reg, _ := rand.SampleWeighted(r, ct.Registrations, func(reg Registration) int { return reg.Weight })

	var sb strings.Builder
	sb.WriteString(reg.Prefix)
	if reg.Numeric {
		// N-numbers: one to three digits, never starting with zero,
		// followed by two or three letters.
		n := numericRegistrationDigits.Sample(r)
		sb.WriteString(strconv.Itoa(1 + r.Intn(9)))
		for i := 1; i < n; i++ {
			sb.WriteString(strconv.Itoa(r.Intn(10)))
		}
		for range r.IntRange(2, 3) {
			sb.WriteRune(rune('A' + r.Intn(26)))
		}
		return sb.String()
	}

	for _, ch := range reg.Template {
		if lo, hi, ok := templateRange(ch); ok {
			sb.WriteRune(lo + rune(r.Intn(int(hi-lo+1))))
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// templateRange returns the inclusive letter range selected by a
// registration template character.
func templateRange(ch rune) (lo, hi rune, ok bool) {
	switch ch {
	case 'x':
		return 'A', 'Z', true
	case 'p':
		return 'A', 'P', true
	case 'w':
		return 'A', 'W', true
	case 'k':
		return 'K', 'Z', true
	default:
		return 0, 0, false
	}
}
