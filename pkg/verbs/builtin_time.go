// File: builtin_time.go
// Title: Date and Clock Verbs
// Description: Verb adapters over timex. Strict verbs return typed errors;
//              lenient verbs always return a value.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-20
// Modified: 2025-08-20
//
// Change History:
// - 2025-08-20 v0.1.0: Initial implementation

package verbs

import (
	"strconv"

	mdwtimex "github.com/msto63/tabfun/foundation/utils/timex"
)

func verbDate(env *Env, args []string) (string, error) {
	return env.Thresholds.FormatDateText(args[0], arg(args, 1, ""), env.Today), nil
}

func verbParseDate(env *Env, args []string) (string, error) {
	o, err := mdwtimex.ParseDate(args[0], env.Today)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(o), 10), nil
}

func verbBase(env *Env, args []string) (string, error) {
	o, err := mdwtimex.Base(arg(args, 0, ""), env.Today)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(o), 10), nil
}

func verbDow(env *Env, args []string) (string, error) {
	return mdwtimex.Dow(arg(args, 0, ""), env.Today)
}

func verbMakeDate(env *Env, args []string) (string, error) {
	parts := make([]int, 3)
	for i := range parts {
		n, err := intArg("make_date", args, i)
		if err != nil {
			return "", err
		}
		parts[i] = n
	}
	return mdwtimex.MakeDate(parts[0], parts[1], parts[2], arg(args, 3, ""))
}

func verbEpoch(env *Env, args []string) (string, error) {
	return mdwtimex.EpochFromDateTime(args[0]), nil
}

func verbUKTaxYear(env *Env, args []string) (string, error) {
	return mdwtimex.UKTaxYear(args[0], env.Today)
}

func verbHMS(env *Env, args []string) (string, error) {
	value, err := floatArg("hms", args, 0)
	if err != nil {
		return "", err
	}
	unit, err := mdwtimex.ParseUnit(arg(args, 1, ""))
	if err != nil {
		return "", err
	}
	return mdwtimex.ToSexagesimal(value, unit), nil
}

// sexagesimalVerb reads H:MM:SS text in the unit selected by shift
func sexagesimalVerb(shift int) Func {
	return func(env *Env, args []string) (string, error) {
		f, err := mdwtimex.FromSexagesimal(args[0], shift)
		if err != nil {
			return "", err
		}
		return formatFloat(f), nil
	}
}

func verbAsTime(env *Env, args []string) (string, error) {
	return mdwtimex.NormalizeClockPhrase(args[0]), nil
}
