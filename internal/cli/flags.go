package cli

import (
	"flag"
	"regexp"
	"strconv"
	"strings"
)

// verbosityCluster matches clustered counters such as `-vv` or `-vvv`.
var verbosityCluster = regexp.MustCompile(`^-v+$`)

// unitFlag records the raw token so it can be validated after parsing
// without losing the error chain that flag.FlagSet would flatten.
type unitFlag struct {
	raw string
	set bool
}

func (f *unitFlag) String() string { return f.raw }

func (f *unitFlag) Set(s string) error {
	f.raw = s
	f.set = true
	return nil
}

// countFlag is a boolean flag that counts its occurrences, e.g. `-v -v`.
type countFlag int

func (c *countFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *countFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*c++
	}
	return nil
}

func (c *countFlag) IsBoolFlag() bool { return true }

// splitArgs separates flag tokens from positional ones so that flags may
// follow VALUE and negative numbers are not mistaken for flags. A clustered
// `-vv` is expanded into repeated `-v`. A value flag with nothing after it
// is left out of flagArgs and returned as dangling.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, positional []string, dangling string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flagArgs, append(positional, args[i+1:]...), dangling
		case arg == "-" || !strings.HasPrefix(arg, "-") || isNumber(arg):
			positional = append(positional, arg)
		case verbosityCluster.MatchString(arg):
			for j := 0; j < len(arg)-1; j++ {
				flagArgs = append(flagArgs, "-v")
			}
		default:
			name := strings.TrimLeft(arg, "-")
			if strings.Contains(name, "=") {
				flagArgs = append(flagArgs, arg)
				continue
			}
			f := fs.Lookup(name)
			if f == nil || isBoolFlag(f) {
				flagArgs = append(flagArgs, arg)
				continue
			}
			if i+1 == len(args) {
				dangling = arg
				continue
			}
			i++
			flagArgs = append(flagArgs, arg, args[i])
		}
	}
	return flagArgs, positional, dangling
}

func isNumber(s string) bool {
	_, err := parseValue(s)
	return err == nil
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
