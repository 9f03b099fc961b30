package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func help(exe string) {
	exe = filepath.Base(exe)
	fmt.Fprintf(stdout, "%s: write the Game Boy boot logo as a binary file\n", exe)
	fmt.Fprintf(stdout, "usage: %s [options...]\n", exe)
	fmt.Fprintln(stdout, "options:")
	fmt.Fprintln(stdout, "  -f, --file <name>          set output name (default " + defaultOutput + ", '-' for stdout)")
	fmt.Fprintln(stdout, "  -i, --ihex                 write Intel HEX instead of raw bytes")
	fmt.Fprintln(stdout, "  -z, --zstd[=<params>]      compress output with zstd")
	fmt.Fprintln(stdout, "  -c, --check <rom>          check rom header logo and checksum")
	fmt.Fprintln(stdout, "  -x, --dump <file>          print file bytes as hex")
	fmt.Fprintln(stdout, "  -v, --verbose              verbose mode")
	fmt.Fprintln(stdout, "  -V, --version              show version")
	fmt.Fprintln(stdout, "  -h, --help                 show help")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "zstd params: {param}[,{param}]")
	fmt.Fprintln(stdout, "  auto: choose parameters from available memory")
	fmt.Fprintln(stdout, "  l=low|mid|high: compression level")
	fmt.Fprintln(stdout, "  t=<n>: encoder threads")
	fmt.Fprintln(stdout, "  m=<n>[%|K|M|G][B]: window size")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "examples:")
	fmt.Fprintf(stdout, "  %s\n", exe)
	fmt.Fprintln(stdout, "    write 48 logo bytes to '" + defaultOutput + "'")
	fmt.Fprintf(stdout, "  %s -if logo.hex\n", exe)
	fmt.Fprintln(stdout, "    write logo as Intel HEX to 'logo.hex'")
	fmt.Fprintf(stdout, "  %s -vc tetris.gb\n", exe)
	fmt.Fprintln(stdout, "    check header of 'tetris.gb'")
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line args (args[0] is the program name) and
// returns the exit code.
func run(args []string, out, errOut io.Writer) int {
	stdout, logOut = out, errOut

	var ihex, verbose bool
	var zstd *zstdInfo
	var check, dump string
	name := defaultOutput
	waiters := make([]*string, 0, 4)
	waitersRead := 0
	for i := 1; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-f", "--file":
			waiters = append(waiters, &name)

		case "-i", "--ihex":
			ihex = true

		case "-z", "--zstd":
			zstd = &zstdInfo{forceAuto: true}

		case "-c", "--check":
			waiters = append(waiters, &check)

		case "-x", "--dump":
			waiters = append(waiters, &dump)

		case "-v", "--verbose":
			verbose = true

		case "-V", "--version":
			version(args[0])
			return 0

		case "-h", "--help":
			help(args[0])
			return 0

		default:
			if len(arg) == 0 {
				logln("warning: ignoring empty argument")
				continue
			}
			if params, ok := strings.CutPrefix(arg, "--zstd="); ok {
				z, err := handleZstd(params)
				if err != nil {
					return handleCommand(err)
				}
				zstd = z
			} else if arg[0] == '-' && len(arg) > 1 {
				handled := 0
				for _, r := range arg[1:] {
					switch r {
					default:
						logf("warning: ignoring unsupported flag '-%v'\n", string(r))
						handled--

					case 'f':
						waiters = append(waiters, &name)

					case 'i':
						ihex = true

					case 'z':
						zstd = &zstdInfo{forceAuto: true}

					case 'c':
						waiters = append(waiters, &check)

					case 'x':
						waiters = append(waiters, &dump)

					case 'v':
						verbose = true

					case 'V':
						version(args[0])
						return 0

					case 'h':
						help(args[0])
						return 0
					}
					handled++
				}
				if handled == 0 {
					logf("warning: ignoring unsupported flag '%s'\n", arg)
				}
			} else if waitersRead < len(waiters) {
				*waiters[waitersRead] = arg
				waitersRead++
			} else {
				logf("warning: ignoring argument '%s'\n", arg)
			}
		}
	}
	if waitersRead < len(waiters) {
		return handleCommand(errors.New("not enough arguments for provided options"))
	}

	if len(check) > 0 {
		return handleCommand(checkROM(check, verbose))
	}

	if len(dump) > 0 {
		return handleCommand(dumpFile(dump, verbose))
	}

	format := formatRaw
	if ihex {
		format = formatIntelHex
	}
	n, err := writeLogo(name, format, zstd, verbose)
	if err != nil {
		return handleCommand(err)
	}
	if isStdIOFile(name) {
		logln(statusMessage(n, name))
	} else {
		_, _ = fmt.Fprintln(stdout, statusMessage(n, name))
	}
	return 0
}
