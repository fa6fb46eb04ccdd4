// Command i4w-callapi forwards a monitoring check-plugin invocation to
// the icinga-powershell-restapi daemon and translates its reply back
// into the monitoring platform's textual output and exit-code
// convention.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haxtibal/i4w-callapi/argmap"
	"github.com/haxtibal/i4w-callapi/checkerapi"
	"github.com/haxtibal/i4w-callapi/cliconfig"
	"github.com/haxtibal/i4w-callapi/verdict"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, forwarded, err := cliconfig.Parse(args)
	if err != nil {
		fmt.Fprintln(stdout, err.Error())
		return int(verdict.Unknown)
	}

	args2Map, err := argmap.Build(forwarded)
	if err != nil {
		fmt.Fprintln(stdout, err.Error())
		return int(verdict.Unknown)
	}

	client := checkerapi.NewClient(time.Duration(cfg.Timeout)*time.Second, cfg.Insecure)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	result, err := client.Do(ctx, cfg.Host, cfg.Port, cfg.Command, args2Map)
	if err != nil {
		if errors.Is(err, checkerapi.ErrNoResult) {
			fmt.Fprintln(stdout, verdict.UnknownLine)
		} else {
			fmt.Fprintln(stdout, err.Error())
		}
		return int(verdict.Unknown)
	}

	line := verdict.Format(result.Checkresult, result.Perfdata.String(), result.Perfdata.Valid())
	fmt.Fprintln(stdout, line)

	if result.Exitcode.NotExecuted {
		return int(verdict.Unknown)
	}
	return int(verdict.FromInt(result.Exitcode.Code))
}
