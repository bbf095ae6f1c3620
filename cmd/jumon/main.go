// Command jumon works with Dragon Quest 1 revival-spell passwords.
//
// Usage:
//
//	jumon <command> [options]
//
// Commands:
//
//	decode     Decode a password into its game state
//	encode     Encode a game state JSON file into a password
//	generate   Generate decodable passwords matching a pattern
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/dq1-tools/jumon/log"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging on stderr"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("jumon %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "jumon"
	parser.LongDescription = "A toolkit for Dragon Quest 1 revival-spell passwords"

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		if globals.Verbose {
			zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			log.SetLogger(log.NewZerologAdapter(zlog))
		}
		return command.Execute(args)
	}

	addDecodeCommand(parser)
	addEncodeCommand(parser)
	addGenerateCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}
