package main

import (
	"fmt"
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/dq1-tools/jumon"
)

type generateCommand struct {
	Args struct {
		Pattern string `positional-arg-name:"pattern" description:"20-character pattern; ? matches any symbol" required:"true"`
		Count   string `positional-arg-name:"count" description:"Maximum number of passwords (default 10)"`
	} `positional-args:"yes"`
}

func (c *generateCommand) Execute(args []string) error {
	count := 10
	if c.Args.Count != "" {
		n, err := strconv.Atoi(c.Args.Count)
		if err != nil || n < 0 {
			return fmt.Errorf("count must be a non-negative integer: %q", c.Args.Count)
		}
		count = n
	}

	passwords, err := jumon.Generate(c.Args.Pattern, count)
	if err != nil {
		return err
	}

	for _, password := range passwords {
		fmt.Println(password)
	}
	return nil
}

func addGenerateCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("generate",
		"Generate decodable passwords matching a pattern",
		"Searches for passwords that match the pattern and decode without\n"+
			"error, printing up to the requested number, one per line.\n\n"+
			"A '?' (halfwidth or fullwidth) matches any password symbol.",
		&generateCommand{})
	if err != nil {
		panic(err)
	}
}
