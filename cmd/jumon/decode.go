package main

import (
	"encoding/json"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/dq1-tools/jumon"
)

type decodeCommand struct {
	Args struct {
		Password string `positional-arg-name:"password" description:"20-character password (whitespace is ignored)" required:"true"`
	} `positional-args:"yes"`
}

func (c *decodeCommand) Execute(args []string) error {
	state, err := jumon.Decode(c.Args.Password)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func addDecodeCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("decode",
		"Decode a password into its game state",
		"Decodes a revival-spell password and prints the game state as JSON.\n\n"+
			"The password must be 20 characters from the password alphabet;\n"+
			"whitespace anywhere in it is ignored.",
		&decodeCommand{})
	if err != nil {
		panic(err)
	}
}
