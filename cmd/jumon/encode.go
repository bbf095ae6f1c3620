package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/dq1-tools/jumon"
)

type encodeCommand struct {
	Args struct {
		File string `positional-arg-name:"state.json" description:"Game state JSON file (- for stdin)" required:"true"`
	} `positional-args:"yes"`
}

func (c *encodeCommand) Execute(args []string) error {
	var (
		data []byte
		err  error
	)
	if c.Args.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.Args.File)
	}
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	var state jumon.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state: %w", err)
	}

	password, err := jumon.Encode(state)
	if err != nil {
		return err
	}

	fmt.Println(password)
	return nil
}

func addEncodeCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("encode",
		"Encode a game state JSON file into a password",
		"Reads a game state as JSON and prints its revival-spell password.",
		&encodeCommand{})
	if err != nil {
		panic(err)
	}
}
