package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("unable to encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printResult renders a dispatcher result: raw JSON documents are indented
// unless --json-output asks for the compact form.
func printResult(ctx *cli.Context, result interface{}) error {
	raw, ok := result.(json.RawMessage)
	if !ok {
		return printJSON(result)
	}
	if ctx.Bool("json-output") {
		fmt.Println(string(raw))
		return nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "\t"); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}
	fmt.Println(indented.String())
	return nil
}
