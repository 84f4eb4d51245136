package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	kvpb "dynakv/internal/gen/kvpb"
)

// runREPL reads put/get commands from stdin until exit or EOF. REPL errors
// are printed, not fatal: a failed command should not end the session.
func runREPL(c kvpb.KeyValueClient) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("kv> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return nil

		case "put":
			if len(fields) != 3 {
				fmt.Println("Usage: put <key> <value>")
				continue
			}
			switch err := doPut(c, fields[1], []byte(fields[2])); {
			case errors.Is(err, errRejected):
				fmt.Println("PUT rejected (acks < W)")
			case err != nil:
				fmt.Println("PUT RPC failed")
			default:
				fmt.Println("PUT ok")
			}

		case "get":
			if len(fields) != 2 {
				fmt.Println("Usage: get <key>")
				continue
			}
			value, found, err := doGet(c, fields[1])
			switch {
			case err != nil:
				fmt.Println("GET RPC failed")
			case !found:
				fmt.Println("Key not found")
			default:
				fmt.Println(string(value))
			}

		default:
			fmt.Println("Unknown command")
		}
	}
}
