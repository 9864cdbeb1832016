// Command communication-first writes GitHub_Workflow_Communication_First.pptx
// to the working directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tsawler/deckgen"
	"github.com/tsawler/deckgen/deck"
)

func main() {
	if _, _, err := deckgen.New().Generate(context.Background(), deck.CommunicationFirst); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
