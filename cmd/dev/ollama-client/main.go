// Dev probe: sends one prompt through the collaborator client to verify the
// local Ollama instance answers.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pathfinderhq/pathfinder/pkg/ollama"
)

const model = "llama3"

func main() {
	ctx := context.Background()

	client, err := ollama.NewDefaultClient(ollama.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	if err := client.Health(ctx); err != nil {
		log.Fatal(err)
	}

	text, err := client.Generate(ctx, model, "Suggest three kinds of community services a resource directory should list.", ollama.GenerateOptions{Temperature: 0.7, MaxTokens: 200})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(text)
}
