// Lantern is a command-line client for the OpenAI Responses API.
//
// It exercises the provider end to end: one-shot completions, streamed
// completions, the model catalog, and background response polling.
//
// Usage:
//
//	# One-shot completion
//	lantern complete --model gpt-4o "What is the capital of France?"
//
//	# Stream tokens as they arrive
//	lantern stream --model gpt-4o "Tell me a story."
//
//	# List models served by the Responses endpoint
//	lantern models
//
//	# Start a background response and poll it to completion
//	lantern poll resp_abc123
//
// The API key is read from the OPENAI_API_KEY environment variable.
package main

func main() {
	Execute()
}
