// Package agent runs the chat loop between a model endpoint and the
// workflow tools: it feeds the conversation to the model, executes any tool
// calls it asks for, and repeats until the model answers in plain text.
package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mediguide/mediguide/internal/platform/llm"
)

// maxToolRounds caps how many tool-call rounds one user turn may trigger.
const maxToolRounds = 8

// LLMClient is the chat-completion surface the runner needs.
type LLMClient interface {
	ChatCompletion(ctx context.Context, messages []llm.Message, tools []llm.Tool) (*llm.Message, error)
}

// ToolExecutor dispatches one named tool invocation.
type ToolExecutor interface {
	Call(ctx context.Context, name, arguments string) (string, error)
}

// Persona binds a system prompt to the tool set it may use.
type Persona struct {
	SystemPrompt string
	Tools        []llm.Tool
}

type Runner struct {
	client LLMClient
	exec   ToolExecutor
	memory *Memory
	log    zerolog.Logger
}

func NewRunner(client LLMClient, exec ToolExecutor, memory *Memory, log zerolog.Logger) *Runner {
	return &Runner{client: client, exec: exec, memory: memory, log: log}
}

// Chat appends the user message to the conversation, resolves tool calls
// until the model produces text, and returns that text. The full exchange,
// tool traffic included, lands in memory so follow-up turns have context.
func (r *Runner) Chat(ctx context.Context, persona Persona, chatID, userMessage string) (string, error) {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: persona.SystemPrompt}}
	messages = append(messages, r.memory.History(chatID)...)
	userMsg := llm.Message{Role: llm.RoleUser, Content: userMessage}
	messages = append(messages, userMsg)

	var transcript []llm.Message
	transcript = append(transcript, userMsg)

	for round := 0; round < maxToolRounds; round++ {
		reply, err := r.client.ChatCompletion(ctx, messages, persona.Tools)
		if err != nil {
			return "", err
		}
		messages = append(messages, *reply)
		transcript = append(transcript, *reply)

		if len(reply.ToolCalls) == 0 {
			r.memory.Append(chatID, transcript...)
			return reply.Content, nil
		}

		for _, call := range reply.ToolCalls {
			result, err := r.exec.Call(ctx, call.Function.Name, call.Function.Arguments)
			if err != nil {
				r.log.Error().Err(err).Str("tool", call.Function.Name).Msg("tool call failed")
				result = fmt.Sprintf("工具调用失败：%v", err)
			}
			toolMsg := llm.Message{
				Role:       llm.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			}
			messages = append(messages, toolMsg)
			transcript = append(transcript, toolMsg)
		}
	}

	return "", fmt.Errorf("conversation %s exceeded %d tool rounds", chatID, maxToolRounds)
}
