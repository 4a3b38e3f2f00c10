package mcpserver

import (
	"encoding/json"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// envFileList is the payload of list_env_files.
type envFileList struct {
	Root   string   `json:"root"`
	Marker string   `json:"marker,omitempty"`
	Files  []string `json:"files"`
	Count  int      `json:"count"`
}

func jsonResult(data any) *mcpsdk.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return textResult(string(b))
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "error: " + err.Error()}},
		IsError: true,
	}
}
