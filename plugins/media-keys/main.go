// Package main provides a media-keys plugin for macOS.
// It maps catalog navigation to media key presses via AppleScript.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action    string          `json:"action"`
	Direction string          `json:"direction"`
	Object    string          `json:"object"`
	Index     int             `json:"index"`
	Config    json.RawMessage `json:"config"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Key codes for System Events. 124/123 are the right and left arrows.
const (
	keyCodeRight = 124
	keyCodeLeft  = 123
)

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	switch req.Action {
	case "step":
		if err := handleStep(req.Direction); err != nil {
			writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
			return
		}
	case "playpause":
		if err := runAppleScript(`tell application "System Events" to key code 16 using {command down, option down}`); err != nil {
			writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
			return
		}
	default:
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	writeSuccessResponse()
}

// handleStep presses the arrow key matching the navigation direction.
func handleStep(direction string) error {
	var code int
	switch direction {
	case "advance":
		code = keyCodeRight
	case "retreat":
		code = keyCodeLeft
	default:
		return fmt.Errorf("unknown direction: %s", direction)
	}

	script := fmt.Sprintf(`tell application "System Events" to key code %d`, code)
	return runAppleScript(script)
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// runAppleScript executes an AppleScript command and returns any error.
func runAppleScript(script string) error {
	cmd := exec.Command("osascript", "-e", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}
